package notifications

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/meditriage/meditriage/internal/engine"
	"github.com/meditriage/meditriage/pkg/pagination"
	"github.com/meditriage/meditriage/pkg/query"
	"github.com/meditriage/meditriage/pkg/repository"
)

// batchConcurrency bounds parallel classification during batch submission.
const batchConcurrency = 8

type repo struct {
	db         *sql.DB
	history    *engine.History
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a notification repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		history:    engine.NewHistory(),
		logger:     logger.With("system", "notifications"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Notification], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Narrative", "Reasoning")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count notifications: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanNotification)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Notification, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	n, err := repository.QueryOne(ctx, r.db, q, args, scanNotification)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &n, nil
}

func (r *repo) Submit(ctx context.Context, cmd SubmitCommand) (*Notification, error) {
	in := cmd.Input()

	result, err := engine.Classify(in)
	if err != nil {
		return nil, err
	}

	n, err := r.insert(ctx, in, result)
	if err != nil {
		return nil, err
	}

	r.history.Record(in, *result)

	r.logger.Info("notification classified",
		"id", n.ID,
		"category", n.Category,
		"confidence", n.Confidence,
		"requires_review", n.RequiresReview,
	)
	return n, nil
}

func (r *repo) SubmitBatch(ctx context.Context, cmds []SubmitCommand) ([]BatchResult, error) {
	results := make([]BatchResult, len(cmds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, cmd := range cmds {
		g.Go(func() error {
			n, err := r.Submit(ctx, cmd)
			if err != nil {
				results[i] = BatchResult{Error: err.Error()}
				return nil
			}
			results[i] = BatchResult{Notification: n}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger.Info("batch submitted", "count", len(cmds))
	return results, nil
}

func (r *repo) Recent() []engine.HistoryEntry {
	return r.history.Recent()
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM notifications WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("notification deleted", "id", id)
	return nil
}

func (r *repo) insert(ctx context.Context, in engine.Input, result *engine.Result) (*Notification, error) {
	factorsJSON, err := json.Marshal(result.Signals.Factors)
	if err != nil {
		return nil, fmt.Errorf("marshal factors: %w", err)
	}

	actionsJSON, err := json.Marshal(result.Actions)
	if err != nil {
		return nil, fmt.Errorf("marshal actions: %w", err)
	}

	var secondary *string
	if result.SecondaryCategory != nil {
		s := string(*result.SecondaryCategory)
		secondary = &s
	}

	insertQ := `
		INSERT INTO notifications(
			narrative, source, pattern, severity, recent_change, immediate_risk,
			category, secondary_category, confidence, requires_review,
			requires_external_referral, factors, sentiment, actions, reasoning
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, narrative, source, pattern, severity, recent_change,
				  immediate_risk, category, secondary_category, confidence,
				  requires_review, requires_external_referral, factors,
				  sentiment, actions, reasoning, submitted_at`

	insertArgs := []any{
		in.Narrative,
		string(in.Source),
		string(in.Pattern),
		string(in.Severity),
		string(in.RecentChange),
		string(in.ImmediateRisk),
		string(result.Category),
		secondary,
		result.Confidence,
		result.RequiresReview,
		result.RequiresExternalReferral,
		factorsJSON,
		string(result.Signals.Sentiment),
		actionsJSON,
		result.Reasoning,
	}

	n, err := repository.QueryOne(ctx, r.db, insertQ, insertArgs, scanNotification)
	if err != nil {
		return nil, repository.MapError(
			fmt.Errorf("insert notification: %w", err),
			ErrNotFound, ErrDuplicate,
		)
	}

	return &n, nil
}
