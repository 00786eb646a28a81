package reports

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/meditriage/meditriage/pkg/storage"
)

// exportPrefix namespaces archived reports within the storage container.
const exportPrefix = "reports/"

type repo struct {
	db      *sql.DB
	store   storage.System
	logger  *slog.Logger
	maxList int32
}

// New creates a reporting repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	logger *slog.Logger,
	maxList int32,
) System {
	return &repo{
		db:      db,
		store:   store,
		logger:  logger.With("system", "reports"),
		maxList: maxList,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.maxList)
}

func (r *repo) Summary(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		GeneratedAt: time.Now().UTC(),
		Categories:  make(map[string]int),
		Severities:  make(map[string]int),
	}

	totalsQ := `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE requires_review),
			   COUNT(*) FILTER (WHERE requires_external_referral)
		FROM notifications`

	if err := r.db.QueryRowContext(ctx, totalsQ).Scan(
		&summary.TotalNotifications,
		&summary.RequiresReview,
		&summary.ExternalReferrals,
	); err != nil {
		return nil, fmt.Errorf("aggregate totals: %w", err)
	}

	if err := r.groupCount(ctx, "category", summary.Categories); err != nil {
		return nil, err
	}
	if err := r.groupCount(ctx, "severity", summary.Severities); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, "SELECT confidence FROM notifications")
	if err != nil {
		return nil, fmt.Errorf("query confidence values: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var confidence float64
		if err := rows.Scan(&confidence); err != nil {
			return nil, fmt.Errorf("scan confidence: %w", err)
		}
		summary.Confidence.bucket(confidence)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}

func (r *repo) Export(ctx context.Context) (*Export, error) {
	summary, err := r.Summary(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}

	key := fmt.Sprintf("%ssummary-%s.json",
		exportPrefix,
		summary.GeneratedAt.Format("20060102-150405"),
	)

	if err := r.store.Upload(ctx, key, bytes.NewReader(data), "application/json"); err != nil {
		return nil, fmt.Errorf("archive summary: %w", err)
	}

	r.logger.Info("summary exported", "key", key, "size", len(data))

	return &Export{
		Key:        key,
		Size:       int64(len(data)),
		ExportedAt: summary.GeneratedAt,
	}, nil
}

func (r *repo) List(ctx context.Context, marker string, maxResults int32) (*storage.ListResult, error) {
	return r.store.List(ctx, exportPrefix, marker, maxResults)
}

func (r *repo) Download(ctx context.Context, key string) (*storage.DownloadResult, error) {
	return r.store.Download(ctx, key)
}

func (r *repo) groupCount(ctx context.Context, column string, into map[string]int) error {
	// column is a compile-time constant from Summary, never user input
	q := fmt.Sprintf(
		"SELECT %s, COUNT(*) FROM notifications GROUP BY %s",
		column, column,
	)

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return fmt.Errorf("aggregate by %s: %w", column, err)
	}
	defer rows.Close()

	for rows.Next() {
		var value string
		var count int
		if err := rows.Scan(&value, &count); err != nil {
			return fmt.Errorf("scan %s group: %w", column, err)
		}
		into[value] = count
	}

	return rows.Err()
}
