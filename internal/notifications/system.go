package notifications

import (
	"context"

	"github.com/google/uuid"

	"github.com/meditriage/meditriage/internal/engine"
	"github.com/meditriage/meditriage/pkg/pagination"
)

// System defines the public contract for notification domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Notification], error)

	Find(ctx context.Context, id uuid.UUID) (*Notification, error)
	Submit(ctx context.Context, cmd SubmitCommand) (*Notification, error)
	SubmitBatch(ctx context.Context, cmds []SubmitCommand) ([]BatchResult, error)
	Recent() []engine.HistoryEntry
	Delete(ctx context.Context, id uuid.UUID) error
}
