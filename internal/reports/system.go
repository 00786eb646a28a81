package reports

import (
	"context"

	"github.com/meditriage/meditriage/pkg/storage"
)

// System defines the public contract for reporting operations.
type System interface {
	Handler() *Handler

	Summary(ctx context.Context) (*Summary, error)
	Export(ctx context.Context) (*Export, error)
	List(ctx context.Context, marker string, maxResults int32) (*storage.ListResult, error)
	Download(ctx context.Context, key string) (*storage.DownloadResult, error)
}
