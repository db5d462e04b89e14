package interfaces

import (
	"context"

	"github.com/drivertools/driverget/pkg/domain/model"
)

// Driver defines the single download action each driver flow exposes.
// Version and URL resolution happen at construction, not here.
type Driver interface {
	Download(ctx context.Context) (*model.DownloadResult, error)
}
