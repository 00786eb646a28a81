package api

import (
	"github.com/meditriage/meditriage/internal/notifications"
	"github.com/meditriage/meditriage/internal/reports"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Notifications notifications.System
	Reports       reports.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	notificationsSystem := notifications.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	reportsSystem := reports.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.MaxListSize,
	)

	return &Domain{
		Notifications: notificationsSystem,
		Reports:       reportsSystem,
	}
}
