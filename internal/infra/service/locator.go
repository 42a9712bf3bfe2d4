package service

import (
	"github.com/bool64/ctxd"
	"github.com/todo-task-journal/tasks-api/internal/infra/identity"
	"github.com/todo-task-journal/tasks-api/pkg/graceful"
)

// Locator defines application services.
type Locator struct {
	graceful.Shutdown

	Config Config
	Logger ctxd.Logger

	// Identity is nil when owner scoping is disabled.
	Identity *identity.Provider

	TaskListerProvider
	TaskCreatorProvider
	TaskUpdaterProvider
	TaskDeleterProvider
}
