package infra

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/todo-task-journal/tasks-api/internal/domain/task"
	"github.com/todo-task-journal/tasks-api/internal/infra/docstore"
	"github.com/todo-task-journal/tasks-api/internal/infra/identity"
	"github.com/todo-task-journal/tasks-api/internal/infra/log"
	"github.com/todo-task-journal/tasks-api/internal/infra/repository"
	"github.com/todo-task-journal/tasks-api/internal/infra/service"
)

type taskRepository interface {
	TaskLister() task.Lister
	TaskCreator() task.Creator
	TaskUpdater() task.Updater
	TaskDeleter() task.Deleter
}

// NewServiceLocator initializes application resources.
func NewServiceLocator(cfg service.Config) (*service.Locator, error) {
	return NewServiceLocatorWithLog(cfg, os.Stderr)
}

// NewServiceLocatorWithLog initializes application resources with logs written to w.
func NewServiceLocatorWithLog(cfg service.Config, w io.Writer) (*service.Locator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := service.Locator{Config: cfg}
	l.Logger = log.NewLogger(w, cfg.LogLevel, cfg.LogFormat)

	var repo taskRepository

	switch cfg.Storage {
	case service.StorageMemory:
		repo = repository.NewMemory()
	case service.StorageFile:
		var seed []task.Entity
		if cfg.TasksFileSeed {
			seed = repository.ExampleTasks()
		}

		repo = repository.NewFile(cfg.TasksFile, seed)
	case service.StorageDocument:
		holder := docstore.NewHolder(docstore.Config{
			DSN:           cfg.DocstoreDSN,
			Collection:    cfg.DocstoreCollection,
			RetryInterval: cfg.DocstoreRetryInterval,
		}, l.Logger)

		ctx, done := l.ShutdownContext("docstore")

		go func() {
			holder.Run(ctx)
			holder.Close()
			close(done)
		}()

		repo = repository.NewDocument(holder)
	default:
		return nil, errors.New("unexpected storage " + cfg.Storage)
	}

	l.TaskListerProvider = repo
	l.TaskCreatorProvider = repo
	l.TaskUpdaterProvider = repo
	l.TaskDeleterProvider = repo

	if cfg.AuthEnabled {
		l.Identity = identity.NewProvider([]byte(cfg.JWTSecret), cfg.JWTTTL, l.Logger)
	}

	l.Logger.Info(context.Background(), "service initialized",
		"storage", cfg.Storage, "auth", cfg.AuthEnabled)

	return &l, nil
}
