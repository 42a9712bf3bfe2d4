package service

import "github.com/todo-task-journal/tasks-api/internal/domain/task"

// TaskListerProvider is a service locator provider.
type TaskListerProvider interface {
	TaskLister() task.Lister
}

// TaskCreatorProvider is a service locator provider.
type TaskCreatorProvider interface {
	TaskCreator() task.Creator
}

// TaskUpdaterProvider is a service locator provider.
type TaskUpdaterProvider interface {
	TaskUpdater() task.Updater
}

// TaskDeleterProvider is a service locator provider.
type TaskDeleterProvider interface {
	TaskDeleter() task.Deleter
}
