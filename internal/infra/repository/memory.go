// Package repository implements domain services with repository.
package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/todo-task-journal/tasks-api/internal/domain/task"
)

// Memory is an in-memory task repository.
//
// Ids come from a counter and are never reused within process lifetime.
type Memory struct {
	mu     sync.Mutex
	lastID int
	list   map[task.Identity]task.Entity
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{}
}

// TaskLister is a service provider.
func (tr *Memory) TaskLister() task.Lister {
	return tr
}

// TaskCreator is a service provider.
func (tr *Memory) TaskCreator() task.Creator {
	return tr
}

// TaskUpdater is a service provider.
func (tr *Memory) TaskUpdater() task.Updater {
	return tr
}

// TaskDeleter is a service provider.
func (tr *Memory) TaskDeleter() task.Deleter {
	return tr
}

// List finds all tasks of owner ordered by id.
func (tr *Memory) List(_ context.Context, owner string) ([]task.Entity, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	result := make([]task.Entity, 0, len(tr.list))

	for _, t := range tr.list {
		if t.OwnedBy(owner) {
			result = append(result, t)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// Create creates a new task.
func (tr *Memory) Create(_ context.Context, owner string, value task.Value) (task.Entity, error) {
	if err := value.Validate(); err != nil {
		return task.Entity{}, err
	}

	tr.mu.Lock()
	defer tr.mu.Unlock()

	tr.lastID++

	if tr.list == nil {
		tr.list = make(map[task.Identity]task.Entity, 1)
	}

	t := task.NewEntity(owner, value)
	t.ID = tr.lastID
	tr.list[t.Identity] = t

	return t, nil
}

// Update applies patch to task of owner.
func (tr *Memory) Update(_ context.Context, identity task.Identity, owner string, patch task.Patch) (task.Entity, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	t, found := tr.list[identity]
	if !found || !t.OwnedBy(owner) {
		return task.Entity{}, task.ErrNotFound
	}

	patch.Apply(&t)
	tr.list[identity] = t

	return t, nil
}

// Delete removes task of owner.
func (tr *Memory) Delete(_ context.Context, identity task.Identity, owner string) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	t, found := tr.list[identity]
	if !found || !t.OwnedBy(owner) {
		return task.ErrNotFound
	}

	delete(tr.list, identity)

	return nil
}
