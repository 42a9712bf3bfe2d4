package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/bool64/ctxd"
	"github.com/todo-task-journal/tasks-api/internal/domain/task"
)

// File is a task repository backed by a single JSON file.
//
// Every operation reads the whole collection and every mutation rewrites the whole file.
// Operations are serialized within the process, concurrent writers in other processes may
// overwrite each other.
type File struct {
	mu   sync.Mutex
	path string
	seed []task.Entity
}

// NewFile creates file repository, seed is persisted when file does not exist yet.
func NewFile(path string, seed []task.Entity) *File {
	return &File{path: path, seed: seed}
}

// TaskLister is a service provider.
func (fr *File) TaskLister() task.Lister {
	return fr
}

// TaskCreator is a service provider.
func (fr *File) TaskCreator() task.Creator {
	return fr
}

// TaskUpdater is a service provider.
func (fr *File) TaskUpdater() task.Updater {
	return fr
}

// TaskDeleter is a service provider.
func (fr *File) TaskDeleter() task.Deleter {
	return fr
}

// List reads tasks of owner in file order.
func (fr *File) List(ctx context.Context, owner string) ([]task.Entity, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	tasks, err := fr.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]task.Entity, 0, len(tasks))

	for _, t := range tasks {
		if t.OwnedBy(owner) {
			result = append(result, t)
		}
	}

	return result, nil
}

// Create appends a new task with id one more than current maximum.
func (fr *File) Create(ctx context.Context, owner string, value task.Value) (task.Entity, error) {
	if err := value.Validate(); err != nil {
		return task.Entity{}, err
	}

	fr.mu.Lock()
	defer fr.mu.Unlock()

	tasks, err := fr.load(ctx)
	if err != nil {
		return task.Entity{}, err
	}

	t := task.NewEntity(owner, value)
	t.ID = nextID(tasks)

	if err := fr.save(ctx, append(tasks, t)); err != nil {
		return task.Entity{}, err
	}

	return t, nil
}

// Update applies patch to task of owner and returns full updated record.
func (fr *File) Update(ctx context.Context, identity task.Identity, owner string, patch task.Patch) (task.Entity, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	tasks, err := fr.load(ctx)
	if err != nil {
		return task.Entity{}, err
	}

	i := indexOf(tasks, identity, owner)
	if i == -1 {
		return task.Entity{}, task.ErrNotFound
	}

	patch.Apply(&tasks[i])

	if err := fr.save(ctx, tasks); err != nil {
		return task.Entity{}, err
	}

	return tasks[i], nil
}

// Delete removes task of owner.
func (fr *File) Delete(ctx context.Context, identity task.Identity, owner string) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	tasks, err := fr.load(ctx)
	if err != nil {
		return err
	}

	i := indexOf(tasks, identity, owner)
	if i == -1 {
		return task.ErrNotFound
	}

	return fr.save(ctx, append(tasks[:i], tasks[i+1:]...))
}

func (fr *File) load(ctx context.Context) ([]task.Entity, error) {
	data, err := os.ReadFile(fr.path)
	if errors.Is(err, fs.ErrNotExist) {
		tasks := append(make([]task.Entity, 0, len(fr.seed)), fr.seed...)

		return tasks, fr.save(ctx, tasks)
	}

	if err != nil {
		return nil, ctxd.WrapError(ctx, err, "failed to read tasks file", "path", fr.path)
	}

	var tasks []task.Entity

	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, ctxd.WrapError(ctx, err, "failed to decode tasks file", "path", fr.path)
	}

	if tasks == nil {
		tasks = []task.Entity{}
	}

	return tasks, nil
}

func (fr *File) save(ctx context.Context, tasks []task.Entity) error {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	if err := os.WriteFile(fr.path, data, 0o600); err != nil {
		return ctxd.WrapError(ctx, err, "failed to write tasks file", "path", fr.path)
	}

	return nil
}

func nextID(tasks []task.Entity) int {
	maxID := 0

	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}

	return maxID + 1
}

func indexOf(tasks []task.Entity, identity task.Identity, owner string) int {
	for i, t := range tasks {
		if t.Identity == identity && t.OwnedBy(owner) {
			return i
		}
	}

	return -1
}
