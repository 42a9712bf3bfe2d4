package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggest/rest"
	"github.com/todo-task-journal/tasks-api/internal/domain/task"
	"github.com/todo-task-journal/tasks-api/internal/domain/user"
)

type fakeRepo struct {
	err   error
	calls int
	owner string
	id    task.Identity
	patch task.Patch
	value task.Value
}

func (f *fakeRepo) TaskLister() task.Lister   { return f }
func (f *fakeRepo) TaskCreator() task.Creator { return f }
func (f *fakeRepo) TaskUpdater() task.Updater { return f }
func (f *fakeRepo) TaskDeleter() task.Deleter { return f }

func (f *fakeRepo) List(_ context.Context, owner string) ([]task.Entity, error) {
	f.calls++
	f.owner = owner

	if f.err != nil {
		return nil, f.err
	}

	return []task.Entity{{Identity: task.Identity{ID: 1}, Name: "a", Date: "b", UserID: owner}}, nil
}

func (f *fakeRepo) Create(_ context.Context, owner string, value task.Value) (task.Entity, error) {
	f.calls++
	f.owner = owner
	f.value = value

	if f.err != nil {
		return task.Entity{}, f.err
	}

	e := task.NewEntity(owner, value)
	e.ID = 1

	return e, nil
}

func (f *fakeRepo) Update(_ context.Context, id task.Identity, owner string, patch task.Patch) (task.Entity, error) {
	f.calls++
	f.owner = owner
	f.id = id
	f.patch = patch

	if f.err != nil {
		return task.Entity{}, f.err
	}

	e := task.Entity{Identity: id, Name: "a", Date: "b"}
	patch.Apply(&e)

	return e, nil
}

func (f *fakeRepo) Delete(_ context.Context, id task.Identity, owner string) error {
	f.calls++
	f.owner = owner
	f.id = id

	return f.err
}

type fakeIssuer struct {
	err error
}

func (f fakeIssuer) TokenIssuer() user.TokenIssuer { return f }

func (f fakeIssuer) IssueToken(_ context.Context) (string, error) {
	return "tkn", f.err
}

func assertFailure(t *testing.T, err error, code int, message string) {
	t.Helper()

	require.Error(t, err)

	c, _ := rest.Err(err)
	assert.Equal(t, code, c)

	var ue Error

	require.True(t, errors.As(err, &ue))
	assert.Equal(t, message, ue.Message)
}

func TestCreateTask(t *testing.T) {
	repo := &fakeRepo{}
	u := CreateTask(repo)
	ctx := user.WithID(context.Background(), "user_a")

	var out task.Entity

	for _, in := range []createTask{
		{Date: "2025-06-10"},
		{Name: "Book flight"},
		{},
	} {
		err := u.Interact(ctx, &in, &out)
		assertFailure(t, err, http.StatusBadRequest, "Name and date are required")
	}

	assert.Equal(t, 0, repo.calls)

	require.NoError(t, u.Interact(ctx, &createTask{Name: "Book flight", Date: "2025-06-10"}, &out))
	assert.Equal(t, task.Entity{
		Identity: task.Identity{ID: 1},
		Name:     "Book flight",
		Date:     "2025-06-10",
		UserID:   "user_a",
	}, out)
	assert.False(t, repo.value.Completed)

	completed := true

	require.NoError(t, u.Interact(ctx, &createTask{Name: "a", Date: "b", Completed: &completed}, &out))
	assert.True(t, out.Completed)

	repo.err = errors.New("disk full")
	err := u.Interact(ctx, &createTask{Name: "a", Date: "b"}, &out)
	assertFailure(t, err, http.StatusInternalServerError, "Failed to add task")
	assert.ErrorContains(t, err, "disk full")
}

func TestListTasks(t *testing.T) {
	repo := &fakeRepo{}
	u := ListTasks(repo)

	var out []task.Entity

	require.NoError(t, u.Interact(user.WithID(context.Background(), "user_b"), nil, &out))
	assert.Len(t, out, 1)
	assert.Equal(t, "user_b", repo.owner)

	require.NoError(t, u.Interact(context.Background(), nil, &out))
	assert.Equal(t, "", repo.owner)

	repo.err = task.ErrUnavailable
	assertFailure(t, u.Interact(context.Background(), nil, &out), http.StatusInternalServerError, "Failed to fetch tasks")
}

func TestUpdateTask(t *testing.T) {
	repo := &fakeRepo{}
	u := UpdateTask(repo)

	var out task.Entity

	completed := true

	require.NoError(t, u.Interact(context.Background(), &updateTask{ID: "7", Completed: &completed}, &out))
	assert.Equal(t, task.Identity{ID: 7}, repo.id)
	assert.True(t, out.Completed)
	assert.Equal(t, "b", out.Date)

	require.NoError(t, u.Interact(context.Background(), &updateTask{ID: "7", Date: "c"}, &out))
	assert.Nil(t, repo.patch.Completed)
	assert.Equal(t, "c", out.Date)

	calls := repo.calls

	for _, id := range []string{"abc", "1.0", "1abc", ""} {
		assertFailure(t, u.Interact(context.Background(), &updateTask{ID: id}, &out),
			http.StatusNotFound, "Task not found")
	}

	assert.Equal(t, calls, repo.calls)

	repo.err = task.ErrNotFound
	assertFailure(t, u.Interact(context.Background(), &updateTask{ID: "999"}, &out),
		http.StatusNotFound, "Task not found")

	repo.err = task.ErrUnavailable
	assertFailure(t, u.Interact(context.Background(), &updateTask{ID: "1"}, &out),
		http.StatusInternalServerError, "Failed to update task")
}

func TestDeleteTask(t *testing.T) {
	repo := &fakeRepo{}
	u := DeleteTask(repo)
	ctx := user.WithID(context.Background(), "user_a")

	require.NoError(t, u.Interact(ctx, &deleteTask{ID: "3"}, nil))
	assert.Equal(t, task.Identity{ID: 3}, repo.id)
	assert.Equal(t, "user_a", repo.owner)

	assertFailure(t, u.Interact(ctx, &deleteTask{ID: "1.5"}, nil), http.StatusNotFound, "Task not found")

	repo.err = task.ErrNotFound
	assertFailure(t, u.Interact(ctx, &deleteTask{ID: "999"}, nil), http.StatusNotFound, "Task not found")

	repo.err = errors.New("failed")
	assertFailure(t, u.Interact(ctx, &deleteTask{ID: "1"}, nil), http.StatusInternalServerError, "Failed to delete task")
}

func TestGenerateToken(t *testing.T) {
	var out token

	require.NoError(t, GenerateToken(fakeIssuer{}).Interact(context.Background(), nil, &out))
	assert.Equal(t, "tkn", out.Token)

	assertFailure(t, GenerateToken(fakeIssuer{err: errors.New("failed")}).Interact(context.Background(), nil, &out),
		http.StatusInternalServerError, "Failed to generate token")
}

func TestHealth(t *testing.T) {
	var out healthStatus

	require.NoError(t, Health().Interact(context.Background(), nil, &out))
	assert.Equal(t, "API is running smoothly 🚀", out.Status)
}
