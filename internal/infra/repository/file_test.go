package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/todo-task-journal/tasks-api/internal/domain/task"
	"github.com/todo-task-journal/tasks-api/internal/infra/repository"
)

func TestFile(t *testing.T) {
	exerciseRepository(t, repository.NewFile(filepath.Join(t.TempDir(), "tasks.json"), nil))
}

func TestFile_lazyInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	r := repository.NewFile(path, nil)

	list, err := r.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, list)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFile_seed(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")
	r := repository.NewFile(path, repository.ExampleTasks())

	list, err := r.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 10)
	assert.Equal(t, 1, list[0].ID)
	assert.Equal(t, 10, list[9].ID)

	created, err := r.Create(ctx, "", task.Value{Name: "Book flight", Date: "2025-06-10"})
	require.NoError(t, err)
	assert.Equal(t, 11, created.ID)

	// Seed is not applied to existing file.
	list, err = repository.NewFile(path, repository.ExampleTasks()).List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, list, 11)
}

func TestFile_maxPlusOne(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")

	require.NoError(t, os.WriteFile(path, []byte(`[
  {"id":7,"name":"seven","completed":false,"date":"2025-06-07"},
  {"id":3,"name":"three","completed":true,"date":"2025-06-03"}
]`), 0o600))

	r := repository.NewFile(path, nil)

	created, err := r.Create(ctx, "", task.Value{Name: "eight", Date: "2025-06-08"})
	require.NoError(t, err)
	assert.Equal(t, 8, created.ID)

	list, err := r.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{7, 3, 8}, []int{list[0].ID, list[1].ID, list[2].ID})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[
  {
    "id": 7,
    "name": "seven",
    "completed": false,
    "date": "2025-06-07"
  },
  {
    "id": 3,
    "name": "three",
    "completed": true,
    "date": "2025-06-03"
  },
  {
    "id": 8,
    "name": "eight",
    "completed": false,
    "date": "2025-06-08"
  }
]`, string(data))
}

func TestFile_corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	r := repository.NewFile(path, nil)

	_, err := r.List(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode tasks file")

	_, err = r.Create(context.Background(), "", task.Value{Name: "a", Date: "b"})
	require.Error(t, err)
}
