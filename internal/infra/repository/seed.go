package repository

import (
	"fmt"

	"github.com/todo-task-journal/tasks-api/internal/domain/task"
)

// ExampleTasks returns a fixed set of ten tasks to initialize an empty file.
func ExampleTasks() []task.Entity {
	names := []string{
		"Buy groceries",
		"Call the dentist",
		"Renew passport",
		"Book flight",
		"Pay electricity bill",
		"Clean the garage",
		"Prepare presentation",
		"Water the plants",
		"Schedule car service",
		"Read a book",
	}

	tasks := make([]task.Entity, 0, len(names))

	for i, name := range names {
		t := task.Entity{Name: name, Date: fmt.Sprintf("2025-06-%02d", i+1)}
		t.ID = i + 1
		tasks = append(tasks, t)
	}

	return tasks
}
