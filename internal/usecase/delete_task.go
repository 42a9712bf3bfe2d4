package usecase

import (
	"context"
	"errors"

	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
	"github.com/todo-task-journal/tasks-api/internal/domain/task"
	"github.com/todo-task-journal/tasks-api/internal/domain/user"
)

type deleteTask struct {
	ID string `path:"id"`
}

type deleteTaskDeps interface {
	TaskDeleter() task.Deleter
}

// DeleteTask creates usecase interactor.
func DeleteTask(deps deleteTaskDeps) usecase.IOInteractor {
	u := usecase.NewIOI(new(deleteTask), nil, func(ctx context.Context, input, _ interface{}) error {
		in := input.(*deleteTask)

		identity, ok := parseIdentity(in.ID)
		if !ok {
			return fail(status.NotFound, msgTaskNotFound, nil)
		}

		err := deps.TaskDeleter().Delete(ctx, identity, user.IDFromContext(ctx))

		switch {
		case errors.Is(err, task.ErrNotFound):
			return fail(status.NotFound, msgTaskNotFound, nil)
		case err != nil:
			return fail(status.Internal, msgDeleteFailed, err)
		}

		return nil
	})

	u.SetDescription("Delete task permanently.")
	u.SetExpectedErrors(
		status.NotFound,
		status.Internal,
	)
	u.SetTags("Tasks")

	return u
}
