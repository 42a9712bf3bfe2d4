package usecase

import (
	"context"
	"fmt"

	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
	"github.com/todo-task-journal/tasks-api/internal/domain/task"
	"github.com/todo-task-journal/tasks-api/internal/domain/user"
)

// ListTasks creates usecase interactor.
func ListTasks(
	deps interface {
		TaskLister() task.Lister
	},
) usecase.IOInteractor {
	u := usecase.NewIOI(nil, new([]task.Entity), func(ctx context.Context, _, output interface{}) error {
		out, ok := output.(*[]task.Entity)
		if !ok {
			return fmt.Errorf("%w: unexpected output type %T", status.Unimplemented, output)
		}

		tasks, err := deps.TaskLister().List(ctx, user.IDFromContext(ctx))
		if err != nil {
			return fail(status.Internal, msgFetchFailed, err)
		}

		*out = tasks

		return nil
	})

	u.SetDescription("List all tasks of current user.")
	u.SetExpectedErrors(status.Internal)
	u.SetTags("Tasks")

	return u
}
