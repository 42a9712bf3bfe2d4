package usecase

import (
	"context"

	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
	"github.com/todo-task-journal/tasks-api/internal/domain/task"
	"github.com/todo-task-journal/tasks-api/internal/domain/user"
)

type createTask struct {
	Name      string `json:"name" description:"Task label."`
	Completed *bool  `json:"completed,omitempty" description:"Completion flag, false by default."`
	Date      string `json:"date" description:"Due date, not validated."`
}

// CreateTask creates usecase interactor.
func CreateTask(deps interface {
	TaskCreator() task.Creator
}) usecase.IOInteractor {
	u := usecase.NewIOI(new(createTask), new(task.Entity), func(ctx context.Context, input, output interface{}) error {
		var (
			in    = input.(*createTask)
			out   = output.(*task.Entity)
			value = task.Value{Name: in.Name, Date: in.Date}
			err   error
		)

		if in.Completed != nil {
			value.Completed = *in.Completed
		}

		if value.Validate() != nil {
			return fail(status.InvalidArgument, msgInvalidTask, nil)
		}

		*out, err = deps.TaskCreator().Create(ctx, user.IDFromContext(ctx), value)
		if err != nil {
			return fail(status.Internal, msgAddFailed, err)
		}

		return nil
	})

	u.SetDescription("Create task to be done.")
	u.SetExpectedErrors(
		status.InvalidArgument,
		status.Internal,
	)
	u.SetTags("Tasks")

	return u
}
