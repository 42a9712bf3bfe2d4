package usecase

import (
	"context"
	"errors"
	"strconv"

	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
	"github.com/todo-task-journal/tasks-api/internal/domain/task"
	"github.com/todo-task-journal/tasks-api/internal/domain/user"
)

type updateTask struct {
	ID        string `path:"id" json:"-"`
	Completed *bool  `json:"completed,omitempty" description:"New completion flag."`
	Date      string `json:"date,omitempty" description:"New due date, empty value is ignored."`
}

// UpdateTask creates usecase interactor.
//
// Response carries full record or only id, completed and date, depending on storage backend.
func UpdateTask(deps interface {
	TaskUpdater() task.Updater
}) usecase.Interactor {
	u := usecase.IOInteractor{}

	u.SetName("updateTask")
	u.SetTitle("Update Task")
	u.SetDescription("Update completion flag and/or date of existing task.")
	u.Input = new(updateTask)
	u.Output = new(task.Entity)
	u.SetExpectedErrors(
		status.NotFound,
		status.Internal,
	)
	u.SetTags("Tasks")

	u.Interactor = usecase.Interact(func(ctx context.Context, input, output interface{}) error {
		var (
			in  = input.(*updateTask)
			out = output.(*task.Entity)
			err error
		)

		identity, ok := parseIdentity(in.ID)
		if !ok {
			return fail(status.NotFound, msgTaskNotFound, nil)
		}

		*out, err = deps.TaskUpdater().Update(ctx, identity, user.IDFromContext(ctx),
			task.Patch{Completed: in.Completed, Date: in.Date})

		switch {
		case errors.Is(err, task.ErrNotFound):
			return fail(status.NotFound, msgTaskNotFound, nil)
		case err != nil:
			return fail(status.Internal, msgUpdateFailed, err)
		}

		return nil
	})

	return u
}

// parseIdentity reads task id from path, anything but a whole decimal integer matches no task.
func parseIdentity(s string) (task.Identity, bool) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return task.Identity{}, false
	}

	return task.Identity{ID: id}, true
}
