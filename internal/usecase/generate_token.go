package usecase

import (
	"context"

	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
	"github.com/todo-task-journal/tasks-api/internal/domain/user"
)

type token struct {
	Token string `json:"token" description:"Bearer token of a new anonymous user, valid for one hour."`
}

// GenerateToken creates usecase interactor.
func GenerateToken(deps interface {
	TokenIssuer() user.TokenIssuer
}) usecase.IOInteractor {
	u := usecase.NewIOI(nil, new(token), func(ctx context.Context, _, output interface{}) error {
		var (
			out = output.(*token)
			err error
		)

		out.Token, err = deps.TokenIssuer().IssueToken(ctx)
		if err != nil {
			return fail(status.Internal, msgTokenFailed, err)
		}

		return nil
	})

	u.SetTitle("Generate Token")
	u.SetDescription("Issue bearer token for a new anonymous user.")
	u.SetExpectedErrors(status.Internal)
	u.SetTags("Identity")

	return u
}
