package usecase

import (
	"context"

	"github.com/swaggest/usecase"
)

type healthStatus struct {
	Status string `json:"status"`
}

// Health creates usecase interactor.
func Health() usecase.IOInteractor {
	u := usecase.NewIOI(nil, new(healthStatus), func(_ context.Context, _, output interface{}) error {
		out := output.(*healthStatus)
		out.Status = "API is running smoothly 🚀"

		return nil
	})

	u.SetTitle("Health Check")
	u.SetDescription("Report service liveness, storage is not checked.")
	u.SetTags("Service")

	return u
}
