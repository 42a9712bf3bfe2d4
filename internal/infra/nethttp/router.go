// Package nethttp exposes use cases over net/http.
package nethttp

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/swaggest/openapi-go/openapi3"
	"github.com/swaggest/rest"
	"github.com/swaggest/rest/nethttp"
	"github.com/swaggest/rest/web"
	swgui "github.com/swaggest/swgui/v5emb"
	"github.com/todo-task-journal/tasks-api/internal/infra/log"
	"github.com/todo-task-journal/tasks-api/internal/infra/schema"
	"github.com/todo-task-journal/tasks-api/internal/infra/service"
	"github.com/todo-task-journal/tasks-api/internal/usecase"
)

// NewRouter creates HTTP router.
//
// Task endpoints are served under /api, they require bearer token when identity is enabled.
func NewRouter(locator *service.Locator) http.Handler {
	s := web.NewService(openapi3.NewReflector())

	schema.SetupOpenAPICollector(s.OpenAPICollector)

	s.Use(
		middleware.RequestID,
		log.RequestMiddleware(locator.Logger),
		cors.New(cors.Options{
			AllowedOrigins: locator.Config.CORSAllowedOrigins,
			AllowedMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete,
			},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
		}).Handler,
	)

	s.Wrap(
		nethttp.UseCaseMiddlewares(log.UseCaseMiddleware(locator.Logger)),
		errorResponses,
	)

	s.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", nethttp.NewHandler(usecase.Health()))

		r.Group(func(r chi.Router) {
			if locator.Identity != nil {
				r.Use(
					locator.Identity.Middleware,
					nethttp.HTTPBearerSecurityMiddleware(s.OpenAPICollector, "bearerAuth",
						"Token of anonymous user, see /api/generate-jwt.", "JWT",
						nethttp.SecurityResponse(new(string), http.StatusForbidden)),
				)
			}

			r.Use(emptyBodyAsObject)

			r.Method(http.MethodGet, "/tasks", nethttp.NewHandler(usecase.ListTasks(locator)))
			r.Method(http.MethodPost, "/tasks", nethttp.NewHandler(usecase.CreateTask(locator),
				nethttp.SuccessStatus(http.StatusCreated)))
			r.Method(http.MethodPut, "/tasks/{id}", nethttp.NewHandler(usecase.UpdateTask(locator)))
			r.Method(http.MethodDelete, "/tasks/{id}", nethttp.NewHandler(usecase.DeleteTask(locator)))
		})

		if locator.Identity != nil {
			r.Method(http.MethodGet, "/generate-jwt", nethttp.NewHandler(usecase.GenerateToken(locator.Identity)))
		}
	})

	// Swagger UI endpoint at /docs.
	s.Docs("/docs", swgui.New)

	return s
}

// emptyBodyAsObject makes POST and PUT requests without body decode as {}.
func emptyBodyAsObject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 && (r.Method == http.MethodPost || r.Method == http.MethodPut) {
			r.Body = io.NopCloser(strings.NewReader("{}"))
			r.ContentLength = 2

			if r.Header.Get("Content-Type") == "" {
				r.Header.Set("Content-Type", "application/json")
			}
		}

		next.ServeHTTP(w, r)
	})
}

// errorResponses renders failures as {"error": "..."}.
func errorResponses(handler http.Handler) http.Handler {
	var h *nethttp.Handler
	if nethttp.HandlerAs(handler, &h) {
		h.MakeErrResp = func(_ context.Context, err error) (int, interface{}) {
			code, er := rest.Err(err)

			var ue usecase.Error
			if errors.As(err, &ue) {
				return code, usecase.ErrResponse{Error: ue.Message}
			}

			return code, usecase.ErrResponse{Error: er.ErrorText}
		}
	}

	return handler
}
