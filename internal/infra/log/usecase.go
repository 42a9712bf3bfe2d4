// Package log provides logging helpers.
package log

import (
	"context"
	"net/http"

	"github.com/bool64/ctxd"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/swaggest/rest"
	"github.com/swaggest/usecase"
)

// UseCaseMiddleware creates logging use case middleware.
//
// Failures with client error status are logged as warnings, others as errors.
func UseCaseMiddleware(logger ctxd.Logger) usecase.Middleware {
	return usecase.MiddlewareFunc(func(next usecase.Interactor) usecase.Interactor {
		if logger == nil {
			return next
		}

		var (
			hasName usecase.HasName
			name    = "unknown"
		)

		if usecase.As(next, &hasName) {
			name = hasName.Name()
		}

		return usecase.Interact(func(ctx context.Context, input, output any) error {
			ctx = ctxd.AddFields(ctx, "usecase", name)

			err := next.Interact(ctx, input, output)
			if err == nil {
				return nil
			}

			if code, _ := rest.Err(err); code < http.StatusInternalServerError {
				logger.Warn(ctx, "usecase request failed", "input", input, "error", err.Error())
			} else {
				logger.Error(ctx, "usecase request failed", "input", input, "error", err.Error())
			}

			return err
		})
	})
}

// RequestMiddleware adds request id to context fields and logs served requests at debug level.
func RequestMiddleware(logger ctxd.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if reqID := middleware.GetReqID(ctx); reqID != "" {
				ctx = ctxd.AddFields(ctx, "requestId", reqID)
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(ctx))

			logger.Debug(ctx, "request served",
				"method", r.Method,
				"uri", r.RequestURI,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
			)
		})
	}
}
