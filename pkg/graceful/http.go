package graceful

import (
	"context"
	"net/http"
)

// WaitToShutdownHTTP synchronously waits for shutdown signal and shutdowns http server.
func (s *Shutdown) WaitToShutdownHTTP(server *http.Server, subscriber string) error {
	shutdown, done := s.ShutdownSignal(subscriber)
	defer close(done)

	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout())
	defer cancel()

	return server.Shutdown(ctx)
}
