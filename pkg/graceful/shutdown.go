// Package graceful coordinates service termination.
package graceful

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// DefaultTimeout is a default Timeout to wait for graceful termination.
const DefaultTimeout = 10 * time.Second

// Shutdown broadcasts termination to subscribers and waits for them to finish.
//
// Zero value is ready to use.
type Shutdown struct {
	Timeout time.Duration

	mu          sync.Mutex
	subscribers map[string]chan struct{}
	signal      chan struct{}
	closed      bool
	osNotified  bool
}

func (s *Shutdown) init() {
	if s.signal == nil {
		s.signal = make(chan struct{})
	}
}

// Close invokes shutdown.
func (s *Shutdown) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.init()

	if !s.closed {
		s.closed = true
		close(s.signal)
	}
}

// EnableGracefulShutdown schedules shutdown on SIGTERM or SIGINT.
func (s *Shutdown) EnableGracefulShutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.osNotified {
		return
	}

	s.osNotified = true

	exit := make(chan os.Signal, 1)
	signal.Notify(exit, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-exit
		signal.Stop(exit)
		s.Close()
	}()
}

// ShutdownSignal returns a channel that is closed on shutdown and a confirmation channel
// that subscriber should close once it has finished.
func (s *Shutdown) ShutdownSignal(subscriber string) (shutdown <-chan struct{}, done chan<- struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.init()

	if s.subscribers == nil {
		s.subscribers = make(map[string]chan struct{})
	}

	d, ok := s.subscribers[subscriber]
	if !ok {
		d = make(chan struct{}, 1)
		s.subscribers[subscriber] = d
	}

	return s.signal, d
}

// ShutdownContext returns a context that is canceled on shutdown and a confirmation
// channel that subscriber should close once it has finished.
func (s *Shutdown) ShutdownContext(subscriber string) (context.Context, chan<- struct{}) {
	shutdown, done := s.ShutdownSignal(subscriber)
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		<-shutdown
		cancel()
	}()

	return ctx, done
}

// Wait blocks until shutdown is invoked and all subscribers have finished.
func (s *Shutdown) Wait() error {
	s.mu.Lock()
	s.init()
	shutdown := s.signal
	s.mu.Unlock()

	<-shutdown

	return s.waitSubscribers()
}

func (s *Shutdown) timeout() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Timeout == 0 {
		return DefaultTimeout
	}

	return s.Timeout
}

func (s *Shutdown) waitSubscribers() error {
	deadline := time.After(s.timeout())

	s.mu.Lock()
	subscribers := make(map[string]chan struct{}, len(s.subscribers))

	for name, done := range s.subscribers {
		subscribers[name] = done
	}
	s.mu.Unlock()

	for subscriber, done := range subscribers {
		select {
		case <-done:
			continue
		case <-deadline:
			return fmt.Errorf("shutdown deadline exceeded while waiting for %s", subscriber)
		}
	}

	return nil
}
