// Package main serves tasks API.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/todo-task-journal/tasks-api/internal/infra"
	"github.com/todo-task-journal/tasks-api/internal/infra/nethttp"
	"github.com/todo-task-journal/tasks-api/internal/infra/service"
)

func main() {
	// Initialize config from ENV vars.
	cfg := service.Config{}

	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal(err)
	}

	// Initialize application resources.
	l, err := infra.NewServiceLocator(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Terminate service locator on CTRL+C (SIGTERM or SIGINT).
	l.EnableGracefulShutdown()

	// Initialize HTTP server.
	srv := http.Server{
		Addr: fmt.Sprintf(":%d", cfg.HTTPPort), Handler: nethttp.NewRouter(l),
		ReadHeaderTimeout: time.Second,
	}

	// Start HTTP server.
	l.Logger.Important(context.Background(), "starting HTTP server",
		"url", fmt.Sprintf("http://localhost:%d/api", cfg.HTTPPort),
		"docs", fmt.Sprintf("http://localhost:%d/docs", cfg.HTTPPort))

	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Wait for termination signal and HTTP shutdown finished.
	if err := l.WaitToShutdownHTTP(&srv, "http"); err != nil {
		log.Fatal(err)
	}

	// Wait for service locator termination finished.
	if err := l.Wait(); err != nil {
		log.Fatal(err)
	}
}
