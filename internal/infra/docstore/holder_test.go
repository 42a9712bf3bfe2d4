package docstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/todo-task-journal/tasks-api/internal/infra/docstore"
)

const unreachableDSN = "postgres://tasks@127.0.0.1:1/tasks?connect_timeout=1"

func TestHolder_WithConnection_notConnected(t *testing.T) {
	h := docstore.NewHolder(docstore.Config{DSN: unreachableDSN}, nil)

	called := false
	err := h.WithConnection(context.Background(), func(_ *pgxpool.Pool) error {
		called = true

		return nil
	})

	assert.ErrorIs(t, err, docstore.ErrNotConnected)
	assert.False(t, called)
	assert.False(t, h.IsConnected())
}

func TestHolder_Connect_unreachable(t *testing.T) {
	h := docstore.NewHolder(docstore.Config{DSN: unreachableDSN, ConnectTimeout: time.Second}, nil)

	err := h.Connect(context.Background())
	assert.Error(t, err)
	assert.False(t, h.IsConnected())
}

func TestHolder_Connect_invalidDSN(t *testing.T) {
	h := docstore.NewHolder(docstore.Config{DSN: "://"}, nil)

	err := h.Connect(context.Background())
	assert.Error(t, err)
	assert.False(t, errors.Is(err, docstore.ErrNotConnected))
}

func TestHolder_Collection(t *testing.T) {
	assert.Equal(t, `"tasks"`, docstore.NewHolder(docstore.Config{}, nil).Collection())
	assert.Equal(t, `"my""tasks"`, docstore.NewHolder(docstore.Config{Collection: `my"tasks`}, nil).Collection())
}

func TestHolder_Run_stops(t *testing.T) {
	h := docstore.NewHolder(docstore.Config{
		DSN:            unreachableDSN,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: 100 * time.Millisecond,
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		h.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}

	assert.False(t, h.IsConnected())
	h.Close()
}
