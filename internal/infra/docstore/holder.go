// Package docstore maintains connection to the PostgreSQL document store.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bool64/ctxd"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotConnected is returned when no connection to the store is established.
var ErrNotConnected = errors.New("document store is not connected")

// Default settings.
const (
	DefaultRetryInterval  = 5 * time.Second
	DefaultConnectTimeout = 10 * time.Second
	DefaultCollection     = "tasks"
)

// Config defines document store connection.
type Config struct {
	DSN            string
	Collection     string
	RetryInterval  time.Duration
	ConnectTimeout time.Duration
}

// Holder owns connection pool and reconnects it on failure.
type Holder struct {
	cfg    Config
	logger ctxd.Logger

	connectMu sync.Mutex
	pool      atomic.Pointer[pgxpool.Pool]
	reconnect chan struct{}
}

// NewHolder creates a disconnected holder, use Connect or Run to establish connection.
func NewHolder(cfg Config, logger ctxd.Logger) *Holder {
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}

	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = DefaultRetryInterval
	}

	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}

	if logger == nil {
		logger = ctxd.NoOpLogger{}
	}

	return &Holder{
		cfg:       cfg,
		logger:    logger,
		reconnect: make(chan struct{}, 1),
	}
}

// Collection returns sanitized name of the collection table.
func (h *Holder) Collection() string {
	return pgx.Identifier{h.cfg.Collection}.Sanitize()
}

// IsConnected tells if connection pool is available.
func (h *Holder) IsConnected() bool {
	return h.pool.Load() != nil
}

// Connect opens connection pool and ensures collection table exists.
func (h *Holder) Connect(ctx context.Context) error {
	h.connectMu.Lock()
	defer h.connectMu.Unlock()

	if h.IsConnected() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, h.cfg.ConnectTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, h.cfg.DSN)
	if err != nil {
		return fmt.Errorf("open pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return fmt.Errorf("ping: %w", err)
	}

	_, err = pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS `+h.Collection()+` (
		id  BIGSERIAL PRIMARY KEY,
		doc JSONB NOT NULL
	)`)
	if err != nil {
		pool.Close()

		return fmt.Errorf("ensure collection %s: %w", h.cfg.Collection, err)
	}

	h.pool.Store(pool)
	h.logger.Info(ctx, "document store connected", "collection", h.cfg.Collection)

	return nil
}

// WithConnection invokes fn with connection pool.
//
// It fails with ErrNotConnected when there is no connection. If fn fails and the store
// does not answer a ping, connection is dropped and Run is asked to reconnect.
func (h *Holder) WithConnection(ctx context.Context, fn func(pool *pgxpool.Pool) error) error {
	pool := h.pool.Load()
	if pool == nil {
		return ErrNotConnected
	}

	err := fn(pool)
	if err == nil || !h.lost(ctx, pool, err) {
		return err
	}

	h.drop(ctx, pool, err)

	return fmt.Errorf("%w: %w", ErrNotConnected, err)
}

func (h *Holder) lost(ctx context.Context, pool *pgxpool.Pool, err error) bool {
	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) || errors.Is(err, pgx.ErrNoRows) || ctx.Err() != nil {
		return false
	}

	pingCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.cfg.ConnectTimeout)
	defer cancel()

	return pool.Ping(pingCtx) != nil
}

func (h *Holder) drop(ctx context.Context, pool *pgxpool.Pool, cause error) {
	if !h.pool.CompareAndSwap(pool, nil) {
		return
	}

	h.logger.Error(ctx, "document store connection lost", "error", cause.Error())

	go pool.Close()

	select {
	case h.reconnect <- struct{}{}:
	default:
	}
}

// Run keeps connection established until ctx is done.
//
// Connection is attempted immediately and then again after RetryInterval following any
// failure, retries are not bounded.
func (h *Holder) Run(ctx context.Context) {
	for {
		var wait <-chan time.Time

		if !h.IsConnected() {
			if err := h.Connect(ctx); err != nil {
				h.logger.Error(ctx, "document store connection failed",
					"error", err.Error(), "retryIn", h.cfg.RetryInterval.String())

				wait = time.After(h.cfg.RetryInterval)
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-wait:
		case <-h.reconnect:
			select {
			case <-ctx.Done():
				return
			case <-time.After(h.cfg.RetryInterval):
			}
		}
	}
}

// Close closes connection pool.
func (h *Holder) Close() {
	if pool := h.pool.Swap(nil); pool != nil {
		pool.Close()
	}
}
