package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bool64/ctxd"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/todo-task-journal/tasks-api/internal/domain/task"
	"github.com/todo-task-journal/tasks-api/internal/infra/docstore"
)

// Document is a task repository backed by JSONB documents in PostgreSQL.
//
// Ids are assigned by the store sequence.
type Document struct {
	holder *docstore.Holder
}

// NewDocument creates document repository.
func NewDocument(holder *docstore.Holder) *Document {
	return &Document{holder: holder}
}

// TaskLister is a service provider.
func (dr *Document) TaskLister() task.Lister {
	return dr
}

// TaskCreator is a service provider.
func (dr *Document) TaskCreator() task.Creator {
	return dr
}

// TaskUpdater is a service provider.
func (dr *Document) TaskUpdater() task.Updater {
	return dr
}

// TaskDeleter is a service provider.
func (dr *Document) TaskDeleter() task.Deleter {
	return dr
}

type document struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Date      string `json:"date"`
	UserID    string `json:"userId,omitempty"`
}

// List finds all tasks of owner ordered by id.
func (dr *Document) List(ctx context.Context, owner string) ([]task.Entity, error) {
	var tasks []task.Entity

	err := dr.holder.WithConnection(ctx, func(pool *pgxpool.Pool) error {
		rows, err := pool.Query(ctx, `
			SELECT id, doc FROM `+dr.holder.Collection()+`
			WHERE $1::text = '' OR doc->>'userId' = $1::text
			ORDER BY id`, owner)
		if err != nil {
			return err
		}

		tasks, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (task.Entity, error) {
			var (
				t   task.Entity
				doc []byte
				d   document
			)

			if err := row.Scan(&t.ID, &doc); err != nil {
				return t, err
			}

			if err := json.Unmarshal(doc, &d); err != nil {
				return t, fmt.Errorf("decode task %d: %w", t.ID, err)
			}

			t.Name, t.Completed, t.Date, t.UserID = d.Name, d.Completed, d.Date, d.UserID

			return t, nil
		})

		return err
	})
	if err != nil {
		return nil, dr.wrap(ctx, err, "failed to list tasks")
	}

	if tasks == nil {
		tasks = []task.Entity{}
	}

	return tasks, nil
}

// Create inserts a new task document.
func (dr *Document) Create(ctx context.Context, owner string, value task.Value) (task.Entity, error) {
	if err := value.Validate(); err != nil {
		return task.Entity{}, err
	}

	t := task.NewEntity(owner, value)

	doc, err := json.Marshal(document{Name: t.Name, Completed: t.Completed, Date: t.Date, UserID: t.UserID})
	if err != nil {
		return task.Entity{}, fmt.Errorf("encode task: %w", err)
	}

	err = dr.holder.WithConnection(ctx, func(pool *pgxpool.Pool) error {
		return pool.QueryRow(ctx, `INSERT INTO `+dr.holder.Collection()+` (doc) VALUES ($1::jsonb) RETURNING id`,
			string(doc)).Scan(&t.ID)
	})
	if err != nil {
		return task.Entity{}, dr.wrap(ctx, err, "failed to insert task")
	}

	return t, nil
}

// Update merges patch into task document of owner.
//
// Only id, completed and date are returned to avoid reading the whole document.
func (dr *Document) Update(ctx context.Context, identity task.Identity, owner string, patch task.Patch) (task.Entity, error) {
	doc, err := json.Marshal(patch)
	if err != nil {
		return task.Entity{}, fmt.Errorf("encode patch: %w", err)
	}

	var t task.Entity

	err = dr.holder.WithConnection(ctx, func(pool *pgxpool.Pool) error {
		return pool.QueryRow(ctx, `
			UPDATE `+dr.holder.Collection()+` SET doc = doc || $3::jsonb
			WHERE id = $1 AND ($2::text = '' OR doc->>'userId' = $2::text)
			RETURNING id, (doc->>'completed')::boolean, doc->>'date'`,
			identity.ID, owner, string(doc)).Scan(&t.ID, &t.Completed, &t.Date)
	})

	if errors.Is(err, pgx.ErrNoRows) {
		return task.Entity{}, task.ErrNotFound
	}

	if err != nil {
		return task.Entity{}, dr.wrap(ctx, err, "failed to update task", "id", identity.ID)
	}

	return t, nil
}

// Delete removes task document of owner.
func (dr *Document) Delete(ctx context.Context, identity task.Identity, owner string) error {
	var deleted int64

	err := dr.holder.WithConnection(ctx, func(pool *pgxpool.Pool) error {
		tag, err := pool.Exec(ctx, `
			DELETE FROM `+dr.holder.Collection()+`
			WHERE id = $1 AND ($2::text = '' OR doc->>'userId' = $2::text)`,
			identity.ID, owner)
		deleted = tag.RowsAffected()

		return err
	})
	if err != nil {
		return dr.wrap(ctx, err, "failed to delete task", "id", identity.ID)
	}

	if deleted == 0 {
		return task.ErrNotFound
	}

	return nil
}

func (dr *Document) wrap(ctx context.Context, err error, msg string, keysAndValues ...interface{}) error {
	if errors.Is(err, docstore.ErrNotConnected) {
		err = fmt.Errorf("%w: %w", task.ErrUnavailable, err)
	}

	return ctxd.WrapError(ctx, err, msg, keysAndValues...)
}
