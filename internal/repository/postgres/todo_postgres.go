package postgres

import (
	"context"
	"database/sql"

	"todoapi/internal/apperror"
	"todoapi/internal/model"
	"todoapi/internal/repository"
)

// TodoPostgres is a PostgreSQL implementation of repository.TodoRepository.
// It uses database/sql with parameterized queries and contains no business logic.
// IDs are generated by the column default.
type TodoPostgres struct {
	db *sql.DB
}

// NewTodoPostgres creates a new TodoPostgres repository.
func NewTodoPostgres(db *sql.DB) *TodoPostgres {
	return &TodoPostgres{db: db}
}

var _ repository.TodoRepository = (*TodoPostgres)(nil)

// ListAll returns all todos ordered by creation time.
func (r *TodoPostgres) ListAll(ctx context.Context) ([]model.Todo, error) {
	const q = `
		SELECT id, title, completed
		FROM todos
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, apperror.Storage(repository.OpListAll, err)
	}
	defer rows.Close()

	items := make([]model.Todo, 0)
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed); err != nil {
			return nil, apperror.Storage(repository.OpListAll, err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage(repository.OpListAll, err)
	}
	return items, nil
}

// InsertOne inserts a new todo row and returns the stored record.
func (r *TodoPostgres) InsertOne(ctx context.Context, title string, completed bool) (*model.Todo, error) {
	const q = `
		INSERT INTO todos (title, completed)
		VALUES ($1, $2)
		RETURNING id, title, completed
	`
	var out model.Todo
	if err := r.db.QueryRowContext(ctx, q, title, completed).Scan(
		&out.ID,
		&out.Title,
		&out.Completed,
	); err != nil {
		return nil, apperror.Storage(repository.OpInsertOne, err)
	}
	return &out, nil
}

// PingContext verifies the database connection is alive.
func (r *TodoPostgres) PingContext(ctx context.Context) error {
	return apperror.Storage(repository.OpPing, r.db.PingContext(ctx))
}
