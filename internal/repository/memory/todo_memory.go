// Package memory is an in-process TodoRepository for local runs and tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"todoapi/internal/apperror"
	"todoapi/internal/model"
	"todoapi/internal/repository"
)

// TodoMemory keeps todos in insertion order. Safe for concurrent use.
type TodoMemory struct {
	mu    sync.RWMutex
	items []model.Todo
}

// NewTodoMemory returns an empty store.
func NewTodoMemory() *TodoMemory {
	return &TodoMemory{items: make([]model.Todo, 0)}
}

var _ repository.TodoRepository = (*TodoMemory)(nil)

// ListAll returns a copy of the stored todos.
func (r *TodoMemory) ListAll(ctx context.Context) ([]model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperror.Storage(repository.OpListAll, err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Todo, len(r.items))
	copy(out, r.items)
	return out, nil
}

// InsertOne appends a todo with a fresh UUID.
func (r *TodoMemory) InsertOne(ctx context.Context, title string, completed bool) (*model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperror.Storage(repository.OpInsertOne, err)
	}
	t := model.Todo{ID: uuid.NewString(), Title: title, Completed: completed}

	r.mu.Lock()
	r.items = append(r.items, t)
	r.mu.Unlock()

	return &t, nil
}

// PingContext always succeeds.
func (r *TodoMemory) PingContext(context.Context) error { return nil }
