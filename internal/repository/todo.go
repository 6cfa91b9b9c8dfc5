package repository

import (
	"context"

	"todoapi/internal/model"
)

// TodoRepository is the persistence gateway for todos.
// Implementations live in subpackages (postgres, objectstore, memory) and
// report every failure as *apperror.StorageError.
type TodoRepository interface {
	// ListAll returns every stored todo in storage-defined order.
	// An empty store yields an empty, non-nil slice.
	ListAll(ctx context.Context) ([]model.Todo, error)

	// InsertOne persists a new todo and returns it with its assigned ID.
	InsertOne(ctx context.Context, title string, completed bool) (*model.Todo, error)

	// PingContext reports whether the backing store is reachable.
	PingContext(ctx context.Context) error
}

// Operation names used in StorageError.Op.
const (
	OpListAll   = "todos.list_all"
	OpInsertOne = "todos.insert_one"
	OpPing      = "todos.ping"
)
