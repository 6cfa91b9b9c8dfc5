// Package objectstore keeps each todo as a JSON document in an S3-compatible bucket.
package objectstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"todoapi/internal/apperror"
	"todoapi/internal/model"
	"todoapi/internal/repository"
	"todoapi/internal/storage"
)

// KeyPrefix is the object key prefix shared by all todo documents.
const KeyPrefix = "todos/"

const documentContentType = "application/json"

// TodoObjectStore implements repository.TodoRepository on top of storage.Storage.
// Documents are keyed todos/<id>.json, so listing order is key order.
type TodoObjectStore struct {
	store storage.Storage
	newID func() string
}

// NewTodoObjectStore creates a gateway writing documents through store.
func NewTodoObjectStore(store storage.Storage) *TodoObjectStore {
	return &TodoObjectStore{store: store, newID: uuid.NewString}
}

var _ repository.TodoRepository = (*TodoObjectStore)(nil)

func documentKey(id string) string {
	return KeyPrefix + id + ".json"
}

// ListAll reads every todo document under KeyPrefix.
func (r *TodoObjectStore) ListAll(ctx context.Context) ([]model.Todo, error) {
	infos, err := r.store.List(ctx, KeyPrefix)
	if err != nil {
		return nil, apperror.Storage(repository.OpListAll, err)
	}

	items := make([]model.Todo, 0, len(infos))
	for _, info := range infos {
		if !strings.HasSuffix(info.Key, ".json") {
			continue
		}
		t, err := r.read(ctx, info.Key)
		if err != nil {
			return nil, apperror.Storage(repository.OpListAll, err)
		}
		items = append(items, t)
	}
	return items, nil
}

func (r *TodoObjectStore) read(ctx context.Context, key string) (model.Todo, error) {
	rc, _, err := r.store.Get(ctx, key)
	if err != nil {
		return model.Todo{}, fmt.Errorf("get %s: %w", key, err)
	}
	defer rc.Close()

	var t model.Todo
	if err := json.NewDecoder(rc).Decode(&t); err != nil {
		return model.Todo{}, fmt.Errorf("decode %s: %w", key, err)
	}
	return t, nil
}

// InsertOne assigns a UUID and writes the todo as a new document.
func (r *TodoObjectStore) InsertOne(ctx context.Context, title string, completed bool) (*model.Todo, error) {
	t := model.Todo{
		ID:        r.newID(),
		Title:     title,
		Completed: completed,
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, apperror.Storage(repository.OpInsertOne, err)
	}

	if _, err := r.store.Put(ctx, documentKey(t.ID), bytes.NewReader(b), storage.PutObjectOptions{
		Size:        int64(len(b)),
		ContentType: documentContentType,
	}); err != nil {
		return nil, apperror.Storage(repository.OpInsertOne, err)
	}
	return &t, nil
}

// PingContext checks the bucket is reachable.
func (r *TodoObjectStore) PingContext(ctx context.Context) error {
	return apperror.Storage(repository.OpPing, r.store.Ping(ctx))
}
