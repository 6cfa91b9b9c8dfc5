package apperror

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorage(t *testing.T) {
	assert.NoError(t, Storage("todos.list_all", nil))

	err := Storage("todos.list_all", sql.ErrConnDone)
	wrapped := fmt.Errorf("find todos: %w", err)

	var se *StorageError
	assert.True(t, errors.As(wrapped, &se))
	assert.Equal(t, "todos.list_all", se.Op)
	assert.ErrorIs(t, wrapped, sql.ErrConnDone)
	assert.Contains(t, err.Error(), "storage todos.list_all")
}

func TestParseError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &ParseError{Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "malformed request body: unexpected EOF", err.Error())
	assert.Equal(t, "malformed request body", (&ParseError{}).Error())
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "title", Message: "Title is required"}
	assert.Equal(t, "validation failed on title: Title is required", err.Error())
}
