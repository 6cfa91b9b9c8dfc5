package service

import (
	"context"

	"todoapi/internal/model"
	"todoapi/internal/repository"
)

// TodoService defines the use cases for handling todos.
type TodoService interface {
	// FindAllTodos returns every stored todo. Gateway errors are returned unchanged.
	FindAllTodos(ctx context.Context) ([]model.Todo, error)

	// AddTodo stores a new, not yet completed todo.
	// Title validation is the caller's responsibility.
	AddTodo(ctx context.Context, title string) (*model.Todo, error)
}

// todoService is a concrete implementation of TodoService.
type todoService struct {
	repo repository.TodoRepository
}

// NewTodoService constructs a new TodoService.
func NewTodoService(repo repository.TodoRepository) TodoService {
	return &todoService{repo: repo}
}

func (s *todoService) FindAllTodos(ctx context.Context) ([]model.Todo, error) {
	return s.repo.ListAll(ctx)
}

func (s *todoService) AddTodo(ctx context.Context, title string) (*model.Todo, error) {
	return s.repo.InsertOne(ctx, title, false)
}
