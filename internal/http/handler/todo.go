package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"todoapi/internal/apperror"
	"todoapi/internal/http/middleware"
	"todoapi/internal/service"
)

const titleRequired = "Title is required"

// createTodoRequest documents the POST /todos body.
type createTodoRequest struct {
	Title string `json:"title" example:"Buy milk"`
}

// GetTodos lists every todo.
//
// @Summary List todos
// @Tags todos
// @Produce json
// @Success 200 {array} model.Todo
// @Failure 500 {object} errorPayload
// @Router /todos [get]
func GetTodos(svc service.TodoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		todos, err := svc.FindAllTodos(c.UserContext())
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusOK).JSON(todos)
	}
}

// CreateTodo stores a new todo from the title in the request body.
// A missing, non-string or blank title is rejected before the service is called.
//
// @Summary Create a todo
// @Tags todos
// @Accept json
// @Produce json
// @Param body body createTodoRequest true "New todo"
// @Success 201 {object} model.Todo
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /todos [post]
func CreateTodo(svc service.TodoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		title, ok := middleware.Body(c)["title"].(string)
		if !ok || strings.TrimSpace(title) == "" {
			return writeValidationError(c, &apperror.ValidationError{Field: "title", Message: titleRequired})
		}

		todo, err := svc.AddTodo(c.UserContext(), title)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(todo)
	}
}
