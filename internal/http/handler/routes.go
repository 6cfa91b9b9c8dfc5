package handler

import (
	"github.com/gofiber/fiber/v2"

	"todoapi/internal/service"
)

// RegisterRoutes binds the todo endpoints on r. The caller picks the prefix
// by passing the app itself or a group.
func RegisterRoutes(r fiber.Router, svc service.TodoService) {
	r.Get("/todos", GetTodos(svc))
	r.Post("/todos", CreateTodo(svc))
}

// RegisterProbes binds /health and /healthz.
func RegisterProbes(r fiber.Router, p Pinger) {
	r.Get("/health", HealthCheck(p))
	r.Get("/healthz", LivenessProbe())
}
