package http

import (
	"github.com/labstack/echo/v4"

	middleware "task-board.com/task-board/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler) {
	e.Use(middleware.RequestLogger())

	e.POST("/api/tasks", h.CreateTask)
	e.GET("/api/tasks", h.ListTasks)
	e.DELETE("/api/tasks", h.DeleteTask)
}
