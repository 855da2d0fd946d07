package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the transaction routes
func (h *TransactionHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1")

	g.POST("/transactions", h.ProcessTransaction)
	g.GET("/accounts/:number", h.GetAccount)
}
