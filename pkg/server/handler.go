package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIError is the structured error body sent to clients.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error"`
}

// AskResponse is the success envelope for /ask-jiji.
type AskResponse struct {
	Success bool       `json:"success"`
	Data    *AskResult `json:"data"`
}

// HealthResponse is the body of /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.health)
	r.POST("/ask-jiji", ValidateAskRequest, h.askJiji)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) askJiji(c *gin.Context) {
	query := c.GetString(ctxKeyQuery)
	userID := c.GetString(ctxKeyUserID)

	result, err := h.Service.Ask(c.Request.Context(), query, userID)
	if err != nil {
		slog.Error("Failed to process query", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Error: &APIError{
				Code:    "PROCESSING_ERROR",
				Message: "Failed to process your query",
			},
		})
		return
	}

	c.JSON(http.StatusOK, AskResponse{
		Success: true,
		Data:    result,
	})
}
