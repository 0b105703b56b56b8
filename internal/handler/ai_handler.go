package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"carevo/internal/service"
)

// AIHandler handles the quiz-analysis and mental-health chat endpoints.
type AIHandler struct {
	ai service.AIService
}

// NewAIHandler creates a new AI handler.
func NewAIHandler(ai service.AIService) *AIHandler {
	return &AIHandler{ai: ai}
}

// QuizRequest carries free-text quiz answers for analysis.
type QuizRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// QuizResponse carries the provider's completion.
type QuizResponse struct {
	Completion string `json:"completion"`
}

// ChatRequest is one mental-health chat message from a student.
type ChatRequest struct {
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ChatResponse carries the assistant's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// AnalyzeQuiz godoc
// @Summary Analyze career quiz answers
// @Tags ai
// @Accept json
// @Produce json
// @Param request body QuizRequest true "Quiz answers"
// @Success 200 {object} QuizResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Failure 504 {object} errors.ErrorResponse
// @Router /ai [post]
func (h *AIHandler) AnalyzeQuiz(c echo.Context) error {
	var req QuizRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	completion, err := h.ai.AnalyzeQuiz(c.Request().Context(), req.Prompt)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, QuizResponse{Completion: completion})
}

// MentalHealthChat godoc
// @Summary Send a mental-health chat message
// @Tags ai
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Chat message"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Failure 504 {object} errors.ErrorResponse
// @Router /mental_health_chat [post]
func (h *AIHandler) MentalHealthChat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reply, err := h.ai.MentalHealthChat(c.Request().Context(), req.Email, req.Message)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}
