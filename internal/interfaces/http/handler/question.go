package handler

import (
	"github.com/gin-gonic/gin"

	questionsapp "github.com/talenttrek/backend/internal/application/questions"
	"github.com/talenttrek/backend/internal/interfaces/http/middleware"
)

// GenerateQuestionsRequest represents an interview question request
type GenerateQuestionsRequest struct {
	JobTitle string `json:"job_title" binding:"required,min=1,max=200"`
}

// QuestionsResponse wraps a generated question set
type QuestionsResponse struct {
	JobTitle  string                  `json:"job_title"`
	Questions []questionsapp.Question `json:"questions"`
}

// QuestionHandler handles interview question generation endpoints
type QuestionHandler struct {
	BaseHandler
	questionService *questionsapp.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService *questionsapp.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// Generate handles POST /questions
func (h *QuestionHandler) Generate(c *gin.Context) {
	var req GenerateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	questions, err := h.questionService.Generate(c.Request.Context(), req.JobTitle)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, QuestionsResponse{
		JobTitle:  req.JobTitle,
		Questions: questions,
	})
}
