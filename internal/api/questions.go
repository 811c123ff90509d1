package api

import (
	"net/http"
	"strconv"

	"github.com/example/citizenprep/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listQuestions(c *gin.Context) {
	query := service.QuestionQuery{
		Category: c.Query("category"),
		Province: c.Query("province"),
		Limit:    service.DefaultQuestionLimit,
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			fail(c, http.StatusBadRequest, "Limit must be between 1 and 50")
			return
		}
		query.Limit = limit
	}

	questions, err := h.questions.Questions(c.Request.Context(), query)
	if err != nil {
		h.failWith(c, err, "Failed to fetch questions")
		return
	}
	ok(c, questions)
}

func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.questions.Categories(c.Request.Context())
	if err != nil {
		h.failWith(c, err, "Failed to fetch categories")
		return
	}
	ok(c, categories)
}
