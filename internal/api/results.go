package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/example/citizenprep/internal/service"
	"github.com/gin-gonic/gin"
)

type submitRequest struct {
	Category       string   `json:"category"`
	Score          *float64 `json:"score"`
	TotalQuestions *int     `json:"totalQuestions"`
	CorrectAnswers *int     `json:"correctAnswers"`
	TimeTaken      *int     `json:"timeTaken"`
}

func (r submitRequest) complete() bool {
	return r.Category != "" && r.Score != nil && r.TotalQuestions != nil && *r.TotalQuestions != 0 && r.CorrectAnswers != nil
}

func (h *Handler) submitResult(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.complete() {
		fail(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	id, err := h.results.Submit(c.Request.Context(), userID(c), service.SubmitResult{
		Category:       req.Category,
		Score:          int(math.Round(*req.Score)),
		TotalQuestions: *req.TotalQuestions,
		CorrectAnswers: *req.CorrectAnswers,
		TimeTaken:      req.TimeTaken,
	})
	if err != nil {
		h.failWith(c, err, "Failed to save test result")
		return
	}
	ok(c, gin.H{"id": id})
}

func (h *Handler) listResults(c *gin.Context) {
	limit := service.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fail(c, http.StatusBadRequest, "Limit must be between 1 and 100")
			return
		}
		limit = n
	}

	results, err := h.results.History(c.Request.Context(), userID(c), c.Query("category"), limit)
	if err != nil {
		h.failWith(c, err, "Failed to fetch test results")
		return
	}
	ok(c, results)
}

func (h *Handler) progress(c *gin.Context) {
	dashboard, err := h.results.Dashboard(c.Request.Context(), userID(c))
	if err != nil {
		h.failWith(c, err, "Failed to fetch progress")
		return
	}
	ok(c, dashboard)
}
