package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/zpeteman/content-repurposer/internal/api/errors"
	"github.com/zpeteman/content-repurposer/internal/api/middleware"
	"github.com/zpeteman/content-repurposer/internal/api/v1/dto"
	"github.com/zpeteman/content-repurposer/internal/app/repository"
)

// RunsHandler serves run history.
type RunsHandler struct {
	runs repository.RunDAO
}

func NewRunsHandler(runs repository.RunDAO) *RunsHandler {
	return &RunsHandler{runs: runs}
}

// Recent returns the most recent runs, newest first.
func (h *RunsHandler) Recent(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 200 {
			middleware.HandleError(c, apierrors.NewBadRequestError("limit must be an integer between 1 and 200"))
			return
		}
		limit = parsed
	}

	records, err := h.runs.RecentRuns(c.Request.Context(), limit)
	if err != nil {
		middleware.HandleError(c, apierrors.NewInternalError("failed to load run history"))
		return
	}

	out := make([]dto.RunResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.FromRunRecord(r))
	}

	c.JSON(http.StatusOK, gin.H{"runs": out})
}
