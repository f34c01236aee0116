package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"roommate-service/internal/service"
)

type MatchHandler struct {
	Service *service.MatchService
}

func NewMatchHandler(s *service.MatchService) *MatchHandler {
	return &MatchHandler{Service: s}
}

// ListMatches ranks every other profile against the caller, best
// match first.
func (h *MatchHandler) ListMatches(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	entries, err := h.Service.RankCandidates(context.Background(), c.GetHeader("X-User-ID"), c.Query("looking_for"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetMatch scores the caller against a single candidate profile.
func (h *MatchHandler) GetMatch(c *gin.Context) {
	result, err := h.Service.ScorePair(context.Background(), c.GetHeader("X-User-ID"), c.Param("candidateId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not score candidate"})
		return
	}
	c.JSON(http.StatusOK, result)
}
