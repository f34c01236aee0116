package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"roommate-service/internal/models"
	"roommate-service/internal/service"
)

type ProfileHandler struct {
	Service *service.ProfileService
}

func NewProfileHandler(s *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: s}
}

// ListProfiles returns all profiles with private answers stripped.
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.Service.ListProfiles(context.Background(), c.Query("looking_for"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for i := range profiles {
		profiles[i].Answers = profiles[i].PublicAnswers()
	}
	c.JSON(http.StatusOK, profiles)
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.Service.GetProfile(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	profile.Answers = profile.PublicAnswers()
	c.JSON(http.StatusOK, profile)
}

// GetOwnProfile returns the caller's profile, private answers included.
func (h *ProfileHandler) GetOwnProfile(c *gin.Context) {
	profile, err := h.Service.GetProfileByUser(context.Background(), c.GetHeader("X-User-ID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var profile models.RoommateProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateProfile(context.Background(), c.GetHeader("X-User-ID"), &profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := h.Service.UpdateProfile(context.Background(), c.GetHeader("X-User-ID"), update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SubmitAnswer upserts one questionnaire answer on the caller's
// profile.
func (h *ProfileHandler) SubmitAnswer(c *gin.Context) {
	var answer models.Answer
	if err := c.ShouldBindJSON(&answer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if answer.QuestionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question_id is required"})
		return
	}
	profile, err := h.Service.SubmitAnswer(context.Background(), c.GetHeader("X-User-ID"), answer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) SetDealBreakers(c *gin.Context) {
	var body struct {
		DealBreakers []string `json:"deal_breakers"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := h.Service.SetDealBreakers(context.Background(), c.GetHeader("X-User-ID"), body.DealBreakers)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}
