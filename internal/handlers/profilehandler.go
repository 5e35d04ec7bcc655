package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/internhunt/internal/auth"
	"github.com/justsurfingit/internhunt/internal/dtos"
	"github.com/justsurfingit/internhunt/internal/services"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	Profiles services.Profiles
	Matcher  services.Matcher
	logger   *zap.Logger
}

func NewProfileHandler(profiles services.Profiles, matcher services.Matcher, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles, Matcher: matcher, logger: logger}
}

// GetProfile returns the stored profile, or {} before onboarding.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, found, err := h.Profiles.Get(c.Request.Context(), auth.OwnerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req dtos.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, "Invalid JSON format", err)
		return
	}

	profile, err := h.Profiles.Upsert(c.Request.Context(), auth.OwnerID(c), req.ToModel())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// Match scores the posted jobs against the caller's profile.
func (h *ProfileHandler) Match(c *gin.Context) {
	var req dtos.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, "Invalid JSON format", err)
		return
	}

	results, err := h.Matcher.MatchJobs(c.Request.Context(), auth.OwnerID(c), req.Jobs, services.ParseVariant(c.Query("variant")))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
