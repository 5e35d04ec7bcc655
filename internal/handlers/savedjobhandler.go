package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/internhunt/internal/auth"
	"github.com/justsurfingit/internhunt/internal/dtos"
	"github.com/justsurfingit/internhunt/internal/models"
	"github.com/justsurfingit/internhunt/internal/services"
	"go.uber.org/zap"
)

const urgentHeader = "X-Urgent-Deadlines"

type SavedJobHandler struct {
	SavedJobs services.SavedJobs
	Notifier  services.Notifier
	logger    *zap.Logger
	now       func() time.Time
}

func NewSavedJobHandler(savedJobs services.SavedJobs, notifier services.Notifier, logger *zap.Logger) *SavedJobHandler {
	return &SavedJobHandler{SavedJobs: savedJobs, Notifier: notifier, logger: logger, now: time.Now}
}

// List returns the caller's saved jobs and runs the deadline check over them.
func (h *SavedJobHandler) List(c *gin.Context) {
	owner := auth.OwnerID(c)
	jobs, err := h.SavedJobs.List(c.Request.Context(), owner)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	note := h.Notifier.Check(c.Request.Context(), owner, jobs)
	c.Header(urgentHeader, strconv.Itoa(note.Count))
	c.JSON(http.StatusOK, jobs)
}

func (h *SavedJobHandler) Toggle(c *gin.Context) {
	var job models.JobPosting
	if err := c.ShouldBindJSON(&job); err != nil {
		badRequest(c, h.logger, "Invalid JSON format", err)
		return
	}

	saved, err := h.SavedJobs.Toggle(c.Request.Context(), auth.OwnerID(c), job)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	message := "Job removed"
	if saved {
		message = "Job saved"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "saved": saved})
}

func (h *SavedJobHandler) Delete(c *gin.Context) {
	if err := h.SavedJobs.Delete(c.Request.Context(), auth.OwnerID(c), c.Query("job_id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *SavedJobHandler) UpdateStatus(c *gin.Context) {
	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, "Invalid JSON format", err)
		return
	}

	upd := services.StatusUpdate{JobID: req.JobID, Deadline: req.Deadline}
	if req.Status != nil {
		status := models.JobStatus(*req.Status)
		upd.Status = &status
	}

	job, err := h.SavedJobs.Update(c.Request.Context(), auth.OwnerID(c), upd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": job.Status, "deadline": job.Deadline})
}

// Urgent returns the notification payload for clients that raise it
// themselves.
func (h *SavedJobHandler) Urgent(c *gin.Context) {
	owner := auth.OwnerID(c)
	jobs, err := h.SavedJobs.List(c.Request.Context(), owner)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	note := services.UrgentNotification(owner, jobs, h.now())
	note.UserID = ""
	c.JSON(http.StatusOK, note)
}
