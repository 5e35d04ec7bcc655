package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/internhunt/internal/apperr"
	"github.com/justsurfingit/internhunt/internal/auth"
	"github.com/justsurfingit/internhunt/internal/dtos"
	"github.com/justsurfingit/internhunt/internal/services"
	"go.uber.org/zap"
)

// multipart overhead allowed on top of the resume itself
const formSlack = 1 << 20

// JobHandler serves job search and the AI helpers built on it.
type JobHandler struct {
	Search    services.JobSearcher
	Generator services.TextGenerator
	Resumes   services.ResumeScorer
	Assistant services.Assistant
	logger    *zap.Logger
}

func NewJobHandler(search services.JobSearcher, generator services.TextGenerator, resumes services.ResumeScorer,
	assistant services.Assistant, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		Search:    search,
		Generator: generator,
		Resumes:   resumes,
		Assistant: assistant,
		logger:    logger,
	}
}

// Internships is GET /api/internships
func (h *JobHandler) Internships(c *gin.Context) {
	jobs, err := h.Search.Search(c.Request.Context(), services.SearchQuery{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		Company:  c.Query("company"),
		Tag:      c.Query("tag"),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs_results": jobs})
}

// Generate is POST /api/gemini
func (h *JobHandler) Generate(c *gin.Context) {
	var req dtos.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, "Invalid JSON body.", err)
		return
	}

	text, err := h.Generator.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dtos.GenerateResponse{Text: text})
}

// ScoreResume is POST /api/ai/score-resume (multipart)
func (h *JobHandler) ScoreResume(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.MaxResumeBytes+formSlack)

	fh, err := c.FormFile("resume")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, h.logger, apperr.InvalidInput("Resume exceeds 5 MiB", err))
			return
		}
		respondError(c, h.logger, apperr.InvalidInput("No file uploaded", err))
		return
	}
	if fh.Size > services.MaxResumeBytes {
		respondError(c, h.logger, apperr.InvalidInput("Resume exceeds 5 MiB", nil))
		return
	}

	f, err := fh.Open()
	if err != nil {
		respondError(c, h.logger, apperr.InvalidInput("Could not read resume", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		respondError(c, h.logger, apperr.InvalidInput("Could not read resume", err))
		return
	}

	score, err := h.Resumes.Score(c.Request.Context(), data, c.PostForm("jobTitle"), c.PostForm("jobDescription"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, score)
}

// Assist is POST /api/ai/assist
func (h *JobHandler) Assist(c *gin.Context) {
	var req dtos.AssistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, "Invalid JSON format", err)
		return
	}

	text, err := h.Assistant.Assist(c.Request.Context(), auth.OwnerID(c), services.AssistRequest{
		JobID:       req.JobID,
		Title:       req.Title,
		CompanyName: req.CompanyName,
		Action:      services.AssistAction(req.Action),
		Input:       req.Input,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dtos.GenerateResponse{Text: text})
}
