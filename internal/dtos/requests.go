package dtos

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/justsurfingit/internhunt/internal/models"
)

type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

type GenerateResponse struct {
	Text string `json:"text"`
}

type AssistRequest struct {
	JobID       string `json:"job_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
	Action      string `json:"action" binding:"required"`
	Input       string `json:"input"`
}

// SkillList accepts skills either as a comma separated string or as an
// array, and stores them as the comma separated form.
type SkillList string

func (s *SkillList) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		trimmed := make([]string, 0, len(list))
		for _, item := range list {
			if item = strings.TrimSpace(item); item != "" {
				trimmed = append(trimmed, item)
			}
		}
		*s = SkillList(strings.Join(trimmed, ", "))
		return nil
	}

	var text string
	if err := json.Unmarshal(b, &text); err != nil {
		return errors.New("skills must be a string or a list of strings")
	}
	*s = SkillList(strings.TrimSpace(text))
	return nil
}

type ProfileRequest struct {
	Name              string    `json:"name"`
	College           string    `json:"college"`
	Major             string    `json:"major"`
	Skills            SkillList `json:"skills"`
	Experience        string    `json:"experience"`
	Year              string    `json:"year"`
	PreferredRole     string    `json:"preferredRole"`
	PreferredLocation string    `json:"preferredLocation"`
}

// ToModel ignores any entitlement the client may have sent.
func (r ProfileRequest) ToModel() models.UserProfile {
	return models.UserProfile{
		Name:              r.Name,
		College:           r.College,
		Major:             r.Major,
		Skills:            string(r.Skills),
		Experience:        r.Experience,
		Year:              r.Year,
		PreferredRole:     r.PreferredRole,
		PreferredLocation: r.PreferredLocation,
	}
}

type MatchRequest struct {
	Jobs []models.JobPosting `json:"jobs" binding:"required"`
}

type StatusUpdateRequest struct {
	JobID    string  `json:"job_id" binding:"required"`
	Status   *string `json:"status"`
	Deadline *string `json:"deadline"`
}

type CreateOrderRequest struct {
	Amount   float64 `json:"amount" binding:"required"`
	Currency string  `json:"currency"`
}
