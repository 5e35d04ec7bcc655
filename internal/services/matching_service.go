package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/justsurfingit/internhunt/internal/apperr"
	"github.com/justsurfingit/internhunt/internal/models"
)

type Variant string

const (
	// VariantExtended also rewards a preferred role match.
	VariantExtended Variant = "extended"
	VariantBasic    Variant = "basic"

	maxMatchScore = 99
)

type scoreWeights struct {
	base, perSkill, role int
}

var weights = map[Variant]scoreWeights{
	VariantExtended: {base: 40, perSkill: 15, role: 20},
	VariantBasic:    {base: 50, perSkill: 20},
}

// ParseVariant defaults to the extended scorer for anything it does not know.
func ParseVariant(s string) Variant {
	if Variant(strings.ToLower(s)) == VariantBasic {
		return VariantBasic
	}
	return VariantExtended
}

type CandidateProfile struct {
	Skills        []string
	Experience    string
	Year          string
	PreferredRole string
}

// CandidateFromProfile splits the free-text skills field on commas.
func CandidateFromProfile(p *models.UserProfile) CandidateProfile {
	if p == nil {
		return CandidateProfile{}
	}
	return CandidateProfile{
		Skills:        SplitSkills(p.Skills),
		Experience:    p.Experience,
		Year:          p.Year,
		PreferredRole: p.PreferredRole,
	}
}

func SplitSkills(raw string) []string {
	var skills []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

type MatchResult struct {
	JobID         string   `json:"job_id"`
	Score         int      `json:"score"`
	Reason        string   `json:"reason"`
	MatchedSkills []string `json:"matched_skills"`
}

// ScoreMatch computes an additive compatibility score in [base, 99]. All
// checks are case-insensitive substring containment.
func ScoreMatch(job models.JobPosting, c CandidateProfile, variant Variant) MatchResult {
	w, ok := weights[variant]
	if !ok {
		w = weights[VariantExtended]
	}

	description := strings.ToLower(job.Description)
	score := w.base
	matched := []string{}

	for _, skill := range c.Skills {
		if contains(description, skill) {
			score += w.perSkill
			matched = append(matched, skill)
		}
	}

	if w.role > 0 && (contains(strings.ToLower(job.Title), c.PreferredRole) || contains(description, c.PreferredRole)) {
		score += w.role
	}

	if contains(strings.ToLower(strings.Join(job.Extensions, " ")), c.Experience) {
		score += 10
	}

	if contains(description, c.Year) {
		score += 5
	}

	reason := "Your profile matches this role."
	if len(matched) > 0 {
		reason = fmt.Sprintf("You know %s, perfect for their tech stack.", strings.Join(matched, ", "))
	}

	return MatchResult{
		JobID:         job.JobID,
		Score:         min(score, maxMatchScore),
		Reason:        reason,
		MatchedSkills: matched,
	}
}

// contains treats an empty needle as no match.
func contains(haystack, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" || haystack == "" {
		return false
	}
	return strings.Contains(haystack, strings.ToLower(needle))
}

type MatcherService struct {
	Profiles Profiles
}

func NewMatcherService(profiles Profiles) *MatcherService {
	return &MatcherService{Profiles: profiles}
}

// MatchJobs scores jobs against the stored profile of owner.
func (s *MatcherService) MatchJobs(ctx context.Context, owner string, jobs []models.JobPosting, variant Variant) ([]MatchResult, error) {
	profile, found, err := s.Profiles.Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.NotFound("Profile not found, complete onboarding first", nil)
	}

	candidate := CandidateFromProfile(profile)
	results := make([]MatchResult, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, ScoreMatch(job, candidate, variant))
	}
	return results, nil
}
