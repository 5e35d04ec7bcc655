package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/justsurfingit/internhunt/internal/apperr"
	"github.com/ledongthuc/pdf"
)

const (
	MaxResumeBytes = 5 << 20
	maxResumeChars = 4000
)

const resumeScorePrompt = `You are an expert technical recruiter. Score this resume against the job description.

Job Title: %s
Job Description: %s

Resume Content:
%s

Return ONLY a JSON object with:
{
  "score": (number 0-100),
  "feedback": "Exactly 2 concise sentences explaining the score and what's missing.",
  "skillGaps": ["skill1", "skill2"]
}`

type ResumeScore struct {
	Score     int      `json:"score"`
	Feedback  string   `json:"feedback"`
	SkillGaps []string `json:"skillGaps"`
}

// TextExtractor pulls plain text out of an uploaded document.
type TextExtractor func(data []byte) (string, error)

func ExtractPDFText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}

type ResumeService struct {
	generator TextGenerator
	extract   TextExtractor
}

func NewResumeService(generator TextGenerator, extract TextExtractor) *ResumeService {
	if extract == nil {
		extract = ExtractPDFText
	}
	return &ResumeService{generator: generator, extract: extract}
}

func (s *ResumeService) Score(ctx context.Context, resume []byte, jobTitle, jobDescription string) (*ResumeScore, error) {
	if len(resume) == 0 {
		return nil, apperr.InvalidInput("No file uploaded", nil)
	}
	if len(resume) > MaxResumeBytes {
		return nil, apperr.InvalidInput("Resume exceeds 5 MiB", nil)
	}

	text, err := s.extract(resume)
	if err != nil {
		return nil, apperr.InvalidInput("Could not read resume", err)
	}
	text = truncateRunes(strings.TrimSpace(text), maxResumeChars)

	out, err := s.generator.Generate(ctx, fmt.Sprintf(resumeScorePrompt, jobTitle, jobDescription, text))
	if err != nil {
		return nil, err
	}

	var raw struct {
		Score     float64  `json:"score"`
		Feedback  string   `json:"feedback"`
		SkillGaps []string `json:"skillGaps"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(out)), &raw); err != nil {
		return nil, apperr.Upstream("Failed to analyze resume", err).WithDetails(err.Error())
	}

	score := &ResumeScore{
		Score:     int(math.Round(math.Max(0, math.Min(100, raw.Score)))),
		Feedback:  raw.Feedback,
		SkillGaps: raw.SkillGaps,
	}
	if score.SkillGaps == nil {
		score.SkillGaps = []string{}
	}
	return score, nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// stripCodeFence removes a ```json ... ``` wrapper some models add.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
