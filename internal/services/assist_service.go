package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/justsurfingit/internhunt/internal/apperr"
	"golang.org/x/sync/singleflight"
)

type AssistAction string

const (
	ActionInterviewPrep AssistAction = "interview_prep"
	ActionColdDM        AssistAction = "cold_dm"
	ActionSTAR          AssistAction = "star"
	ActionCoverLetter   AssistAction = "cover_letter"
	ActionResumeSummary AssistAction = "resume_summary"
	ActionWhyFit        AssistAction = "why_fit"
)

// AssistRequest asks for one helper text for one job card.
type AssistRequest struct {
	JobID       string
	Title       string
	CompanyName string
	Action      AssistAction
	Input       string
}

const defaultAssistTimeout = time.Minute

type promptData struct {
	AssistRequest
	Name   string
	Skills string
	Year   string
}

var assistPrompts = map[AssistAction]func(d promptData) string{
	ActionInterviewPrep: func(d promptData) string {
		return fmt.Sprintf("You are an expert technical recruiter. Generate 3 technical and 2 behavioral interview questions for this role: %s at %s. Format: Clean list.",
			d.Title, d.CompanyName)
	},
	ActionColdDM: func(d promptData) string {
		return fmt.Sprintf("Generate a short, high-impact 3-sentence LinkedIn message for a student reaching out to a recruiter at %s for the %s role.",
			d.CompanyName, d.Title)
	},
	ActionSTAR: func(d promptData) string {
		return fmt.Sprintf("Rewrite this project experience into STAR format optimized for %s at %s. User input: %s",
			d.Title, d.CompanyName, d.Input)
	},
	ActionCoverLetter: func(d promptData) string {
		return fmt.Sprintf("Write a concise, professional 1-paragraph cover letter for a candidate named %s applying for the role of %s at %s. Skills: %s. Year: %s.",
			d.Name, d.Title, d.CompanyName, d.Skills, d.Year)
	},
	ActionResumeSummary: func(d promptData) string {
		return fmt.Sprintf("Write a concise, professional 1-paragraph resume summary for a candidate named %s applying for the role of %s at %s. Skills: %s. Year: %s.",
			d.Name, d.Title, d.CompanyName, d.Skills, d.Year)
	},
	ActionWhyFit: func(d promptData) string {
		return fmt.Sprintf("In 1-2 lines, explain why a candidate with skills: %s and year: %s is a great fit for the role of %s at %s.",
			d.Skills, d.Year, d.Title, d.CompanyName)
	},
}

// AssistService generates per-card helper texts. Requests in flight for the
// same owner and prompt share one upstream call, which is not tied to any
// single caller's context.
type AssistService struct {
	generator TextGenerator
	profiles  Profiles
	timeout   time.Duration

	group   singleflight.Group
	mu      sync.Mutex
	waiters map[string]int
}

// NewAssistService bounds each shared upstream call by timeout; zero or less
// uses a minute.
func NewAssistService(generator TextGenerator, profiles Profiles, timeout time.Duration) *AssistService {
	if timeout <= 0 {
		timeout = defaultAssistTimeout
	}
	return &AssistService{
		generator: generator,
		profiles:  profiles,
		timeout:   timeout,
		waiters:   make(map[string]int),
	}
}

func (s *AssistService) Assist(ctx context.Context, owner string, req AssistRequest) (string, error) {
	build, ok := assistPrompts[req.Action]
	if !ok {
		return "", apperr.InvalidInput("Unknown action", nil).WithDetails(string(req.Action))
	}
	if req.Title == "" || req.CompanyName == "" {
		return "", apperr.InvalidInput("Missing title or company_name", nil)
	}
	if req.Action == ActionSTAR && strings.TrimSpace(req.Input) == "" {
		return "", apperr.InvalidInput("Missing input for star rewrite", nil)
	}

	data := promptData{AssistRequest: req, Name: "the user"}
	profile, found, err := s.profiles.Get(ctx, owner)
	if err != nil {
		return "", err
	}
	if found {
		if profile.Name != "" {
			data.Name = profile.Name
		}
		data.Skills = strings.Join(SplitSkills(profile.Skills), ", ")
		data.Year = profile.Year
	}
	prompt := build(data)

	key := owner + "\x00" + prompt
	s.join(key)
	defer s.leave(key)

	ch := s.group.DoChan(key, func() (any, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()
		return s.generator.Generate(callCtx, prompt)
	})
	select {
	case <-ctx.Done():
		return "", apperr.Upstream("generation cancelled", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return StripMarkdown(res.Val.(string)), nil
	}
}

func (s *AssistService) join(key string) {
	s.mu.Lock()
	s.waiters[key]++
	s.mu.Unlock()
}

// leave drops the shared call once nobody waits on it, so a later request
// starts afresh instead of joining an abandoned call.
func (s *AssistService) leave(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waiters[key]--
	if s.waiters[key] <= 0 {
		delete(s.waiters, key)
		s.group.Forget(key)
	}
}

var markdownRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile("(?s)```.*?```"), ""},
	{regexp.MustCompile(`(?m)^#+\s`), ""},
	{regexp.MustCompile(`(?m)^>\s`), ""},
	{regexp.MustCompile(`(?m)^[-*+]\s`), ""},
	{regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`), ""},
	{regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`), "$1"},
	{regexp.MustCompile("`([^`]+)`"), "$1"},
	{regexp.MustCompile(`\*\*([^*\n]+)\*\*`), "$1"},
	{regexp.MustCompile(`\*([^*\n]+)\*`), "$1"},
	{regexp.MustCompile(`\n{2,}`), "\n"},
}

// StripMarkdown flattens model output to plain text for display on a card.
func StripMarkdown(s string) string {
	for _, r := range markdownRules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return strings.TrimSpace(s)
}
