package services

import (
	"context"

	"github.com/justsurfingit/internhunt/internal/models"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=svcmocks

type SavedJobs interface {
	List(ctx context.Context, owner string) ([]models.SavedJob, error)
	Toggle(ctx context.Context, owner string, job models.JobPosting) (bool, error)
	Update(ctx context.Context, owner string, upd StatusUpdate) (*models.SavedJob, error)
	Delete(ctx context.Context, owner, jobID string) error
}

type Profiles interface {
	Get(ctx context.Context, owner string) (*models.UserProfile, bool, error)
	Upsert(ctx context.Context, owner string, profile models.UserProfile) (*models.UserProfile, error)
	GrantPro(ctx context.Context, owner string) error
}

type Matcher interface {
	MatchJobs(ctx context.Context, owner string, jobs []models.JobPosting, variant Variant) ([]MatchResult, error)
}

type Notifier interface {
	Check(ctx context.Context, owner string, jobs []models.SavedJob) Notification
}

type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Assistant interface {
	Assist(ctx context.Context, owner string, req AssistRequest) (string, error)
}

type ResumeScorer interface {
	Score(ctx context.Context, resume []byte, jobTitle, jobDescription string) (*ResumeScore, error)
}

type JobSearcher interface {
	Search(ctx context.Context, query SearchQuery) ([]models.JobPosting, error)
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, owner string, amount float64, currency string) (*Order, error)
}

type WebhookProcessor interface {
	Process(ctx context.Context, body []byte, signature string) error
}
