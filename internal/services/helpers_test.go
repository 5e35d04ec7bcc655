package services

import (
	"context"
	"sync"
	"testing"

	"github.com/justsurfingit/internhunt/internal/database"
	"github.com/justsurfingit/internhunt/internal/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect("sqlite://:memory:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

type published struct {
	subject string
	event   any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []published
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, subject string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{subject: subject, event: event})
	return p.err
}

func (p *fakePublisher) Close() error { return nil }

type fakeGenerator struct {
	mu      sync.Mutex
	prompts []string
	text    string
	err     error
	block   chan struct{}
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()
	if g.block != nil {
		select {
		case <-g.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return g.text, g.err
}

func (g *fakeGenerator) calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.prompts...)
}

type stubProfiles struct {
	profile *models.UserProfile
	err     error
	granted []string
}

func (p *stubProfiles) Get(_ context.Context, _ string) (*models.UserProfile, bool, error) {
	return p.profile, p.profile != nil, p.err
}

func (p *stubProfiles) Upsert(_ context.Context, owner string, profile models.UserProfile) (*models.UserProfile, error) {
	profile.UserID = owner
	return &profile, p.err
}

func (p *stubProfiles) GrantPro(_ context.Context, owner string) error {
	if p.err != nil {
		return p.err
	}
	p.granted = append(p.granted, owner)
	return nil
}
