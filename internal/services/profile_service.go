package services

import (
	"context"
	"errors"
	"time"

	"github.com/justsurfingit/internhunt/internal/apperr"
	"github.com/justsurfingit/internhunt/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileColumns are overwritten by a profile submission. is_pro is missing
// on purpose: only the payment webhook sets it.
var profileColumns = []string{
	"name", "college", "major", "skills", "experience", "year",
	"preferred_role", "preferred_location", "updated_at",
}

type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

func (s *ProfileService) Get(ctx context.Context, owner string) (*models.UserProfile, bool, error) {
	var profile models.UserProfile
	err := s.DB.WithContext(ctx).Where("user_id = ?", owner).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperr.Persistence("Failed to fetch profile", err)
	}
	return &profile, true, nil
}

func (s *ProfileService) Upsert(ctx context.Context, owner string, profile models.UserProfile) (*models.UserProfile, error) {
	profile.ID = 0
	profile.UserID = owner
	profile.IsPro = false
	profile.ProUpdatedAt = nil

	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(profileColumns),
	}).Create(&profile).Error
	if err != nil {
		return nil, apperr.Persistence("Failed to save profile", err)
	}

	saved, _, err := s.Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// GrantPro marks owner as Pro, creating a bare profile if none exists yet.
func (s *ProfileService) GrantPro(ctx context.Context, owner string) error {
	now := time.Now().UTC()
	profile := models.UserProfile{UserID: owner, IsPro: true, ProUpdatedAt: &now}

	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_pro", "pro_updated_at", "updated_at"}),
	}).Create(&profile).Error
	if err != nil {
		return apperr.Persistence("DB Update Failed", err)
	}
	return nil
}
