package services

import (
	"context"
	"errors"

	"github.com/justsurfingit/internhunt/internal/apperr"
	"github.com/justsurfingit/internhunt/internal/models"
	"gorm.io/gorm"
)

// StatusUpdate is a partial update of a saved job. Nil fields are left alone;
// a Deadline pointing at "" clears the deadline.
type StatusUpdate struct {
	JobID    string
	Status   *models.JobStatus
	Deadline *string
}

type SavedJobService struct {
	DB *gorm.DB
}

func NewSavedJobService(db *gorm.DB) *SavedJobService {
	return &SavedJobService{DB: db}
}

func (s *SavedJobService) List(ctx context.Context, owner string) ([]models.SavedJob, error) {
	jobs := []models.SavedJob{}
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("saved_at desc, id desc").
		Find(&jobs).Error
	if err != nil {
		return nil, apperr.Persistence("Failed to fetch saved jobs", err)
	}
	return jobs, nil
}

// Toggle saves job for owner when absent and removes it when present. It
// reports whether the job is saved afterwards.
func (s *SavedJobService) Toggle(ctx context.Context, owner string, job models.JobPosting) (bool, error) {
	if job.JobID == "" {
		return false, apperr.InvalidInput("Missing job_id", nil)
	}

	db := s.DB.WithContext(ctx)
	res := db.Where("user_id = ? AND job_id = ?", owner, job.JobID).Delete(&models.SavedJob{})
	if res.Error != nil {
		return false, apperr.Persistence("Database error", res.Error)
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	saved := models.NewSavedJob(owner, job)
	if err := db.Create(&saved).Error; err != nil {
		// a concurrent toggle got there first
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, apperr.Persistence("Database error", err)
	}
	return true, nil
}

func (s *SavedJobService) Update(ctx context.Context, owner string, upd StatusUpdate) (*models.SavedJob, error) {
	if upd.JobID == "" {
		return nil, apperr.InvalidInput("Missing job_id", nil)
	}
	if upd.Status == nil && upd.Deadline == nil {
		return nil, apperr.InvalidInput("Nothing to update: provide status or deadline", nil)
	}

	changes := map[string]any{}
	if upd.Status != nil {
		if !upd.Status.Valid() {
			return nil, apperr.InvalidInput("Invalid status", nil).WithDetails(string(*upd.Status))
		}
		changes["status"] = string(*upd.Status)
	}
	if upd.Deadline != nil {
		if *upd.Deadline == "" {
			changes["deadline"] = nil
		} else {
			d, err := models.ParseDate(*upd.Deadline)
			if err != nil {
				return nil, apperr.InvalidInput("Invalid deadline", err)
			}
			changes["deadline"] = d
		}
	}

	db := s.DB.WithContext(ctx)
	res := db.Model(&models.SavedJob{}).
		Where("user_id = ? AND job_id = ?", owner, upd.JobID).
		Updates(changes)
	if res.Error != nil {
		return nil, apperr.Persistence("Database error", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Saved job not found", nil)
	}

	var job models.SavedJob
	if err := db.Where("user_id = ? AND job_id = ?", owner, upd.JobID).First(&job).Error; err != nil {
		return nil, apperr.Persistence("Database error", err)
	}
	return &job, nil
}

func (s *SavedJobService) Delete(ctx context.Context, owner, jobID string) error {
	if jobID == "" {
		return apperr.InvalidInput("Missing job_id", nil)
	}
	res := s.DB.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", owner, jobID).
		Delete(&models.SavedJob{})
	if res.Error != nil {
		return apperr.Persistence("Database error", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Saved job not found", nil)
	}
	return nil
}
