package models

import (
	"time"

	"gorm.io/datatypes"
)

type JobStatus string

const (
	StatusSaved        JobStatus = "Saved"
	StatusApplied      JobStatus = "Applied"
	StatusInterviewing JobStatus = "Interviewing"
	StatusOffer        JobStatus = "Offer"
	StatusRejected     JobStatus = "Rejected"
)

// Valid reports whether s is one of the tracked stages. Any stage may move to
// any other stage.
func (s JobStatus) Valid() bool {
	switch s {
	case StatusSaved, StatusApplied, StatusInterviewing, StatusOffer, StatusRejected:
		return true
	}
	return false
}

type ApplyOption struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// JobPosting is a listing as returned by the job source. It is never stored on
// its own, only snapshotted into a SavedJob.
type JobPosting struct {
	JobID        string        `json:"job_id"`
	Title        string        `json:"title"`
	CompanyName  string        `json:"company_name"`
	Location     string        `json:"location"`
	Via          string        `json:"via"`
	Description  string        `json:"description"`
	Extensions   []string      `json:"extensions"`
	ApplyOptions []ApplyOption `json:"apply_options"`
}

type SavedJob struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"not null;uniqueIndex:idx_saved_jobs_owner_job" json:"userId"`
	JobID  string `gorm:"not null;uniqueIndex:idx_saved_jobs_owner_job" json:"job_id"`

	Title        string                           `json:"title"`
	CompanyName  string                           `json:"company_name"`
	Location     string                           `json:"location"`
	Via          string                           `json:"via"`
	Description  string                           `gorm:"type:text" json:"description"`
	Extensions   datatypes.JSONSlice[string]      `json:"extensions"`
	ApplyOptions datatypes.JSONSlice[ApplyOption] `json:"apply_options"`

	Status   JobStatus `gorm:"not null;default:'Saved'" json:"status"`
	Deadline *Date     `json:"deadline"`

	SavedAt   time.Time `gorm:"autoCreateTime" json:"savedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewSavedJob snapshots a posting for owner in the initial Saved stage.
func NewSavedJob(owner string, job JobPosting) SavedJob {
	return SavedJob{
		UserID:       owner,
		JobID:        job.JobID,
		Title:        job.Title,
		CompanyName:  job.CompanyName,
		Location:     job.Location,
		Via:          job.Via,
		Description:  job.Description,
		Extensions:   datatypes.JSONSlice[string](job.Extensions),
		ApplyOptions: datatypes.JSONSlice[ApplyOption](job.ApplyOptions),
		Status:       StatusSaved,
	}
}

type UserProfile struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	UserID string `gorm:"uniqueIndex;not null" json:"userId"`

	Name              string `json:"name"`
	College           string `json:"college"`
	Major             string `json:"major"`
	Skills            string `gorm:"type:text" json:"skills"`
	Experience        string `json:"experience"`
	Year              string `json:"year"`
	PreferredRole     string `json:"preferredRole"`
	PreferredLocation string `json:"preferredLocation"`

	IsPro        bool       `gorm:"not null;default:false" json:"isPro"`
	ProUpdatedAt *time.Time `json:"proUpdatedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DeadLetterEvent keeps a verified provider event that could not be applied so
// it can be reconciled by hand.
type DeadLetterEvent struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Provider  string    `gorm:"not null;index" json:"provider"`
	EventType string    `json:"eventType"`
	Reason    string    `json:"reason"`
	Payload   string    `gorm:"type:text" json:"payload"`
	CreatedAt time.Time `json:"createdAt"`
}
