package services

import (
	"context"
	"fmt"
	"time"

	"github.com/justsurfingit/internhunt/internal/events"
	"github.com/justsurfingit/internhunt/internal/models"
	"go.uber.org/zap"
)

const (
	urgentWindowDays = 2
	day              = 24 * time.Hour

	UrgentTitle = "Urgent Deadlines!"
)

// UrgentDeadlines returns the jobs whose deadline is at or after now and at
// most two whole days away, counting partial days up.
func UrgentDeadlines(jobs []models.SavedJob, now time.Time) []models.SavedJob {
	urgent := []models.SavedJob{}
	for _, job := range jobs {
		if job.Deadline == nil {
			continue
		}
		diff := job.Deadline.Sub(now)
		if diff < 0 {
			continue
		}
		if ceilDays(diff) <= urgentWindowDays {
			urgent = append(urgent, job)
		}
	}
	return urgent
}

func ceilDays(d time.Duration) int64 {
	days := int64(d / day)
	if d%day != 0 {
		days++
	}
	return days
}

type Notification struct {
	UserID string            `json:"userId,omitempty"`
	Count  int               `json:"count"`
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Jobs   []models.SavedJob `json:"jobs"`
}

// UrgentNotification builds the aggregate notification for the urgent subset
// of jobs. Count is zero when nothing is urgent.
func UrgentNotification(owner string, jobs []models.SavedJob, now time.Time) Notification {
	urgent := UrgentDeadlines(jobs, now)
	n := Notification{UserID: owner, Count: len(urgent), Jobs: urgent}
	if n.Count > 0 {
		n.Title = UrgentTitle
		n.Body = fmt.Sprintf("You have %d application(s) closing soon.", n.Count)
	}
	return n
}

// DeadlineNotifier runs the urgency check over a freshly listed set of saved
// jobs and emits one aggregate notification when anything is urgent.
type DeadlineNotifier struct {
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewDeadlineNotifier(publisher events.Publisher, logger *zap.Logger) *DeadlineNotifier {
	return &DeadlineNotifier{publisher: publisher, logger: logger, now: time.Now}
}

func (n *DeadlineNotifier) Check(ctx context.Context, owner string, jobs []models.SavedJob) Notification {
	note := UrgentNotification(owner, jobs, n.now())
	if note.Count == 0 {
		return note
	}

	n.logger.Info("urgent deadlines",
		zap.String("user_id", owner),
		zap.Int("count", note.Count))

	if err := n.publisher.Publish(ctx, events.DeadlineSubject, note); err != nil {
		n.logger.Warn("deadline notification not delivered",
			zap.String("user_id", owner),
			zap.Error(err))
	}
	return note
}
