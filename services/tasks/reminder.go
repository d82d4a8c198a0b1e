package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"teampulse/models"
	"teampulse/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeMeetingReminder = "reminder:meeting"

// reminderLeadTime is how long before the meeting start the push fires.
const reminderLeadTime = 10 * time.Minute

// NewMeetingReminderTask builds an asynq task scheduled for fireAt.
func NewMeetingReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeMeetingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderClient enqueues meeting reminders onto the reminder queue. It
// satisfies the scheduler's ReminderScheduler dependency.
type ReminderClient struct {
	Client *asynq.Client
}

// ScheduleMeetingReminder enqueues one reminder task per participant,
// scheduled shortly before the meeting starts. Meetings starting too soon
// for the lead time get no reminder.
func (rc *ReminderClient) ScheduleMeetingReminder(meeting *models.Meeting) error {
	if rc.Client == nil {
		return fmt.Errorf("asynq client is nil, reminder task cannot be enqueued")
	}

	fireAt := meeting.Start.Add(-reminderLeadTime)
	if !fireAt.After(time.Now()) {
		return nil
	}

	logger := utils.GetLogger()
	for _, userID := range meeting.Participants {
		payload := models.ReminderPayload{
			MeetingID: meeting.ID,
			UserID:    userID,
			Title:     "Upcoming meeting: " + meeting.Title,
			Body:      fmt.Sprintf("Starts at %s", meeting.Start.Format("15:04")),
			FireDate:  fireAt.Format(time.RFC3339),
		}

		task, opts, err := NewMeetingReminderTask(payload, fireAt)
		if err != nil {
			return fmt.Errorf("failed to build reminder task: %w", err)
		}
		if _, err := rc.Client.Enqueue(task, opts...); err != nil {
			logger.Error("Failed to enqueue reminder task",
				zap.Error(err), zap.String("meetingID", meeting.ID), zap.String("userID", userID))
			return err
		}
	}
	return nil
}
