package scheduling

import (
	"fmt"
	"time"

	meetingRepo "teampulse/database/repository/meeting"
	statusRepo "teampulse/database/repository/status"
	"teampulse/models"
	"teampulse/services/availability"
	"teampulse/services/notification"
	"teampulse/services/status"
	"teampulse/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config carries the working-hours window and search horizon.
type Config struct {
	WorkdayStartMin int
	WorkdayEndMin   int
	DaysAhead       int
}

// DefaultSchedulingService is the production implementation.
type DefaultSchedulingService struct {
	StatusRepo   statusRepo.StatusRepository
	MeetingRepo  meetingRepo.MeetingRepository
	StatusSvc    status.StatusService
	Notification notification.NotificationService
	Reminders    ReminderScheduler
	Fallback     SlotGenerator
	Config       Config
}

// FindCommonSlots fetches every participant's current snapshot and runs the
// intersector over their busy blocks.
func (s *DefaultSchedulingService) FindCommonSlots(userIDs []string, minDurationMinutes int, maxResults int, now time.Time) (*models.SlotSearchResponse, error) {
	if len(userIDs) == 0 {
		return nil, availability.NewInvalidRequestError("at least one participant is required")
	}
	if minDurationMinutes <= 0 {
		return nil, availability.NewInvalidRequestError("minDuration must be positive")
	}

	snapshots, err := s.StatusRepo.GetByUserIDs(userIDs)
	if err != nil {
		// Graceful degradation: slot search must not hard-fail on a transient
		// store error. Serve placeholder slots and flag the response.
		utils.GetLogger().Warn("Slot search falling back to generated slots", zap.Error(err))
		return &models.SlotSearchResponse{
			Slots:    s.Fallback.Generate(userIDs, minDurationMinutes, maxResults, now),
			Degraded: true,
		}, nil
	}

	busyByUser := make(map[string][]models.BusyBlock, len(userIDs))
	for _, id := range userIDs {
		busyByUser[id] = nil
	}
	for _, snap := range snapshots {
		busyByUser[snap.UserID] = snap.BusyBlocks
	}

	slots, err := availability.FindSlots(busyByUser, availability.SlotOptions{
		MinDurationMinutes: minDurationMinutes,
		WorkdayStartMin:    s.Config.WorkdayStartMin,
		WorkdayEndMin:      s.Config.WorkdayEndMin,
		DaysAhead:          s.Config.DaysAhead,
		MaxResults:         maxResults,
		BaseDate:           now,
		SearchFromMin:      now.Hour()*60 + now.Minute(),
	})
	if err != nil {
		return nil, err
	}
	if slots == nil {
		// An exhausted horizon is a valid "no common time" result.
		slots = []models.AvailableSlot{}
	}
	return &models.SlotSearchResponse{Slots: slots}, nil
}

// BookMeeting creates the durable record and feeds a busy block back into
// each participant's snapshot. Reading slots and booking one is non-atomic:
// the overlap check here resolves the race between two callers, first write
// wins.
func (s *DefaultSchedulingService) BookMeeting(createdBy string, req models.BookMeetingRequest, now time.Time) (*models.Meeting, error) {
	if len(req.Participants) == 0 {
		return nil, availability.NewInvalidRequestError("at least one participant is required")
	}
	if !req.End.After(req.Start) {
		return nil, availability.NewInvalidRequestError("meeting end must be after start")
	}

	overlapping, err := s.MeetingRepo.FindOverlapping(req.Participants, req.Start, req.End)
	if err != nil {
		return nil, fmt.Errorf("failed to check for conflicting meetings: %w", err)
	}
	if len(overlapping) > 0 {
		return nil, NewConflictError(fmt.Sprintf("slot already booked: %s", overlapping[0].Title))
	}

	meeting := &models.Meeting{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Start:           req.Start,
		End:             req.End,
		DurationMinutes: int(req.End.Sub(req.Start).Minutes()),
		Participants:    req.Participants,
		Notes:           req.Notes,
		CreatedBy:       createdBy,
	}
	if err := s.MeetingRepo.Create(meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	s.applyBusyBlocks(meeting, now)
	s.notifyParticipants(meeting)

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleMeetingReminder(meeting); err != nil {
			utils.GetLogger().Warn("Failed to schedule meeting reminder",
				zap.String("meetingId", meeting.ID), zap.Error(err))
		}
	}
	return meeting, nil
}

// applyBusyBlocks appends the meeting as a calendar block to each
// participant's snapshot. Snapshots only model the current day, so meetings
// booked for a later day do not touch them.
func (s *DefaultSchedulingService) applyBusyBlocks(meeting *models.Meeting, now time.Time) {
	if !sameDay(meeting.Start, now) {
		return
	}
	blk := models.BusyBlock{
		Start:  meeting.Start.Format("15:04"),
		End:    meeting.End.Format("15:04"),
		Label:  meeting.Title,
		Source: models.BlockSourceCalendar,
	}
	for _, userID := range meeting.Participants {
		if err := s.StatusSvc.AppendMeetingBlock(userID, blk, now); err != nil {
			utils.GetLogger().Warn("Failed to append meeting block to status",
				zap.String("userId", userID), zap.String("meetingId", meeting.ID), zap.Error(err))
		}
	}
}

func (s *DefaultSchedulingService) notifyParticipants(meeting *models.Meeting) {
	if s.Notification == nil {
		return
	}
	body := fmt.Sprintf("%s at %s", meeting.Title, meeting.Start.Format("15:04"))
	data := map[string]string{"meetingId": meeting.ID}
	for _, userID := range meeting.Participants {
		if userID == meeting.CreatedBy {
			continue
		}
		if err := s.Notification.SendUserPushNotification(userID, "New meeting booked", body, data); err != nil {
			utils.GetLogger().Warn("Failed to notify participant",
				zap.String("userId", userID), zap.String("meetingId", meeting.ID), zap.Error(err))
		}
	}
}

// ListMeetings returns the user's meetings starting within [from, to).
func (s *DefaultSchedulingService) ListMeetings(userID string, from, to time.Time) ([]models.Meeting, error) {
	meetings, err := s.MeetingRepo.ListForParticipant(userID, from, to)
	if err != nil {
		return nil, err
	}
	if meetings == nil {
		meetings = []models.Meeting{}
	}
	return meetings, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
