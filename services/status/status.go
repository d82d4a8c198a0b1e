package status

import (
	"fmt"
	"time"

	statusRepo "teampulse/database/repository/status"
	teamRepo "teampulse/database/repository/team"
	"teampulse/models"
	"teampulse/services/availability"
	"teampulse/utils"

	"go.uber.org/zap"
)

// DefaultStatusService is the production implementation.
type DefaultStatusService struct {
	Repo       statusRepo.StatusRepository
	Teams      teamRepo.TeamRepository
	Feed       FeedPublisher
	Cache      SnapshotCache
	Classifier availability.ClassifierConfig
}

// SaveStatus recomputes the color server-side and replaces the snapshot.
// The client-submitted color, if any, is ignored.
func (s *DefaultStatusService) SaveStatus(userID string, input models.StatusUpdateInput, now time.Time) (*models.StatusSnapshot, error) {
	nowClock := now.Format("15:04")
	result, err := availability.Classify(input.BusyBlocks, input.Blockers, input.FreeAfter, nowClock, s.Classifier)
	if err != nil {
		return nil, err
	}
	if input.FreeUntil != "" {
		if _, err := availability.ParseMinutes(input.FreeUntil); err != nil {
			return nil, err
		}
	}

	snapshot := &models.StatusSnapshot{
		UserID:          userID,
		Tasks:           input.Tasks,
		BusyBlocks:      input.BusyBlocks,
		Blockers:        input.Blockers,
		FreeAfter:       input.FreeAfter,
		FreeUntil:       input.FreeUntil,
		RawTranscript:   input.RawTranscript,
		ConfidenceScore: input.ConfidenceScore,
		StatusColor:     result.Color,
		StatusMessage:   result.Message,
		LastUpdated:     now,
	}

	if err := s.Repo.Upsert(snapshot); err != nil {
		return nil, fmt.Errorf("failed to save status: %w", err)
	}
	s.publish(snapshot)
	return snapshot, nil
}

// GetStatus retrieves a user's current snapshot, cache first.
func (s *DefaultStatusService) GetStatus(userID string) (*models.StatusSnapshot, error) {
	if s.Cache != nil {
		snapshot, err := s.Cache.GetCachedSnapshot(userID)
		if err != nil {
			utils.GetLogger().Warn("Status cache read failed, falling back to store",
				zap.String("userId", userID), zap.Error(err))
		} else if snapshot != nil {
			return snapshot, nil
		}
	}
	return s.Repo.GetByUserID(userID)
}

// GetTeamStatus retrieves current snapshots for every member of a team.
// Members without a snapshot get an empty green placeholder so the dashboard
// can render a card for everyone.
func (s *DefaultStatusService) GetTeamStatus(teamID string) ([]models.StatusSnapshot, error) {
	team, err := s.Teams.GetByID(teamID)
	if err != nil {
		return nil, err
	}

	snapshots, err := s.Repo.GetByUserIDs(team.MemberIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch team statuses: %w", err)
	}

	byUser := make(map[string]models.StatusSnapshot, len(snapshots))
	for _, snap := range snapshots {
		byUser[snap.UserID] = snap
	}

	result := make([]models.StatusSnapshot, 0, len(team.MemberIDs))
	for _, memberID := range team.MemberIDs {
		if snap, ok := byUser[memberID]; ok {
			result = append(result, snap)
			continue
		}
		result = append(result, models.StatusSnapshot{
			UserID:        memberID,
			StatusColor:   models.StatusGreen,
			StatusMessage: "Available now",
		})
	}
	return result, nil
}

// AppendMeetingBlock folds a booked meeting into the user's snapshot and
// reclassifies it.
func (s *DefaultStatusService) AppendMeetingBlock(userID string, blk models.BusyBlock, now time.Time) error {
	snapshot, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return err
	}
	if snapshot == nil {
		snapshot = &models.StatusSnapshot{UserID: userID}
	}
	snapshot.BusyBlocks = append(snapshot.BusyBlocks, blk)

	result, err := availability.Classify(snapshot.BusyBlocks, snapshot.Blockers, snapshot.FreeAfter, now.Format("15:04"), s.Classifier)
	if err != nil {
		return err
	}
	snapshot.StatusColor = result.Color
	snapshot.StatusMessage = result.Message
	snapshot.LastUpdated = now

	if err := s.Repo.Upsert(snapshot); err != nil {
		return fmt.Errorf("failed to update status after booking: %w", err)
	}
	s.publish(snapshot)
	return nil
}

// publish pushes the replaced snapshot to the feed. Feed delivery is best
// effort; the save already succeeded.
func (s *DefaultStatusService) publish(snapshot *models.StatusSnapshot) {
	if s.Feed == nil {
		return
	}
	if err := s.Feed.PublishSnapshot(snapshot); err != nil {
		utils.GetLogger().Warn("Failed to publish status snapshot",
			zap.String("userId", snapshot.UserID), zap.Error(err))
	}
}
