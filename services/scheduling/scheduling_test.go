package scheduling

import (
	"errors"
	"testing"
	"time"

	"teampulse/models"
	"teampulse/services/availability"
)

type fakeStatusRepo struct {
	snapshots map[string]*models.StatusSnapshot
	err       error
}

func (f *fakeStatusRepo) Upsert(snapshot *models.StatusSnapshot) error {
	f.snapshots[snapshot.UserID] = snapshot
	return nil
}

func (f *fakeStatusRepo) GetByUserID(userID string) (*models.StatusSnapshot, error) {
	return f.snapshots[userID], nil
}

func (f *fakeStatusRepo) GetByUserIDs(userIDs []string) ([]models.StatusSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.StatusSnapshot
	for _, id := range userIDs {
		if snap, ok := f.snapshots[id]; ok {
			out = append(out, *snap)
		}
	}
	return out, nil
}

func (f *fakeStatusRepo) Delete(userID string) error {
	delete(f.snapshots, userID)
	return nil
}

type fakeMeetingRepo struct {
	meetings []models.Meeting
}

func (f *fakeMeetingRepo) Create(meeting *models.Meeting) error {
	f.meetings = append(f.meetings, *meeting)
	return nil
}

func (f *fakeMeetingRepo) GetByID(id string) (*models.Meeting, error) {
	for i := range f.meetings {
		if f.meetings[i].ID == id {
			return &f.meetings[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeMeetingRepo) ListForParticipant(userID string, from, to time.Time) ([]models.Meeting, error) {
	return nil, nil
}

func (f *fakeMeetingRepo) FindOverlapping(participants []string, start, end time.Time) ([]models.Meeting, error) {
	members := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		members[p] = struct{}{}
	}
	var out []models.Meeting
	for _, m := range f.meetings {
		if !m.Start.Before(end) || !m.End.After(start) {
			continue
		}
		for _, p := range m.Participants {
			if _, ok := members[p]; ok {
				out = append(out, m)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeMeetingRepo) Delete(id string) error { return nil }

type fakeStatusService struct {
	appended map[string][]models.BusyBlock
}

func (f *fakeStatusService) SaveStatus(userID string, input models.StatusUpdateInput, now time.Time) (*models.StatusSnapshot, error) {
	return nil, nil
}

func (f *fakeStatusService) GetStatus(userID string) (*models.StatusSnapshot, error) {
	return nil, nil
}

func (f *fakeStatusService) GetTeamStatus(teamID string) ([]models.StatusSnapshot, error) {
	return nil, nil
}

func (f *fakeStatusService) AppendMeetingBlock(userID string, blk models.BusyBlock, now time.Time) error {
	if f.appended == nil {
		f.appended = make(map[string][]models.BusyBlock)
	}
	f.appended[userID] = append(f.appended[userID], blk)
	return nil
}

func newTestService(statusRepo *fakeStatusRepo, meetingRepo *fakeMeetingRepo, statusSvc *fakeStatusService) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		StatusRepo:  statusRepo,
		MeetingRepo: meetingRepo,
		StatusSvc:   statusSvc,
		Fallback:    &MockSlotGenerator{WorkdayStartMin: 9 * 60, WorkdayEndMin: 18 * 60},
		Config:      Config{WorkdayStartMin: 9 * 60, WorkdayEndMin: 18 * 60, DaysAhead: 1},
	}
}

func busySnapshot(userID string, blocks ...models.BusyBlock) *models.StatusSnapshot {
	return &models.StatusSnapshot{UserID: userID, BusyBlocks: blocks, StatusColor: models.StatusYellow}
}

func calBlock(start, end string) models.BusyBlock {
	return models.BusyBlock{Start: start, End: end, Source: models.BlockSourceCalendar}
}

func TestFindCommonSlotsQuickSync(t *testing.T) {
	repo := &fakeStatusRepo{snapshots: map[string]*models.StatusSnapshot{
		"alice": busySnapshot("alice", calBlock("10:00", "11:00")),
		"bob":   busySnapshot("bob", calBlock("10:30", "11:30")),
	}}
	svc := newTestService(repo, &fakeMeetingRepo{}, &fakeStatusService{})

	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	resp, err := svc.FindCommonSlots([]string{"alice", "bob"}, 30, 5, now)
	if err != nil {
		t.Fatalf("FindCommonSlots returned error: %v", err)
	}
	if resp.Degraded {
		t.Error("response unexpectedly degraded")
	}
	if len(resp.Slots) == 0 {
		t.Fatal("expected slots")
	}
	want := time.Date(2025, 6, 2, 11, 30, 0, 0, time.UTC)
	if !resp.Slots[0].Start.Equal(want) {
		t.Errorf("first slot starts %v, want %v", resp.Slots[0].Start, want)
	}
}

func TestFindCommonSlotsParticipantWithoutSnapshot(t *testing.T) {
	// A user who never posted a status is treated as fully free.
	repo := &fakeStatusRepo{snapshots: map[string]*models.StatusSnapshot{
		"alice": busySnapshot("alice", calBlock("09:00", "17:00")),
	}}
	svc := newTestService(repo, &fakeMeetingRepo{}, &fakeStatusService{})

	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	resp, err := svc.FindCommonSlots([]string{"alice", "ghost"}, 30, 5, now)
	if err != nil {
		t.Fatalf("FindCommonSlots returned error: %v", err)
	}
	if len(resp.Slots) != 1 {
		t.Fatalf("expected a single slot, got %d", len(resp.Slots))
	}
	if resp.Slots[0].Start.Hour() != 17 {
		t.Errorf("slot starts at %v, want 17:00", resp.Slots[0].Start)
	}
}

func TestFindCommonSlotsNoCommonTime(t *testing.T) {
	repo := &fakeStatusRepo{snapshots: map[string]*models.StatusSnapshot{
		"alice": busySnapshot("alice", calBlock("09:00", "18:00")),
	}}
	svc := newTestService(repo, &fakeMeetingRepo{}, &fakeStatusService{})

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	resp, err := svc.FindCommonSlots([]string{"alice"}, 30, 5, now)
	if err != nil {
		t.Fatalf("FindCommonSlots returned error: %v", err)
	}
	if resp.Degraded {
		t.Error("a valid empty result must not be marked degraded")
	}
	if resp.Slots == nil || len(resp.Slots) != 0 {
		t.Errorf("expected empty slot list, got %v", resp.Slots)
	}
}

func TestFindCommonSlotsDegradedFallback(t *testing.T) {
	repo := &fakeStatusRepo{
		snapshots: map[string]*models.StatusSnapshot{},
		err:       errors.New("store unavailable"),
	}
	svc := newTestService(repo, &fakeMeetingRepo{}, &fakeStatusService{})

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	resp, err := svc.FindCommonSlots([]string{"alice", "bob"}, 30, 5, now)
	if err != nil {
		t.Fatalf("fallback path must not surface the fetch error, got %v", err)
	}
	if !resp.Degraded {
		t.Error("expected degraded response")
	}
	if len(resp.Slots) == 0 {
		t.Error("expected placeholder slots")
	}
	if len(resp.Slots) > 5 {
		t.Errorf("placeholder slots exceed cap: %d", len(resp.Slots))
	}
	for i := 1; i < len(resp.Slots); i++ {
		if !resp.Slots[i-1].Start.Before(resp.Slots[i].Start) {
			t.Errorf("placeholder slots out of order: %v then %v", resp.Slots[i-1].Start, resp.Slots[i].Start)
		}
	}
}

func TestFindCommonSlotsValidation(t *testing.T) {
	repo := &fakeStatusRepo{snapshots: map[string]*models.StatusSnapshot{}}
	svc := newTestService(repo, &fakeMeetingRepo{}, &fakeStatusService{})
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	if _, err := svc.FindCommonSlots(nil, 30, 5, now); !availability.IsInvalidRequest(err) {
		t.Errorf("empty participants: expected invalid-request error, got %v", err)
	}
	if _, err := svc.FindCommonSlots([]string{"alice"}, 0, 5, now); !availability.IsInvalidRequest(err) {
		t.Errorf("zero duration: expected invalid-request error, got %v", err)
	}
}

func TestBookMeetingAppendsBusyBlocks(t *testing.T) {
	statusSvc := &fakeStatusService{}
	meetings := &fakeMeetingRepo{}
	svc := newTestService(&fakeStatusRepo{snapshots: map[string]*models.StatusSnapshot{}}, meetings, statusSvc)

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	req := models.BookMeetingRequest{
		Title:        "Quick sync",
		Start:        time.Date(2025, 6, 2, 11, 30, 0, 0, time.UTC),
		End:          time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
		Participants: []string{"alice", "bob"},
	}
	meeting, err := svc.BookMeeting("alice", req, now)
	if err != nil {
		t.Fatalf("BookMeeting returned error: %v", err)
	}
	if meeting.DurationMinutes != 30 {
		t.Errorf("duration = %d, want 30", meeting.DurationMinutes)
	}
	if len(meetings.meetings) != 1 {
		t.Fatalf("expected one stored meeting, got %d", len(meetings.meetings))
	}
	for _, userID := range req.Participants {
		blocks := statusSvc.appended[userID]
		if len(blocks) != 1 {
			t.Fatalf("expected one busy block for %s, got %d", userID, len(blocks))
		}
		if blocks[0].Start != "11:30" || blocks[0].End != "12:00" || blocks[0].Source != models.BlockSourceCalendar {
			t.Errorf("unexpected busy block for %s: %+v", userID, blocks[0])
		}
	}
}

func TestBookMeetingFutureDayLeavesSnapshotsAlone(t *testing.T) {
	statusSvc := &fakeStatusService{}
	svc := newTestService(&fakeStatusRepo{snapshots: map[string]*models.StatusSnapshot{}}, &fakeMeetingRepo{}, statusSvc)

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	req := models.BookMeetingRequest{
		Title:        "Planning",
		Start:        time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC),
		End:          time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC),
		Participants: []string{"alice"},
	}
	if _, err := svc.BookMeeting("alice", req, now); err != nil {
		t.Fatalf("BookMeeting returned error: %v", err)
	}
	if len(statusSvc.appended) != 0 {
		t.Errorf("future-day meeting must not touch today's snapshots, got %v", statusSvc.appended)
	}
}

func TestBookMeetingConflict(t *testing.T) {
	meetings := &fakeMeetingRepo{}
	svc := newTestService(&fakeStatusRepo{snapshots: map[string]*models.StatusSnapshot{}}, meetings, &fakeStatusService{})

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	req := models.BookMeetingRequest{
		Title:        "Quick sync",
		Start:        time.Date(2025, 6, 2, 11, 30, 0, 0, time.UTC),
		End:          time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
		Participants: []string{"alice", "bob"},
	}
	if _, err := svc.BookMeeting("alice", req, now); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// Second caller racing for an overlapping window with a shared
	// participant loses.
	second := req
	second.Title = "Another sync"
	second.Participants = []string{"bob", "carol"}
	_, err := svc.BookMeeting("carol", second, now)
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if !IsConflict(err) {
		t.Errorf("expected booking conflict, got %v", err)
	}
}

func TestBookMeetingValidation(t *testing.T) {
	svc := newTestService(&fakeStatusRepo{snapshots: map[string]*models.StatusSnapshot{}}, &fakeMeetingRepo{}, &fakeStatusService{})
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	_, err := svc.BookMeeting("alice", models.BookMeetingRequest{
		Title:        "Broken",
		Start:        time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
		End:          time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
		Participants: []string{"alice"},
	}, now)
	if !availability.IsInvalidRequest(err) {
		t.Errorf("inverted window: expected invalid-request error, got %v", err)
	}

	_, err = svc.BookMeeting("alice", models.BookMeetingRequest{
		Title: "Nobody",
		Start: time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
	}, now)
	if !availability.IsInvalidRequest(err) {
		t.Errorf("no participants: expected invalid-request error, got %v", err)
	}
}
