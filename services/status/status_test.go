package status

import (
	"testing"
	"time"

	"teampulse/models"
	"teampulse/services/availability"
)

type fakeStatusRepo struct {
	snapshots map[string]*models.StatusSnapshot
}

func (f *fakeStatusRepo) Upsert(snapshot *models.StatusSnapshot) error {
	copied := *snapshot
	f.snapshots[snapshot.UserID] = &copied
	return nil
}

func (f *fakeStatusRepo) GetByUserID(userID string) (*models.StatusSnapshot, error) {
	return f.snapshots[userID], nil
}

func (f *fakeStatusRepo) GetByUserIDs(userIDs []string) ([]models.StatusSnapshot, error) {
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

type fakeTeamRepo struct {
	teams map[string]*models.Team
}

func (f *fakeTeamRepo) Create(team *models.Team) error          { f.teams[team.ID] = team; return nil }
func (f *fakeTeamRepo) GetByID(id string) (*models.Team, error) { return f.teams[id], nil }
func (f *fakeTeamRepo) ListByMember(userID string) ([]models.Team, error) {
	return nil, nil
}
func (f *fakeTeamRepo) AddMember(teamID, userID string) error { return nil }
func (f *fakeTeamRepo) Delete(id string) error                { return nil }

type fakeFeed struct {
	published []*models.StatusSnapshot
}

func (f *fakeFeed) PublishSnapshot(snapshot *models.StatusSnapshot) error {
	f.published = append(f.published, snapshot)
	return nil
}

func newTestService(repo *fakeStatusRepo, teams *fakeTeamRepo, feed *fakeFeed) *DefaultStatusService {
	return &DefaultStatusService{
		Repo:       repo,
		Teams:      teams,
		Feed:       feed,
		Classifier: availability.DefaultClassifierConfig(),
	}
}

func TestSaveStatusRecomputesColor(t *testing.T) {
	repo := &fakeStatusRepo{snapshots: map[string]*models.StatusSnapshot{}}
	feed := &fakeFeed{}
	svc := newTestService(repo, &fakeTeamRepo{teams: map[string]*models.Team{}}, feed)

	now := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	input := models.StatusUpdateInput{
		Tasks: []string{"review PR"},
		BusyBlocks: []models.BusyBlock{
			{Start: "09:00", End: "10:00", Label: "standup", Source: models.BlockSourceVoice},
		},
	}

	snap, err := svc.SaveStatus("alice", input, now)
	if err != nil {
		t.Fatalf("SaveStatus returned error: %v", err)
	}
	if snap.StatusColor != models.StatusYellow || snap.StatusMessage != "Busy now" {
		t.Errorf("status = %s %q, want yellow \"Busy now\"", snap.StatusColor, snap.StatusMessage)
	}
	if !snap.LastUpdated.Equal(now) {
		t.Errorf("lastUpdated = %v, want %v", snap.LastUpdated, now)
	}
	if len(feed.published) != 1 {
		t.Errorf("expected one feed publish, got %d", len(feed.published))
	}
}

func TestSaveStatusReplacesWholesale(t *testing.T) {
	repo := &fakeStatusRepo{snapshots: map[string]*models.StatusSnapshot{}}
	svc := newTestService(repo, &fakeTeamRepo{teams: map[string]*models.Team{}}, &fakeFeed{})

	now := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	first := models.StatusUpdateInput{
		BusyBlocks: []models.BusyBlock{{Start: "09:00", End: "10:00", Source: models.BlockSourceVoice}},
		Blockers:   []string{"waiting on design review"},
	}
	if _, err := svc.SaveStatus("alice", first, now); err != nil {
		t.Fatalf("SaveStatus returned error: %v", err)
	}

	// The second save carries no blockers; none may survive from the first.
	second := models.StatusUpdateInput{FreeAfter: "14:00"}
	snap, err := svc.SaveStatus("alice", second, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("SaveStatus returned error: %v", err)
	}
	if len(snap.Blockers) != 0 || len(snap.BusyBlocks) != 0 {
		t.Errorf("snapshot not replaced wholesale: %+v", snap)
	}
	if snap.StatusColor != models.StatusGreen {
		t.Errorf("color = %s, want green", snap.StatusColor)
	}

	stored := repo.snapshots["alice"]
	if stored.FreeAfter != "14:00" || len(stored.Blockers) != 0 {
		t.Errorf("stored snapshot stale: %+v", stored)
	}
}

func TestSaveStatusBlockerDominates(t *testing.T) {
	repo := &fakeStatusRepo{snapshots: map[string]*models.StatusSnapshot{}}
	svc := newTestService(repo, &fakeTeamRepo{teams: map[string]*models.Team{}}, &fakeFeed{})

	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	input := models.StatusUpdateInput{
		Blockers:  []string{"prod incident"},
		FreeAfter: "13:00",
	}
	snap, err := svc.SaveStatus("alice", input, now)
	if err != nil {
		t.Fatalf("SaveStatus returned error: %v", err)
	}
	if snap.StatusColor != models.StatusRed || snap.StatusMessage != "Blocked" {
		t.Errorf("status = %s %q, want red \"Blocked\"", snap.StatusColor, snap.StatusMessage)
	}
}

func TestSaveStatusRejectsMalformedTimes(t *testing.T) {
	repo := &fakeStatusRepo{snapshots: map[string]*models.StatusSnapshot{}}
	svc := newTestService(repo, &fakeTeamRepo{teams: map[string]*models.Team{}}, &fakeFeed{})

	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	input := models.StatusUpdateInput{
		BusyBlocks: []models.BusyBlock{{Start: "9:00", End: "10:00", Source: models.BlockSourceVoice}},
	}
	if _, err := svc.SaveStatus("alice", input, now); !availability.IsInvalidRequest(err) {
		t.Errorf("expected invalid-request error, got %v", err)
	}

	badFreeUntil := models.StatusUpdateInput{FreeUntil: "later"}
	if _, err := svc.SaveStatus("alice", badFreeUntil, now); !availability.IsInvalidRequest(err) {
		t.Errorf("expected invalid-request error for freeUntil, got %v", err)
	}
}

type fakeCache struct {
	snapshots map[string]*models.StatusSnapshot
}

func (f *fakeCache) GetCachedSnapshot(userID string) (*models.StatusSnapshot, error) {
	return f.snapshots[userID], nil
}

func TestGetStatusPrefersCache(t *testing.T) {
	repo := &fakeStatusRepo{snapshots: map[string]*models.StatusSnapshot{
		"alice": {UserID: "alice", StatusColor: models.StatusGreen},
	}}
	svc := newTestService(repo, &fakeTeamRepo{teams: map[string]*models.Team{}}, &fakeFeed{})
	svc.Cache = &fakeCache{snapshots: map[string]*models.StatusSnapshot{
		"alice": {UserID: "alice", StatusColor: models.StatusYellow},
	}}

	snap, err := svc.GetStatus("alice")
	if err != nil {
		t.Fatalf("GetStatus returned error: %v", err)
	}
	if snap.StatusColor != models.StatusYellow {
		t.Errorf("expected cached snapshot, got %+v", snap)
	}

	// Cache miss falls through to the store.
	svc.Cache = &fakeCache{snapshots: map[string]*models.StatusSnapshot{}}
	snap, err = svc.GetStatus("alice")
	if err != nil {
		t.Fatalf("GetStatus returned error: %v", err)
	}
	if snap == nil || snap.StatusColor != models.StatusGreen {
		t.Errorf("expected stored snapshot on cache miss, got %+v", snap)
	}
}

func TestGetTeamStatusFillsMissingMembers(t *testing.T) {
	repo := &fakeStatusRepo{snapshots: map[string]*models.StatusSnapshot{
		"alice": {UserID: "alice", StatusColor: models.StatusRed, StatusMessage: "Blocked"},
	}}
	teams := &fakeTeamRepo{teams: map[string]*models.Team{
		"t1": {ID: "t1", Name: "Platform", MemberIDs: []string{"alice", "bob"}},
	}}
	svc := newTestService(repo, teams, &fakeFeed{})

	statuses, err := svc.GetTeamStatus("t1")
	if err != nil {
		t.Fatalf("GetTeamStatus returned error: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if statuses[0].UserID != "alice" || statuses[0].StatusColor != models.StatusRed {
		t.Errorf("unexpected first status: %+v", statuses[0])
	}
	if statuses[1].UserID != "bob" || statuses[1].StatusColor != models.StatusGreen {
		t.Errorf("member without snapshot should default green: %+v", statuses[1])
	}
}

func TestAppendMeetingBlockReclassifies(t *testing.T) {
	repo := &fakeStatusRepo{snapshots: map[string]*models.StatusSnapshot{
		"alice": {UserID: "alice", StatusColor: models.StatusGreen, StatusMessage: "Available now"},
	}}
	feed := &fakeFeed{}
	svc := newTestService(repo, &fakeTeamRepo{teams: map[string]*models.Team{}}, feed)

	now := time.Date(2025, 6, 2, 11, 30, 0, 0, time.UTC)
	blk := models.BusyBlock{Start: "11:30", End: "12:00", Label: "Quick sync", Source: models.BlockSourceCalendar}
	if err := svc.AppendMeetingBlock("alice", blk, now); err != nil {
		t.Fatalf("AppendMeetingBlock returned error: %v", err)
	}

	stored := repo.snapshots["alice"]
	if len(stored.BusyBlocks) != 1 {
		t.Fatalf("expected one busy block, got %d", len(stored.BusyBlocks))
	}
	if stored.StatusColor != models.StatusYellow {
		t.Errorf("color = %s, want yellow (busy in booked meeting)", stored.StatusColor)
	}
	if len(feed.published) != 1 {
		t.Errorf("expected feed publish after append, got %d", len(feed.published))
	}
}
