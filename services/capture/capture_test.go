package capture

import (
	"context"
	"errors"
	"testing"
	"time"

	massageRepo "kympulse/database/repository/massage"
	"kympulse/models"
	"kympulse/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func newTestService() (*DefaultCaptureService, *massageRepo.MemoryMassageRepo, *MemorySessionStore) {
	repo := massageRepo.NewMemoryMassageRepo()
	sessions := NewMemorySessionStore()
	svc := NewDefaultCaptureService(repo, sessions, time.Hour)
	svc.Now = func() time.Time { return fixedNow }
	return svc, repo, sessions
}

func TestRecordVisit_CreatesOneEventPerSession(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()
	req := VisitRequest{ProfessionalID: "prof123", SessionID: "sess-1", UserAgent: "Mozilla/5.0", Platform: "Android"}

	first, err := svc.RecordVisit(ctx, req)
	require.NoError(t, err)
	assert.True(t, first.Recorded)
	assert.NotEmpty(t, first.Token)

	second, err := svc.RecordVisit(ctx, req)
	require.NoError(t, err)
	assert.False(t, second.Recorded)
	assert.Empty(t, second.Token)

	events := repo.All()
	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, "prof123", ev.ProfessionalID)
	assert.Equal(t, fixedNow, ev.Timestamp)
	assert.Equal(t, "Mozilla/5.0", ev.UserAgent)
	assert.Equal(t, "Android", ev.Platform)
	assert.Nil(t, ev.EventID)
	assert.Nil(t, ev.Survey)
	assert.Equal(t, ev.ID, first.State.RecordID)
}

func TestRecordVisit_KeepsEventID(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.RecordVisit(context.Background(), VisitRequest{ProfessionalID: "prof123", EventID: "feria-2025", SessionID: "s"})
	require.NoError(t, err)

	events := repo.All()
	require.Len(t, events, 1)
	require.NotNil(t, events[0].EventID)
	assert.Equal(t, "feria-2025", *events[0].EventID)
}

func TestRecordVisit_MissingProfessional(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.RecordVisit(context.Background(), VisitRequest{SessionID: "s"})
	assert.ErrorIs(t, err, ErrMissingProfessional)
	assert.Empty(t, repo.All())
}

func TestRecordVisit_StoreFailureReleasesSession(t *testing.T) {
	svc, repo, sessions := newTestService()
	repo.FailWith(errors.New("unavailable"))

	_, err := svc.RecordVisit(context.Background(), VisitRequest{ProfessionalID: "p", SessionID: "s"})
	require.Error(t, err)

	claimed, err := sessions.Claim(context.Background(), "s")
	require.NoError(t, err)
	assert.True(t, claimed, "a failed capture must not mark the session as recorded")
}

type brokenSessions struct{}

func (brokenSessions) Claim(context.Context, string) (bool, error) { return false, errors.New("redis down") }
func (brokenSessions) Release(context.Context, string) error       { return errors.New("redis down") }

func TestRecordVisit_SessionStoreDownDedupesInProcess(t *testing.T) {
	svc, repo, _ := newTestService()
	svc.Sessions = brokenSessions{}
	ctx := context.Background()
	req := VisitRequest{ProfessionalID: "prof123", SessionID: "s"}

	first, err := svc.RecordVisit(ctx, req)
	require.NoError(t, err)
	assert.True(t, first.Recorded)

	second, err := svc.RecordVisit(ctx, req)
	require.NoError(t, err)
	assert.False(t, second.Recorded)
	assert.Len(t, repo.All(), 1)
}

func TestRecordVisit_FallbackReleasedOnStoreFailure(t *testing.T) {
	svc, repo, _ := newTestService()
	svc.Sessions = brokenSessions{}
	repo.FailWith(errors.New("unavailable"))

	_, err := svc.RecordVisit(context.Background(), VisitRequest{ProfessionalID: "p", SessionID: "s"})
	require.Error(t, err)

	claimed, err := svc.Fallback.Claim(context.Background(), "s")
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestRecordVisit_NoSessionStoreStillRecords(t *testing.T) {
	svc, repo, _ := newTestService()
	svc.Sessions = brokenSessions{}
	svc.Fallback = brokenSessions{}

	res, err := svc.RecordVisit(context.Background(), VisitRequest{ProfessionalID: "p", SessionID: "s"})
	require.NoError(t, err)
	assert.True(t, res.Recorded)
	assert.Len(t, repo.All(), 1)
}

func TestSubmitSurvey_AttachesToRecordedEvent(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()
	res, err := svc.RecordVisit(ctx, VisitRequest{ProfessionalID: "prof123", SessionID: "s"})
	require.NoError(t, err)

	survey := ParseSurvey("5", "4", "on")
	state, err := svc.SubmitSurvey(ctx, res.Token, survey)
	require.NoError(t, err)
	assert.Equal(t, res.State, *state)

	ev, err := repo.GetByID(ctx, res.State.RecordID)
	require.NoError(t, err)
	require.NotNil(t, ev.Survey)
	assert.Equal(t, 5, *ev.Survey.Satisfaction)
	assert.Equal(t, 4, *ev.Survey.Comfort)
	assert.True(t, ev.Survey.DurationOK)
}

func TestSubmitSurvey_RequiresToken(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SubmitSurvey(context.Background(), "", models.Survey{})
	assert.ErrorIs(t, err, ErrMissingRecord)

	_, err = svc.SubmitSurvey(context.Background(), "not-a-jwt", models.Survey{})
	assert.ErrorIs(t, err, ErrMissingRecord)
}

func TestSubmitSurvey_UnknownRecord(t *testing.T) {
	svc, _, _ := newTestService()
	token, err := utils.GenerateCaptureToken("gone", "prof123", time.Hour)
	require.NoError(t, err)

	_, err = svc.SubmitSurvey(context.Background(), token, models.Survey{})
	assert.ErrorIs(t, err, ErrMissingRecord)
}

func TestSubmitSurvey_ExpiredToken(t *testing.T) {
	svc, _, _ := newTestService()
	token, err := utils.GenerateCaptureToken("rec", "prof123", -time.Minute)
	require.NoError(t, err)

	_, err = svc.SubmitSurvey(context.Background(), token, models.Survey{})
	assert.ErrorIs(t, err, ErrMissingRecord)
}

func TestParseSurvey(t *testing.T) {
	tests := []struct {
		name                 string
		satisfaction, comfort string
		duration             string
		wantSat, wantComfort *int
		wantDuration         bool
	}{
		{"plain numbers", "5", "3", "on", intPtr(5), intPtr(3), true},
		{"leading integer", " 4 estrellas", "2.9", "", intPtr(4), intPtr(2), false},
		{"unparsable", "", "abc", "false", nil, nil, false},
		{"checkbox true", "1", "1", "true", intPtr(1), intPtr(1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ParseSurvey(tt.satisfaction, tt.comfort, tt.duration)
			assert.Equal(t, tt.wantSat, s.Satisfaction)
			assert.Equal(t, tt.wantComfort, s.Comfort)
			assert.Equal(t, tt.wantDuration, s.DurationOK)
		})
	}
}

func intPtr(n int) *int { return &n }
