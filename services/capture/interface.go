package capture

import (
	"context"
	"time"

	massageRepo "kympulse/database/repository/massage"
	"kympulse/models"
)

// CaptureService records service events from the pulse page and attaches surveys.
type CaptureService interface {
	// RecordVisit creates one event per browser session.
	RecordVisit(ctx context.Context, req VisitRequest) (*VisitResult, error)
	// SubmitSurvey merges the answers into the event named by the capture token.
	SubmitSurvey(ctx context.Context, token string, survey models.Survey) (*CaptureState, error)
}

// VisitRequest is what the page load tells us about the visit.
type VisitRequest struct {
	ProfessionalID string
	EventID        string
	SessionID      string
	UserAgent      string
	Platform       string
}

// VisitResult reports whether an event was created. Token is the signed capture
// state the survey form must send back; it is empty when nothing was recorded.
type VisitResult struct {
	Recorded bool
	State    CaptureState
	Token    string
}

// CaptureState is the explicit state a survey submission works on.
type CaptureState struct {
	RecordID       string
	ProfessionalID string
}

// DefaultCaptureService is the production implementation.
type DefaultCaptureService struct {
	Repo     massageRepo.MassageRepository
	Sessions SessionStore
	// Fallback holds the flags while Sessions is unreachable.
	Fallback SessionStore
	TokenTTL time.Duration
	Now      func() time.Time
}

func NewDefaultCaptureService(repo massageRepo.MassageRepository, sessions SessionStore, tokenTTL time.Duration) *DefaultCaptureService {
	return &DefaultCaptureService{
		Repo:     repo,
		Sessions: sessions,
		Fallback: NewMemorySessionStore(),
		TokenTTL: tokenTTL,
		Now:      time.Now,
	}
}
