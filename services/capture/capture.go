package capture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kympulse/database"
	"kympulse/models"
	"kympulse/utils"

	"go.uber.org/zap"
)

// RecordVisit creates the service event for a page load. A session that already
// recorded one gets a result with Recorded false and no token. While the session
// store is unreachable the flag lives in the process-local fallback.
func (s *DefaultCaptureService) RecordVisit(ctx context.Context, req VisitRequest) (*VisitResult, error) {
	logger := utils.GetLogger()
	if req.ProfessionalID == "" {
		return nil, ErrMissingProfessional
	}

	var flags SessionStore
	if req.SessionID != "" {
		store, ok, err := s.claim(ctx, req.SessionID)
		switch {
		case err != nil:
			logger.Warn("No session store available, recording without dedupe", zap.Error(err))
		case !ok:
			return &VisitResult{Recorded: false}, nil
		default:
			flags = store
		}
	}

	event := models.ServiceEvent{
		ProfessionalID: req.ProfessionalID,
		Timestamp:      s.now(),
		UserAgent:      req.UserAgent,
		Platform:       req.Platform,
	}
	if req.EventID != "" {
		eventID := req.EventID
		event.EventID = &eventID
	}

	recordID, err := s.Repo.Create(ctx, event)
	if err != nil {
		if flags != nil {
			if relErr := flags.Release(ctx, req.SessionID); relErr != nil {
				logger.Warn("Failed to release session flag", zap.Error(relErr))
			}
		}
		return nil, fmt.Errorf("failed to record massage: %w", err)
	}

	state := CaptureState{RecordID: recordID, ProfessionalID: req.ProfessionalID}
	token, err := utils.GenerateCaptureToken(recordID, req.ProfessionalID, s.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign capture token: %w", err)
	}
	logger.Info("Massage recorded", zap.String("recordId", recordID), zap.String("professionalId", req.ProfessionalID))
	return &VisitResult{Recorded: true, State: state, Token: token}, nil
}

// SubmitSurvey attaches the survey to the event carried by the token.
func (s *DefaultCaptureService) SubmitSurvey(ctx context.Context, token string, survey models.Survey) (*CaptureState, error) {
	if token == "" {
		return nil, ErrMissingRecord
	}
	claims, err := utils.ParseCaptureToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingRecord, err)
	}

	if err := s.Repo.AttachSurvey(ctx, claims.RecordID, survey); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrMissingRecord, err)
		}
		return nil, fmt.Errorf("failed to save survey: %w", err)
	}
	utils.GetLogger().Info("Survey submitted", zap.String("recordId", claims.RecordID))
	return &CaptureState{RecordID: claims.RecordID, ProfessionalID: claims.ProfessionalID}, nil
}

// claim sets the session flag, falling back to the in-process store when the
// primary one fails. It returns the store that holds the flag.
func (s *DefaultCaptureService) claim(ctx context.Context, sessionID string) (SessionStore, bool, error) {
	ok, err := s.Sessions.Claim(ctx, sessionID)
	if err == nil || s.Fallback == nil {
		return s.Sessions, ok, err
	}
	utils.GetLogger().Warn("Session store unavailable, deduplicating in process", zap.Error(err))
	ok, err = s.Fallback.Claim(ctx, sessionID)
	return s.Fallback, ok, err
}

func (s *DefaultCaptureService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
