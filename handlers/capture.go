package handlers

import (
	"errors"
	"net/http"

	"kympulse/metrics"
	"kympulse/services/capture"
	"kympulse/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const pulseTemplate = "pulse.html"

// Messages shown on the capture page.
const (
	msgMissingProfessional = "⚠️ Código inválido: falta ID del profesional."
	msgMissingRecord       = "❌ No se encontró el registro del masaje."
)

// PulsePage is the view model of the capture page.
type PulsePage struct {
	ProfessionalID string
	Token          string
	ShowSurvey     bool
	Submitted      bool
	Error          string
}

// CaptureHandler serves the capture page and its survey form.
type CaptureHandler struct {
	Service      capture.CaptureService
	Metrics      *metrics.Manager
	SecureCookie bool
}

// NewCaptureHandler creates a new CaptureHandler.
func NewCaptureHandler(svc capture.CaptureService, m *metrics.Manager, secureCookie bool) *CaptureHandler {
	return &CaptureHandler{Service: svc, Metrics: m, SecureCookie: secureCookie}
}

// PulsePageHandler handles GET /pulse?p=<professionalId>&idEvento=<eventId>.
// Store failures are logged only; the client still gets the survey.
func (h *CaptureHandler) PulsePageHandler(c *gin.Context) {
	logger := getLogger(c)
	professionalID := c.Query("p")
	if professionalID == "" {
		c.HTML(http.StatusBadRequest, pulseTemplate, PulsePage{Error: msgMissingProfessional})
		return
	}

	res, err := h.Service.RecordVisit(c.Request.Context(), capture.VisitRequest{
		ProfessionalID: professionalID,
		EventID:        c.Query("idEvento"),
		SessionID:      h.sessionID(c),
		UserAgent:      c.Request.UserAgent(),
		Platform:       platform(c),
	})

	page := PulsePage{ProfessionalID: professionalID, ShowSurvey: true}
	switch {
	case err != nil:
		logger.Error("Failed to record massage", zap.String("professionalId", professionalID), zap.Error(err))
		h.observe(metrics.CaptureFailed)
	case res.Recorded:
		page.Token = res.Token
		h.observe(metrics.CaptureRecorded)
	default:
		logger.Debug("Massage already recorded in this session", zap.String("professionalId", professionalID))
		h.observe(metrics.CaptureDuplicate)
	}
	c.HTML(http.StatusOK, pulseTemplate, page)
}

// SurveyHandler handles POST /pulse/encuesta.
func (h *CaptureHandler) SurveyHandler(c *gin.Context) {
	logger := getLogger(c)
	token := c.PostForm("token")
	survey := capture.ParseSurvey(c.PostForm("satisfaccion"), c.PostForm("comodidad"), c.PostForm("duracionOk"))

	state, err := h.Service.SubmitSurvey(c.Request.Context(), token, survey)
	if errors.Is(err, capture.ErrMissingRecord) {
		logger.Warn("Survey without a recorded massage", zap.Error(err))
		c.HTML(http.StatusBadRequest, pulseTemplate, PulsePage{Error: msgMissingRecord})
		return
	}
	if err != nil {
		logger.Error("Failed to save survey", zap.Error(err))
		h.observe(metrics.CaptureFailed)
		c.HTML(http.StatusBadGateway, pulseTemplate, PulsePage{Token: token, ShowSurvey: true})
		return
	}

	h.observe(metrics.CaptureSurvey)
	c.HTML(http.StatusOK, pulseTemplate, PulsePage{ProfessionalID: state.ProfessionalID, Submitted: true})
}

// sessionID returns the browser session ID, issuing a session cookie on first visit.
func (h *CaptureHandler) sessionID(c *gin.Context) string {
	if id, err := c.Cookie(utils.SessionCookieName); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	// MaxAge 0 keeps it a session cookie, gone when the browser closes.
	c.SetCookie(utils.SessionCookieName, id, 0, "/", "", h.SecureCookie, true)
	return id
}

func (h *CaptureHandler) observe(outcome string) {
	if h.Metrics != nil {
		h.Metrics.ObserveCapture(outcome)
	}
}

// platform reads the Sec-CH-UA-Platform client hint, which arrives quoted.
func platform(c *gin.Context) string {
	p := c.GetHeader("Sec-CH-UA-Platform")
	if len(p) >= 2 && p[0] == '"' && p[len(p)-1] == '"' {
		p = p[1 : len(p)-1]
	}
	return p
}
