package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"kympulse/metrics"
	"kympulse/services/migration"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MigrationResponse is the body of every migration endpoint.
type MigrationResponse struct {
	Status  string `json:"status"`
	Mensaje string `json:"mensaje,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MigrationHandler exposes the one-shot migration passes over HTTP.
type MigrationHandler struct {
	Service migration.MigrationService
	Metrics *metrics.Manager
	Timeout time.Duration
}

// NewMigrationHandler creates a new MigrationHandler.
func NewMigrationHandler(svc migration.MigrationService, m *metrics.Manager, timeout time.Duration) *MigrationHandler {
	return &MigrationHandler{Service: svc, Metrics: m, Timeout: timeout}
}

// MigrateProfessionalsHandler handles POST /migrarProfesionales.
func (h *MigrationHandler) MigrateProfessionalsHandler(c *gin.Context) {
	h.run(c, metrics.OpMigrate, h.Service.MigrateProfessionals, "Se migraron %d profesionales correctamente.")
}

// LinkServicesHandler handles POST /vincularServiciosConProfesionales.
func (h *MigrationHandler) LinkServicesHandler(c *gin.Context) {
	h.run(c, metrics.OpLink, h.Service.LinkServices, "Se vincularon %d servicios correctamente.")
}

// ResetLinksHandler handles POST /resetProfessionalLinks.
func (h *MigrationHandler) ResetLinksHandler(c *gin.Context) {
	h.run(c, metrics.OpReset, h.Service.ResetLinks, "Se limpiaron %d servicios correctamente.")
}

func (h *MigrationHandler) run(c *gin.Context, operation string, pass func(context.Context) (int, error), message string) {
	if c.Request.Method != http.MethodPost {
		c.Header("Allow", http.MethodPost)
		c.String(http.StatusMethodNotAllowed, "Método no permitido")
		return
	}
	logger := getLogger(c).With(zap.String("operation", operation))

	ctx := c.Request.Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	start := time.Now()
	n, err := pass(ctx)
	if h.Metrics != nil {
		h.Metrics.ObserveMigration(operation, n, time.Since(start), err)
	}
	if err != nil {
		logger.Error("Migration pass failed", zap.Int("records", n), zap.Error(err))
		c.JSON(http.StatusInternalServerError, MigrationResponse{Status: "error", Error: err.Error()})
		return
	}

	logger.Info("Migration pass finished", zap.Int("records", n), zap.Duration("elapsed", time.Since(start)))
	c.JSON(http.StatusOK, MigrationResponse{Status: "ok", Mensaje: fmt.Sprintf(message, n)})
}
