// Package handlers implements the REST API endpoint handlers for
// bindman.
//
// REST API Endpoints:
//
// System:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats - Server statistics (uptime, memory, host metrics)
//   - GET /api/v1/audit - Recent configuration operations
//
// Zones:
//   - GET /api/v1/zones - List managed zones
//   - POST /api/v1/zones - Create a zone
//   - GET /api/v1/zones/:name - Zone details with SOA and default TTL
//   - PUT /api/v1/zones/:name - Replace stanza transfer/notify lists
//   - DELETE /api/v1/zones/:name - Delete a zone
//   - GET /api/v1/zones/:name/recordsets - List recordsets
//   - PUT /api/v1/zones/:name/recordsets - Replace all recordsets
//   - GET /api/v1/zones/:name/export - Raw zone file text
//
// Nameserver options:
//   - GET /api/v1/config - Parsed options document
//   - PUT /api/v1/config - Regenerate the options document
//   - POST /api/v1/config/reload - rndc reconfig without changes
//
// Authentication:
//
// All endpoints under /api/v1 require the X-API-Key header when an API
// key is configured.
//
// @title bindman Management API
// @version 1.0
// @description REST API for managing BIND 9 on-disk configuration: zones, recordsets and server options.
//
// @contact.name bindman Support
// @contact.url https://github.com/jroosing/bindman
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8080
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"log/slog"
	"time"

	"github.com/jroosing/bindman/internal/audit"
	"github.com/jroosing/bindman/internal/manager"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	mgr       *manager.Manager
	auditLog  *audit.Store
	logger    *slog.Logger
	startTime time.Time
}

// New creates a new Handler. The audit store may be nil.
func New(mgr *manager.Manager, auditLog *audit.Store, logger *slog.Logger) *Handler {
	return &Handler{
		mgr:       mgr,
		auditLog:  auditLog,
		logger:    logger,
		startTime: time.Now(),
	}
}
