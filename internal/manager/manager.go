// Package manager orchestrates configuration changes end to end: write
// the artifact, validate it with the nameserver's own tooling, then ask
// the running nameserver to pick it up. Writes that fail validation are
// left on disk for inspection — there is no rollback.
package manager

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jroosing/bindman/internal/audit"
	"github.com/jroosing/bindman/internal/zonefile"
	"github.com/jroosing/bindman/internal/zonereg"
)

// ErrSecondaryZone reports a write against a secondary zone; its data
// lives on the primary server.
var ErrSecondaryZone = errors.New("secondary zones are read-only here")

// Commander runs the nameserver's validation and control tools.
type Commander interface {
	CheckConf(ctx context.Context) error
	CheckZone(ctx context.Context, zone, path string) error
	ReloadZone(ctx context.Context, zone string) error
	Reconfig(ctx context.Context) error
}

// Manager ties the document layers together. All operations are
// synchronous; locking happens inside the document layers.
type Manager struct {
	Registry *zonereg.Registry
	Engine   *zonefile.Engine
	Cmd      Commander

	// OptionsPath is the options document.
	OptionsPath string
	// DefaultTTL is used when a zone creation does not specify one.
	DefaultTTL uint32

	// Audit is optional; a nil store disables the journal.
	Audit  *audit.Store
	Logger *slog.Logger
}

// record appends an audit entry, best effort. The operation's own
// outcome is never affected by journal failures.
func (m *Manager) record(ctx context.Context, operation, zone, outcome, detail string) {
	if m.Audit == nil {
		return
	}
	if err := m.Audit.Record(ctx, operation, zone, outcome, detail); err != nil && m.Logger != nil {
		m.Logger.WarnContext(ctx, "audit record failed", "operation", operation, "error", err)
	}
}

// outcomeFor classifies an operation error for the audit journal.
func outcomeFor(err error) (string, string) {
	if err == nil {
		return audit.OutcomeOK, ""
	}
	switch {
	case isValidationErr(err):
		return audit.OutcomeValidationFailed, err.Error()
	case isReloadErr(err):
		return audit.OutcomeReloadFailed, err.Error()
	default:
		return audit.OutcomeError, err.Error()
	}
}
