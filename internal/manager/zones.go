package manager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jroosing/bindman/internal/zonefile"
	"github.com/jroosing/bindman/internal/zonereg"
)

// ZoneKind classifies a zone by its name.
const (
	ZoneKindForward = "forward"
	ZoneKindReverse = "reverse"
)

// Zone is a managed zone as listed from the include document.
type Zone struct {
	Name          string       `json:"name"`
	Kind          string       `json:"kind"`
	Role          zonereg.Role `json:"role"`
	FilePath      string       `json:"file_path"`
	AllowTransfer []string     `json:"allow_transfer"`
	AlsoNotify    []string     `json:"also_notify"`
}

// ZoneDetail extends Zone with data read from the record file itself.
// SOA is nil for secondary zones, whose files are not managed here.
type ZoneDetail struct {
	Zone
	DefaultTTL uint32        `json:"default_ttl"`
	SOA        *zonefile.SOA `json:"soa,omitempty"`
}

// ZoneCreate is the input to CreateZone.
type ZoneCreate struct {
	Name          string                `json:"name"`
	Role          zonereg.Role          `json:"role"`
	DefaultTTL    uint32                `json:"default_ttl"`
	AllowTransfer []string              `json:"allow_transfer"`
	AlsoNotify    []string              `json:"also_notify"`
	PrimaryNS     string                `json:"primary_ns"`
	Nameservers   []zonefile.NameServer `json:"nameservers"`
}

// ZoneUpdate replaces a zone's stanza-level lists.
type ZoneUpdate struct {
	AllowTransfer []string `json:"allow_transfer"`
	AlsoNotify    []string `json:"also_notify"`
}

func zoneKind(name string) string {
	if zonefile.IsReverseZone(name) {
		return ZoneKindReverse
	}
	return ZoneKindForward
}

func zoneFromStanza(st zonereg.Stanza) Zone {
	return Zone{
		Name:          zonefile.NormalizeFQDN(st.Name),
		Kind:          zoneKind(st.Name),
		Role:          st.Role,
		FilePath:      st.FilePath,
		AllowTransfer: st.AllowTransfer,
		AlsoNotify:    st.AlsoNotify,
	}
}

// resolve looks a zone up in the include document. Zone names are
// accepted with or without the trailing dot.
func (m *Manager) resolve(name string) (zonereg.Stanza, error) {
	stanzas, err := m.Registry.List()
	if err != nil {
		return zonereg.Stanza{}, err
	}
	st, ok := stanzas[strings.TrimSuffix(name, ".")]
	if !ok {
		return zonereg.Stanza{}, fmt.Errorf("%w: %s", zonereg.ErrZoneNotFound, name)
	}
	return st, nil
}

// ListZones returns every managed zone, sorted by name.
func (m *Manager) ListZones(ctx context.Context) ([]Zone, error) {
	stanzas, err := m.Registry.List()
	if err != nil {
		return nil, err
	}
	out := make([]Zone, 0, len(stanzas))
	for _, st := range stanzas {
		out = append(out, zoneFromStanza(st))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetZone returns a zone with its default TTL and parsed SOA.
func (m *Manager) GetZone(ctx context.Context, name string) (ZoneDetail, error) {
	st, err := m.resolve(name)
	if err != nil {
		return ZoneDetail{}, err
	}
	detail := ZoneDetail{Zone: zoneFromStanza(st), DefaultTTL: m.DefaultTTL}

	if st.Role == zonereg.RoleSecondary {
		// Secondary files are written by the nameserver, often in raw
		// format; nothing to parse.
		return detail, nil
	}

	raw, err := os.ReadFile(st.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return ZoneDetail{}, fmt.Errorf("%w: %s", zonefile.ErrNotFound, st.FilePath)
		}
		return ZoneDetail{}, err
	}
	text := string(raw)
	detail.DefaultTTL = zonefile.ParseDefaultTTL(text)
	if soa, ok := zonefile.ParseSOA(text); ok {
		detail.SOA = &soa
	}
	return detail, nil
}

// CreateZone writes a fresh record file (primary zones), registers the
// stanza, validates, and reconfigures the nameserver. The record file
// is named db.<zone> under the managed zone directory.
func (m *Manager) CreateZone(ctx context.Context, req ZoneCreate) (zone Zone, err error) {
	name := strings.TrimSuffix(strings.TrimSpace(req.Name), ".")
	defer func() {
		outcome, detail := outcomeFor(err)
		m.record(ctx, "create_zone", name, outcome, detail)
	}()

	if name == "" {
		return Zone{}, fmt.Errorf("zone name must not be empty")
	}
	role := req.Role
	if role == "" {
		role = zonereg.RolePrimary
	}
	ttl := req.DefaultTTL
	if ttl == 0 {
		ttl = m.DefaultTTL
	}
	filePath := filepath.Join(m.Registry.ZoneDir, "db."+name)

	if role == zonereg.RolePrimary {
		err = m.Engine.WriteFull(name, filePath, nil, ttl, req.PrimaryNS, req.Nameservers, 0)
		if err != nil {
			return Zone{}, err
		}
	}

	if err = m.Registry.Upsert(name, filePath, req.AllowTransfer, req.AlsoNotify, role); err != nil {
		return Zone{}, err
	}

	if err = m.Cmd.CheckConf(ctx); err != nil {
		return Zone{}, err
	}
	if role == zonereg.RolePrimary {
		if err = m.Cmd.CheckZone(ctx, name, filePath); err != nil {
			return Zone{}, err
		}
	}
	if err = m.Cmd.Reconfig(ctx); err != nil {
		return Zone{}, err
	}

	if m.Logger != nil {
		m.Logger.InfoContext(ctx, "zone created", "zone", name, "role", role, "file", filePath)
	}
	return Zone{
		Name:          zonefile.NormalizeFQDN(name),
		Kind:          zoneKind(name),
		Role:          role,
		FilePath:      filePath,
		AllowTransfer: req.AllowTransfer,
		AlsoNotify:    req.AlsoNotify,
	}, nil
}

// UpdateZone replaces a zone's stanza with new transfer and notify
// lists, keeping its file path and role.
func (m *Manager) UpdateZone(ctx context.Context, name string, req ZoneUpdate) (zone Zone, err error) {
	name = strings.TrimSuffix(name, ".")
	defer func() {
		outcome, detail := outcomeFor(err)
		m.record(ctx, "update_zone", name, outcome, detail)
	}()

	st, err := m.resolve(name)
	if err != nil {
		return Zone{}, err
	}
	if err = m.Registry.Upsert(name, st.FilePath, req.AllowTransfer, req.AlsoNotify, st.Role); err != nil {
		return Zone{}, err
	}
	if err = m.Cmd.CheckConf(ctx); err != nil {
		return Zone{}, err
	}
	if err = m.Cmd.Reconfig(ctx); err != nil {
		return Zone{}, err
	}

	zone = zoneFromStanza(st)
	zone.AllowTransfer = req.AllowTransfer
	zone.AlsoNotify = req.AlsoNotify
	return zone, nil
}

// DeleteZone removes a zone's stanza, validates and reconfigures, then
// removes its record file. A file already gone is not an error.
func (m *Manager) DeleteZone(ctx context.Context, name string) (err error) {
	name = strings.TrimSuffix(name, ".")
	defer func() {
		outcome, detail := outcomeFor(err)
		m.record(ctx, "delete_zone", name, outcome, detail)
	}()

	st, err := m.resolve(name)
	if err != nil {
		return err
	}
	if err = m.Registry.Delete(name); err != nil {
		return err
	}
	if err = m.Cmd.CheckConf(ctx); err != nil {
		return err
	}
	if err = m.Cmd.Reconfig(ctx); err != nil {
		return err
	}

	if rmErr := os.Remove(st.FilePath); rmErr != nil && !os.IsNotExist(rmErr) {
		return rmErr
	}
	if m.Logger != nil {
		m.Logger.InfoContext(ctx, "zone deleted", "zone", name)
	}
	return nil
}

// ExportZone returns the raw record file text of a managed zone.
func (m *Manager) ExportZone(ctx context.Context, name string) (string, error) {
	st, err := m.resolve(name)
	if err != nil {
		return "", err
	}
	raw, err := os.ReadFile(st.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", zonefile.ErrNotFound, st.FilePath)
		}
		return "", err
	}
	return string(raw), nil
}
