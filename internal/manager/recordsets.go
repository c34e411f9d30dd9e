package manager

import (
	"context"
	"strings"

	"github.com/jroosing/bindman/internal/zonefile"
	"github.com/jroosing/bindman/internal/zonereg"
)

// ListRecordSets reads a zone's record file into recordsets. Secondary
// zones yield an empty list: their files belong to the nameserver.
func (m *Manager) ListRecordSets(ctx context.Context, name string) ([]zonefile.RecordSet, error) {
	st, err := m.resolve(name)
	if err != nil {
		return nil, err
	}
	if st.Role == zonereg.RoleSecondary {
		return []zonefile.RecordSet{}, nil
	}
	return m.Engine.ReadZone(zonefile.NormalizeFQDN(st.Name), st.FilePath)
}

// ReplaceRecordSets rewrites all data records of a primary zone,
// preserving the file's header, then validates the zone and reloads it.
func (m *Manager) ReplaceRecordSets(ctx context.Context, name string, recordsets []zonefile.RecordSet) (err error) {
	zone := strings.TrimSuffix(name, ".")
	defer func() {
		outcome, detail := outcomeFor(err)
		m.record(ctx, "replace_recordsets", zone, outcome, detail)
	}()

	st, err := m.resolve(name)
	if err != nil {
		return err
	}
	if st.Role == zonereg.RoleSecondary {
		return ErrSecondaryZone
	}

	fqdn := zonefile.NormalizeFQDN(st.Name)
	if err = m.Engine.WriteRecordsUpdate(fqdn, st.FilePath, recordsets); err != nil {
		return err
	}
	if err = m.Cmd.CheckZone(ctx, zone, st.FilePath); err != nil {
		return err
	}
	if err = m.Cmd.ReloadZone(ctx, zone); err != nil {
		return err
	}

	if m.Logger != nil {
		m.Logger.InfoContext(ctx, "recordsets replaced", "zone", zone, "count", len(recordsets))
	}
	return nil
}
