package manager_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jroosing/bindman/internal/bindcfg"
	"github.com/jroosing/bindman/internal/bindexec"
	"github.com/jroosing/bindman/internal/manager"
	"github.com/jroosing/bindman/internal/zonefile"
	"github.com/jroosing/bindman/internal/zonereg"
)

// stubCommander records tool invocations and can be armed to fail a
// specific step.
type stubCommander struct {
	calls []string

	checkConfErr error
	checkZoneErr error
	reloadErr    error
	reconfigErr  error
}

func (s *stubCommander) CheckConf(ctx context.Context) error {
	s.calls = append(s.calls, "checkconf")
	return s.checkConfErr
}

func (s *stubCommander) CheckZone(ctx context.Context, zone, path string) error {
	s.calls = append(s.calls, "checkzone "+zone)
	return s.checkZoneErr
}

func (s *stubCommander) ReloadZone(ctx context.Context, zone string) error {
	s.calls = append(s.calls, "reload "+zone)
	return s.reloadErr
}

func (s *stubCommander) Reconfig(ctx context.Context) error {
	s.calls = append(s.calls, "reconfig")
	return s.reconfigErr
}

func newTestManager(t *testing.T) (*manager.Manager, *stubCommander) {
	t.Helper()
	dir := t.TempDir()
	zoneDir := filepath.Join(dir, "managed-zones")
	require.NoError(t, os.Mkdir(zoneDir, 0o755))
	include := filepath.Join(dir, "managed-zones.conf")
	require.NoError(t, os.WriteFile(include, []byte(""), 0o644))

	engine := zonefile.NewEngine(true)
	engine.Serial.Now = func() time.Time {
		return time.Date(2025, 8, 25, 12, 0, 0, 0, time.UTC)
	}

	cmd := &stubCommander{}
	m := &manager.Manager{
		Registry: &zonereg.Registry{
			IncludePath:    include,
			ZoneDir:        zoneDir,
			MastersACL:     "primary-servers",
			RequireInclude: true,
		},
		Engine:      engine,
		Cmd:         cmd,
		OptionsPath: filepath.Join(dir, "named.conf.options"),
		DefaultTTL:  300,
	}
	return m, cmd
}

func createTestZone(t *testing.T, m *manager.Manager) manager.Zone {
	t.Helper()
	zone, err := m.CreateZone(context.Background(), manager.ZoneCreate{
		Name:      "example.com",
		PrimaryNS: "ns1",
		Nameservers: []zonefile.NameServer{
			{Hostname: "ns1", IPv4: "192.0.2.1"},
		},
	})
	require.NoError(t, err)
	return zone
}

func TestCreateZone_Primary(t *testing.T) {
	m, cmd := newTestManager(t)

	zone := createTestZone(t, m)

	assert.Equal(t, "example.com.", zone.Name)
	assert.Equal(t, manager.ZoneKindForward, zone.Kind)
	assert.Equal(t, zonereg.RolePrimary, zone.Role)

	// The record file exists and is registered.
	_, err := os.Stat(zone.FilePath)
	require.NoError(t, err)
	stanzas, err := m.Registry.List()
	require.NoError(t, err)
	assert.Contains(t, stanzas, "example.com")

	// write -> validate -> reconfig, in that order.
	assert.Equal(t, []string{"checkconf", "checkzone example.com", "reconfig"}, cmd.calls)
}

func TestCreateZone_Secondary(t *testing.T) {
	m, cmd := newTestManager(t)

	zone, err := m.CreateZone(context.Background(), manager.ZoneCreate{
		Name: "mirror.example.net",
		Role: zonereg.RoleSecondary,
	})
	require.NoError(t, err)
	assert.Equal(t, zonereg.RoleSecondary, zone.Role)

	// No record file is written for secondaries, and no checkzone runs.
	_, err = os.Stat(zone.FilePath)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, []string{"checkconf", "reconfig"}, cmd.calls)
}

func TestCreateZone_EmptyName(t *testing.T) {
	m, _ := newTestManager(t)
	_, err := m.CreateZone(context.Background(), manager.ZoneCreate{})
	assert.Error(t, err)
}

func TestCreateZone_ValidationFailureKeepsArtifacts(t *testing.T) {
	m, cmd := newTestManager(t)
	cmd.checkZoneErr = &bindexec.ValidationError{Tool: "named-checkzone", Result: bindexec.Result{ExitCode: 1, Stderr: "bad zone"}}

	_, err := m.CreateZone(context.Background(), manager.ZoneCreate{
		Name:      "example.com",
		PrimaryNS: "ns1",
	})
	require.Error(t, err)
	var ve *bindexec.ValidationError
	assert.ErrorAs(t, err, &ve)

	// The invalid artifacts stay on disk for inspection.
	stanzas, listErr := m.Registry.List()
	require.NoError(t, listErr)
	assert.Contains(t, stanzas, "example.com")
	_, statErr := os.Stat(filepath.Join(m.Registry.ZoneDir, "db.example.com"))
	assert.NoError(t, statErr)
}

func TestGetZone(t *testing.T) {
	m, _ := newTestManager(t)
	createTestZone(t, m)

	detail, err := m.GetZone(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, "example.com.", detail.Name)
	assert.Equal(t, uint32(300), detail.DefaultTTL)
	require.NotNil(t, detail.SOA)
	assert.Equal(t, "ns1.example.com.", detail.SOA.PrimaryNS)
	assert.Equal(t, uint32(2025082502), detail.SOA.Serial, "fresh serial plus one auto bump")
}

func TestGetZone_Unknown(t *testing.T) {
	m, _ := newTestManager(t)
	_, err := m.GetZone(context.Background(), "missing.example")
	assert.ErrorIs(t, err, zonereg.ErrZoneNotFound)
}

func TestListZones_Sorted(t *testing.T) {
	m, _ := newTestManager(t)
	for _, name := range []string{"zulu.example", "alpha.example"} {
		_, err := m.CreateZone(context.Background(), manager.ZoneCreate{Name: name, PrimaryNS: "ns1"})
		require.NoError(t, err)
	}

	zones, err := m.ListZones(context.Background())
	require.NoError(t, err)
	require.Len(t, zones, 2)
	assert.Equal(t, "alpha.example.", zones[0].Name)
	assert.Equal(t, "zulu.example.", zones[1].Name)
}

func TestUpdateZone(t *testing.T) {
	m, cmd := newTestManager(t)
	createTestZone(t, m)
	cmd.calls = nil

	zone, err := m.UpdateZone(context.Background(), "example.com", manager.ZoneUpdate{
		AllowTransfer: []string{"203.0.113.53"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"203.0.113.53"}, zone.AllowTransfer)
	assert.Equal(t, []string{"checkconf", "reconfig"}, cmd.calls)

	stanzas, err := m.Registry.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"203.0.113.53"}, stanzas["example.com"].AllowTransfer)
}

func TestDeleteZone(t *testing.T) {
	m, cmd := newTestManager(t)
	zone := createTestZone(t, m)
	cmd.calls = nil

	require.NoError(t, m.DeleteZone(context.Background(), "example.com"))

	stanzas, err := m.Registry.List()
	require.NoError(t, err)
	assert.NotContains(t, stanzas, "example.com")
	_, statErr := os.Stat(zone.FilePath)
	assert.True(t, os.IsNotExist(statErr))
	assert.Equal(t, []string{"checkconf", "reconfig"}, cmd.calls)
}

func TestDeleteZone_Unknown(t *testing.T) {
	m, cmd := newTestManager(t)
	err := m.DeleteZone(context.Background(), "missing.example")
	assert.ErrorIs(t, err, zonereg.ErrZoneNotFound)
	assert.Empty(t, cmd.calls, "nothing runs when the zone is unmanaged")
}

func TestDeleteZone_FileAlreadyGone(t *testing.T) {
	m, _ := newTestManager(t)
	zone := createTestZone(t, m)
	require.NoError(t, os.Remove(zone.FilePath))

	assert.NoError(t, m.DeleteZone(context.Background(), "example.com"))
}

func TestListRecordSets(t *testing.T) {
	m, _ := newTestManager(t)
	createTestZone(t, m)

	recordsets, err := m.ListRecordSets(context.Background(), "example.com")
	require.NoError(t, err)

	types := map[string]bool{}
	for _, rs := range recordsets {
		types[rs.Type] = true
	}
	assert.True(t, types[zonefile.TypeNS])
	assert.True(t, types[zonefile.TypeA], "nameserver glue")
}

func TestListRecordSets_SecondaryEmpty(t *testing.T) {
	m, _ := newTestManager(t)
	_, err := m.CreateZone(context.Background(), manager.ZoneCreate{
		Name: "mirror.example.net",
		Role: zonereg.RoleSecondary,
	})
	require.NoError(t, err)

	recordsets, err := m.ListRecordSets(context.Background(), "mirror.example.net")
	require.NoError(t, err)
	assert.Empty(t, recordsets)
}

func TestReplaceRecordSets(t *testing.T) {
	m, cmd := newTestManager(t)
	createTestZone(t, m)
	cmd.calls = nil

	err := m.ReplaceRecordSets(context.Background(), "example.com", []zonefile.RecordSet{
		{Name: "www.example.com.", Type: zonefile.TypeA, Values: []zonefile.RecordValue{{Value: "192.0.2.10"}}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"checkzone example.com", "reload example.com"}, cmd.calls)

	recordsets, err := m.ListRecordSets(context.Background(), "example.com")
	require.NoError(t, err)
	found := false
	for _, rs := range recordsets {
		if rs.Name == "www.example.com." && rs.Type == zonefile.TypeA {
			found = true
		}
	}
	assert.True(t, found)
}

func TestReplaceRecordSets_SecondaryRefused(t *testing.T) {
	m, cmd := newTestManager(t)
	_, err := m.CreateZone(context.Background(), manager.ZoneCreate{
		Name: "mirror.example.net",
		Role: zonereg.RoleSecondary,
	})
	require.NoError(t, err)
	cmd.calls = nil

	err = m.ReplaceRecordSets(context.Background(), "mirror.example.net", nil)
	assert.ErrorIs(t, err, manager.ErrSecondaryZone)
	assert.Empty(t, cmd.calls)
}

func TestExportZone(t *testing.T) {
	m, _ := newTestManager(t)
	createTestZone(t, m)

	text, err := m.ExportZone(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Contains(t, text, "$TTL 300")
	assert.Contains(t, text, "@ IN SOA ns1.example.com.")
}

func TestPutOptions(t *testing.T) {
	m, cmd := newTestManager(t)

	recursion := false
	err := m.PutOptions(context.Background(), bindcfg.Options{
		Directory: "/var/cache/bind",
		Recursion: &recursion,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"checkconf", "reconfig"}, cmd.calls)

	opts, err := m.GetOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/var/cache/bind", opts.Directory)
	require.NotNil(t, opts.Recursion)
	assert.False(t, *opts.Recursion)
}

func TestReload(t *testing.T) {
	m, cmd := newTestManager(t)
	require.NoError(t, m.Reload(context.Background()))
	assert.Equal(t, []string{"reconfig"}, cmd.calls)
}

func TestReload_Failure(t *testing.T) {
	m, cmd := newTestManager(t)
	cmd.reconfigErr = &bindexec.ReloadError{Command: "reconfig", Result: bindexec.Result{ExitCode: 1}}

	err := m.Reload(context.Background())
	var re *bindexec.ReloadError
	assert.ErrorAs(t, err, &re)
}
