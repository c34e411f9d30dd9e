package zonereg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jroosing/bindman/internal/zonereg"
)

func newTestRegistry(t *testing.T) *zonereg.Registry {
	t.Helper()
	dir := t.TempDir()
	zoneDir := filepath.Join(dir, "managed-zones")
	require.NoError(t, os.Mkdir(zoneDir, 0o755))

	include := filepath.Join(dir, "managed-zones.conf")
	require.NoError(t, os.WriteFile(include, []byte(""), 0o644))

	return &zonereg.Registry{
		IncludePath:    include,
		ZoneDir:        zoneDir,
		MastersACL:     "primary-servers",
		RequireInclude: true,
	}
}

func TestUpsert_AppendsNewZone(t *testing.T) {
	r := newTestRegistry(t)

	err := r.Upsert("example.com", "/etc/bind/db.example.com", []string{"192.0.2.53"}, nil, zonereg.RolePrimary)
	require.NoError(t, err)

	stanzas, err := r.List()
	require.NoError(t, err)
	require.Contains(t, stanzas, "example.com")
	assert.Equal(t, []string{"192.0.2.53"}, stanzas["example.com"].AllowTransfer)
}

func TestUpsert_Idempotent(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.Upsert("example.com", "/etc/bind/db.example.com", nil, nil, zonereg.RolePrimary))
	first, err := r.Read()
	require.NoError(t, err)

	require.NoError(t, r.Upsert("example.com", "/etc/bind/db.example.com", nil, nil, zonereg.RolePrimary))
	second, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, first, second, "re-registering a zone must be byte-stable")
}

func TestUpsert_ReplacesInPlace(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.Upsert("a.example", "/etc/bind/db.a.example", nil, nil, zonereg.RolePrimary))
	require.NoError(t, r.Upsert("b.example", "/etc/bind/db.b.example", nil, nil, zonereg.RolePrimary))
	require.NoError(t, r.Upsert("c.example", "/etc/bind/db.c.example", nil, nil, zonereg.RolePrimary))

	// Change the middle zone's transfer list.
	require.NoError(t, r.Upsert("b.example", "/etc/bind/db.b.example", []string{"203.0.113.53"}, nil, zonereg.RolePrimary))

	stanzas, err := r.List()
	require.NoError(t, err)
	require.Len(t, stanzas, 3)
	assert.Equal(t, []string{"203.0.113.53"}, stanzas["b.example"].AllowTransfer)
	assert.Empty(t, stanzas["a.example"].AllowTransfer)
	assert.Empty(t, stanzas["c.example"].AllowTransfer)
}

func TestUpsert_PreservesForeignText(t *testing.T) {
	r := newTestRegistry(t)
	header := "// Managed zones. Do not edit by hand.\n"
	require.NoError(t, os.WriteFile(r.IncludePath, []byte(header), 0o644))

	require.NoError(t, r.Upsert("example.com", "/etc/bind/db.example.com", nil, nil, zonereg.RolePrimary))

	text, err := r.Read()
	require.NoError(t, err)
	assert.Contains(t, text, "// Managed zones. Do not edit by hand.")
}

func TestUpsert_Secondary(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.Upsert("mirror.example.net", "/var/cache/bind/db.mirror.example.net", nil, nil, zonereg.RoleSecondary))

	text, err := r.Read()
	require.NoError(t, err)
	assert.Contains(t, text, "type slave;")
	assert.Contains(t, text, "masters { primary-servers; };")
}

func TestDelete_RemovesZone(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.Upsert("a.example", "/etc/bind/db.a.example", nil, nil, zonereg.RolePrimary))
	require.NoError(t, r.Upsert("b.example", "/etc/bind/db.b.example", nil, nil, zonereg.RolePrimary))

	require.NoError(t, r.Delete("a.example"))

	stanzas, err := r.List()
	require.NoError(t, err)
	assert.NotContains(t, stanzas, "a.example")
	assert.Contains(t, stanzas, "b.example")

	text, err := r.Read()
	require.NoError(t, err)
	assert.NotContains(t, text, "\n\n\n", "blank runs collapse after deletion")
	assert.Equal(t, byte('\n'), text[len(text)-1])
}

func TestDelete_UnknownZone(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Upsert("a.example", "/etc/bind/db.a.example", nil, nil, zonereg.RolePrimary))
	before, err := r.Read()
	require.NoError(t, err)

	err = r.Delete("missing.example")
	assert.ErrorIs(t, err, zonereg.ErrZoneNotFound)

	after, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed delete must not touch the document")
}

func TestReady_MissingInclude(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, os.Remove(r.IncludePath))

	_, err := r.List()
	assert.ErrorIs(t, err, zonereg.ErrIncludeMissing)
}

func TestReady_MissingIncludeAllowedWhenNotRequired(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, os.Remove(r.IncludePath))
	r.RequireInclude = false

	stanzas, err := r.List()
	require.NoError(t, err)
	assert.Empty(t, stanzas)

	// First upsert creates the document.
	require.NoError(t, r.Upsert("example.com", "/etc/bind/db.example.com", nil, nil, zonereg.RolePrimary))
	stanzas, err = r.List()
	require.NoError(t, err)
	assert.Contains(t, stanzas, "example.com")
}

func TestReady_MissingZoneDir(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, os.Remove(r.ZoneDir))

	_, err := r.List()
	assert.ErrorIs(t, err, zonereg.ErrZoneDirMissing)
}
