package zonereg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInclude = `// Managed zones. Do not edit by hand.

zone "example.com" {
	type master;
	file "/etc/bind/managed-zones/db.example.com";
	allow-transfer { 192.0.2.53; 198.51.100.53; };
	also-notify { 192.0.2.53; };
};

zone "2.0.192.in-addr.arpa" {
	type master;
	file "/etc/bind/managed-zones/db.2.0.192.in-addr.arpa";
};

zone "mirror.example.net" {
	type slave;
	masters { primary-servers; };
	file "/var/cache/bind/db.mirror.example.net";
};
`

func TestParseStanzas(t *testing.T) {
	stanzas := ParseStanzas(sampleInclude)
	require.Len(t, stanzas, 3)

	fwd := stanzas["example.com"]
	assert.Equal(t, "example.com", fwd.Name)
	assert.Equal(t, "/etc/bind/managed-zones/db.example.com", fwd.FilePath)
	assert.Equal(t, RolePrimary, fwd.Role)
	assert.Equal(t, []string{"192.0.2.53", "198.51.100.53"}, fwd.AllowTransfer)
	assert.Equal(t, []string{"192.0.2.53"}, fwd.AlsoNotify)

	rev := stanzas["2.0.192.in-addr.arpa"]
	assert.Equal(t, RolePrimary, rev.Role)
	assert.Empty(t, rev.AllowTransfer)

	sec := stanzas["mirror.example.net"]
	assert.Equal(t, RoleSecondary, sec.Role)
	assert.Equal(t, "/var/cache/bind/db.mirror.example.net", sec.FilePath)
}

func TestParseStanzas_RawIncludesTrailingSemicolonAndNewline(t *testing.T) {
	stanzas := ParseStanzas(sampleInclude)
	raw := stanzas["example.com"].Raw
	assert.True(t, len(raw) > 0)
	assert.Equal(t, "};\n", raw[len(raw)-3:])
}

func TestParseStanzas_SkipsStanzaWithoutFile(t *testing.T) {
	text := `zone "." {
	type hint;
};

zone "example.com" {
	type master;
	file "/etc/bind/db.example.com";
};
`
	stanzas := ParseStanzas(text)
	require.Len(t, stanzas, 1)
	assert.Contains(t, stanzas, "example.com")
}

func TestParseStanzas_RecoversFromUnbalancedBraces(t *testing.T) {
	text := `zone "broken.example" {
	type master;
	file "/etc/bind/db.broken.example";

zone "ok.example" {
	type master;
	file "/etc/bind/db.ok.example";
};
`
	stanzas := ParseStanzas(text)
	// The scan resumes at the next zone token after an unbalanced
	// stanza instead of discarding the rest of the document.
	assert.Contains(t, stanzas, "ok.example")
	assert.NotContains(t, stanzas, "broken.example")
}

func TestParseStanzas_DuplicateNameLaterWins(t *testing.T) {
	text := `zone "example.com" {
	type master;
	file "/etc/bind/db.first";
};
zone "example.com" {
	type master;
	file "/etc/bind/db.second";
};
`
	stanzas := ParseStanzas(text)
	require.Len(t, stanzas, 1)
	assert.Equal(t, "/etc/bind/db.second", stanzas["example.com"].FilePath)
}

func TestParseStanzas_SecondaryTypeSpelling(t *testing.T) {
	text := `zone "a.example" {
	type secondary;
	file "/var/cache/bind/db.a.example";
};
`
	stanzas := ParseStanzas(text)
	assert.Equal(t, RoleSecondary, stanzas["a.example"].Role)
}

func TestBuildStanza_Primary(t *testing.T) {
	got := BuildStanza("example.com", "/etc/bind/managed-zones/db.example.com",
		[]string{"192.0.2.53", "198.51.100.53"}, []string{"192.0.2.53"}, RolePrimary, "primary-servers")

	want := "zone \"example.com\" {\n" +
		"\ttype master;\n" +
		"\tfile \"/etc/bind/managed-zones/db.example.com\";\n" +
		"\tallow-transfer { 192.0.2.53; 198.51.100.53; };\n" +
		"\talso-notify { 192.0.2.53; };\n" +
		"};\n"
	assert.Equal(t, want, got)
}

func TestBuildStanza_PrimaryWithoutLists(t *testing.T) {
	got := BuildStanza("example.com", "/etc/bind/db.example.com", nil, nil, RolePrimary, "primary-servers")
	assert.NotContains(t, got, "allow-transfer")
	assert.NotContains(t, got, "also-notify")
}

func TestBuildStanza_Secondary(t *testing.T) {
	got := BuildStanza("mirror.example.net", "/var/cache/bind/db.mirror.example.net",
		[]string{"192.0.2.53"}, nil, RoleSecondary, "primary-servers")

	assert.Contains(t, got, "type slave;")
	assert.Contains(t, got, "masters { primary-servers; };")
	assert.NotContains(t, got, "allow-transfer", "transfer lists are never emitted for secondaries")
}

func TestBuildStanza_RoundTripsThroughParser(t *testing.T) {
	stanza := BuildStanza("example.com", "/etc/bind/db.example.com",
		[]string{"192.0.2.53"}, nil, RolePrimary, "primary-servers")

	parsed := ParseStanzas(stanza)
	require.Contains(t, parsed, "example.com")
	got := parsed["example.com"]
	assert.Equal(t, "/etc/bind/db.example.com", got.FilePath)
	assert.Equal(t, []string{"192.0.2.53"}, got.AllowTransfer)
	assert.Equal(t, stanza, got.Raw)
}
