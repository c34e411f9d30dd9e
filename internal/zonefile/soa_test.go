package zonefile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleZoneText = `$TTL 300
@ IN SOA ns1.example.com. hostmaster.example.com. (
    2025082501 ; serial
    3600 ; refresh
    600 ; retry
    1209600 ; expire
    300 ; minimum
)
@ IN NS ns1.example.com.

ns1 IN A 192.0.2.1

www	300	IN	A	192.0.2.10
`

func TestParseSOA(t *testing.T) {
	soa, ok := ParseSOA(sampleZoneText)
	require.True(t, ok)

	assert.Equal(t, "ns1.example.com.", soa.PrimaryNS)
	assert.Equal(t, "hostmaster.example.com.", soa.AdminEmail)
	assert.Equal(t, uint32(2025082501), soa.Serial)
	assert.Equal(t, uint32(3600), soa.Refresh)
	assert.Equal(t, uint32(600), soa.Retry)
	assert.Equal(t, uint32(1209600), soa.Expire)
	assert.Equal(t, uint32(300), soa.Minimum)
}

func TestParseSOA_ForeignLayoutNotMatched(t *testing.T) {
	// Single-line SOA as written by hand or by named itself.
	text := "@ IN SOA ns1.example.com. hostmaster.example.com. 2025082501 3600 600 1209600 300\n"
	_, ok := ParseSOA(text)
	assert.False(t, ok)
}

func TestParseSOA_EmptyText(t *testing.T) {
	_, ok := ParseSOA("")
	assert.False(t, ok)
}

func TestParseDefaultTTL(t *testing.T) {
	assert.Equal(t, uint32(300), ParseDefaultTTL(sampleZoneText))
	assert.Equal(t, uint32(86400), ParseDefaultTTL("$TTL 86400\n"))
}

func TestParseDefaultTTL_MissingDirective(t *testing.T) {
	assert.Equal(t, uint32(300), ParseDefaultTTL("@ IN NS ns1.example.com.\n"))
}
