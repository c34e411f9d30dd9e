package zonefile

import (
	"regexp"
	"strconv"
)

// SOA carries the start-of-authority fields of a primary zone.
type SOA struct {
	PrimaryNS  string `json:"primary_ns"`
	AdminEmail string `json:"admin_email"`
	Serial     uint32 `json:"serial"`
	Refresh    uint32 `json:"refresh"`
	Retry      uint32 `json:"retry"`
	Expire     uint32 `json:"expire"`
	Minimum    uint32 `json:"minimum"`
}

// soaRE matches the exact layout this engine writes: the SOA opener on
// one line, then one numeric field per line, each followed by a ;-led
// comment. This layout is a contract between writer and reader;
// hand-edited files in another layout report no SOA.
var soaRE = regexp.MustCompile(
	`@\s+IN\s+SOA\s+(\S+)\s+(\S+)\s+\(\s*` +
		`(\d+)\s*;[^\n]*\n\s*` +
		`(\d+)\s*;[^\n]*\n\s*` +
		`(\d+)\s*;[^\n]*\n\s*` +
		`(\d+)\s*;[^\n]*\n\s*` +
		`(\d+)\s*;[^\n]*\n\s*\)`)

// ParseSOA extracts the SOA record from zone file text. ok is false
// when the text does not match the managed layout.
func ParseSOA(text string) (soa SOA, ok bool) {
	m := soaRE.FindStringSubmatch(text)
	if m == nil {
		return SOA{}, false
	}
	soa.PrimaryNS = m[1]
	soa.AdminEmail = m[2]
	soa.Serial = parseUint32(m[3])
	soa.Refresh = parseUint32(m[4])
	soa.Retry = parseUint32(m[5])
	soa.Expire = parseUint32(m[6])
	soa.Minimum = parseUint32(m[7])
	return soa, true
}

var ttlDirectiveRE = regexp.MustCompile(`\$TTL\s+(\d+)`)

// ParseDefaultTTL returns the first $TTL directive's value, or 300 when
// the directive is absent.
func ParseDefaultTTL(text string) uint32 {
	m := ttlDirectiveRE.FindStringSubmatch(text)
	if m == nil {
		return 300
	}
	return parseUint32(m[1])
}

func parseUint32(s string) uint32 {
	v, _ := strconv.ParseUint(s, 10, 32)
	return uint32(v)
}
