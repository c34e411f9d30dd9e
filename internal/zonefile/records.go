// Package zonefile reads and writes BIND master files for managed zones.
//
// The record file on disk is the durable store; recordsets are
// reconstructed by parsing on every read and never cached in memory.
package zonefile

import "strings"

// Record types the manager edits. Anything else in a zone file is
// ignored on read and rejected on write.
const (
	TypeA     = "A"
	TypeAAAA  = "AAAA"
	TypeCNAME = "CNAME"
	TypeMX    = "MX"
	TypeTXT   = "TXT"
	TypeSRV   = "SRV"
	TypeNS    = "NS"
	TypePTR   = "PTR"
	TypeCAA   = "CAA"
)

var supportedTypes = map[string]bool{
	TypeA: true, TypeAAAA: true, TypeCNAME: true, TypeMX: true,
	TypeTXT: true, TypeSRV: true, TypeNS: true, TypePTR: true, TypeCAA: true,
}

// SupportedType reports whether t is a record type the manager handles.
func SupportedType(t string) bool {
	return supportedTypes[strings.ToUpper(t)]
}

// RecordValue is one rdata value within a recordset. Priority, Weight
// and Port apply per record type: MX uses Priority as its preference,
// SRV uses all three. For every other type only Value is meaningful.
type RecordValue struct {
	Value    string  `json:"value"`
	Priority *uint16 `json:"priority,omitempty"`
	Weight   *uint16 `json:"weight,omitempty"`
	Port     *uint16 `json:"port,omitempty"`
}

// RecordSet groups the values of one (owner name, type) pair.
// A zero TTL means the zone default applies.
type RecordSet struct {
	Name    string        `json:"name"` // canonical FQDN, trailing dot
	Type    string        `json:"type"`
	TTL     uint32        `json:"ttl,omitempty"`
	Values  []RecordValue `json:"values"`
	Comment string        `json:"comment,omitempty"`
}

// NameServer pairs an NS hostname with the IPv4 glue address written
// into freshly created forward zones.
type NameServer struct {
	Hostname string `json:"hostname"`
	IPv4     string `json:"ipv4"`
}

// NormalizeFQDN returns s with a trailing dot, leaving empty input
// untouched.
func NormalizeFQDN(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}

// IsReverseZone reports whether name is a reverse-mapping zone.
func IsReverseZone(name string) bool {
	return strings.Contains(name, ".in-addr.arpa") || strings.Contains(name, ".ip6.arpa")
}

func uint16Ptr(v uint16) *uint16 { return &v }
