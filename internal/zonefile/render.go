package zonefile

import (
	"fmt"
	"sort"
	"strings"
)

// Rdata defaults used whenever a value omits its numeric fields.
const (
	defaultMXPreference = 10
	defaultSRVPriority  = 10
	defaultSRVWeight    = 5
	defaultSRVPort      = 443
)

// ownerLabel renders a recordset owner for a zone file: "@" at the zone
// apex, otherwise the zone-relative label.
func ownerLabel(zone, name string) string {
	zone = NormalizeFQDN(zone)
	if NormalizeFQDN(name) == zone {
		return "@"
	}
	label := strings.Replace(name, zone, "", 1)
	return strings.TrimSuffix(label, ".")
}

// sortedCopy returns recordsets ordered by (owner name, type).
func sortedCopy(recordsets []RecordSet) []RecordSet {
	out := append([]RecordSet(nil), recordsets...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Type < out[j].Type
	})
	return out
}

// renderRecordLines renders recordsets as tab-delimited zone file lines.
// NS recordsets are skipped when includeNS is false (the header owns NS
// during partial updates).
func renderRecordLines(zone string, recordsets []RecordSet, defaultTTL uint32, includeNS bool) []string {
	var lines []string
	for _, rs := range sortedCopy(recordsets) {
		rtype := strings.ToUpper(rs.Type)
		if rtype == TypeNS && !includeNS {
			continue
		}
		owner := ownerLabel(zone, rs.Name)
		ttl := rs.TTL
		if ttl == 0 {
			ttl = defaultTTL
		}
		for _, v := range rs.Values {
			lines = append(lines, renderValue(owner, ttl, rtype, v))
		}
	}
	return lines
}

func renderValue(owner string, ttl uint32, rtype string, v RecordValue) string {
	switch rtype {
	case TypeTXT:
		return fmt.Sprintf("%s\t%d\tIN\tTXT\t%s", owner, ttl, quoteTXT(v.Value))
	case TypeMX:
		pref := uint16(defaultMXPreference)
		if v.Priority != nil {
			pref = *v.Priority
		}
		return fmt.Sprintf("%s\t%d\tIN\tMX\t%d\t%s", owner, ttl, pref, NormalizeFQDN(v.Value))
	case TypeSRV:
		prio := uint16(defaultSRVPriority)
		weight := uint16(defaultSRVWeight)
		port := uint16(defaultSRVPort)
		if v.Priority != nil {
			prio = *v.Priority
		}
		if v.Weight != nil {
			weight = *v.Weight
		}
		if v.Port != nil {
			port = *v.Port
		}
		return fmt.Sprintf("%s\t%d\tIN\tSRV\t%d\t%d\t%d\t%s", owner, ttl, prio, weight, port, NormalizeFQDN(v.Value))
	case TypeCNAME, TypeNS, TypePTR:
		return fmt.Sprintf("%s\t%d\tIN\t%s\t%s", owner, ttl, rtype, NormalizeFQDN(v.Value))
	default:
		return fmt.Sprintf("%s\t%d\tIN\t%s\t%s", owner, ttl, rtype, v.Value)
	}
}

// quoteTXT wraps a TXT value in double quotes unless it already is.
func quoteTXT(s string) string {
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && len(s) >= 2 {
		return s
	}
	return `"` + s + `"`
}
