package zonefile

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/miekg/dns"

	"github.com/jroosing/bindman/internal/atomicfile"
	"github.com/jroosing/bindman/internal/lockfile"
)

// ErrNotFound reports a zone record file that was expected to exist.
var ErrNotFound = errors.New("zone file not found")

// ParseError reports an unparseable zone record file.
type ParseError struct {
	Zone string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse zone %s: %v", e.Zone, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Fixed SOA timing parameters for synthesized zone files. Minimum is
// the zone's default TTL.
const (
	soaRefresh = 3600
	soaRetry   = 600
	soaExpire  = 1209600
)

// Engine reads and writes managed zone record files. Writes hold the
// file's advisory lock for the whole operation and commit with an
// atomic rename; validation and reload are the caller's follow-up
// steps.
type Engine struct {
	// AutoBumpSerial applies the serial policy to every write.
	AutoBumpSerial bool
	Serial         SerialPolicy
}

// NewEngine returns an engine with the given serial-bump behavior.
func NewEngine(autoBumpSerial bool) *Engine {
	return &Engine{AutoBumpSerial: autoBumpSerial}
}

// ReadZone parses the record file at path into recordsets, using zone
// as the origin for relative-name expansion. The SOA record is skipped
// (it is managed separately); record types outside the supported set
// are ignored. Results are sorted by (owner name, type).
func (e *Engine) ReadZone(zone, path string) ([]RecordSet, error) {
	origin := NormalizeFQDN(zone)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	type key struct {
		name  string
		rtype string
	}
	sets := make(map[key]*RecordSet)
	var order []key

	zp := dns.NewZoneParser(f, origin, path)
	for rr, ok := zp.Next(); ok; rr, ok = zp.Next() {
		hdr := rr.Header()
		rtype := dns.TypeToString[hdr.Rrtype]
		if rtype == "SOA" || !SupportedType(rtype) {
			continue
		}

		value, valid := recordValue(rr)
		if !valid {
			continue
		}

		k := key{name: hdr.Name, rtype: rtype}
		rs, exists := sets[k]
		if !exists {
			rs = &RecordSet{Name: hdr.Name, Type: rtype, TTL: hdr.Ttl}
			sets[k] = rs
			order = append(order, k)
		}
		rs.Values = append(rs.Values, value)
	}
	if err := zp.Err(); err != nil {
		return nil, &ParseError{Zone: zone, Err: err}
	}

	out := make([]RecordSet, 0, len(order))
	for _, k := range order {
		out = append(out, *sets[k])
	}
	return sortedCopy(out), nil
}

// recordValue maps a parsed RR onto the manager's value model. MX and
// SRV carry their numeric fields separately with FQDN targets; every
// other type keeps the canonical presentation value.
func recordValue(rr dns.RR) (RecordValue, bool) {
	switch v := rr.(type) {
	case *dns.A:
		return RecordValue{Value: v.A.String()}, true
	case *dns.AAAA:
		return RecordValue{Value: v.AAAA.String()}, true
	case *dns.CNAME:
		return RecordValue{Value: v.Target}, true
	case *dns.NS:
		return RecordValue{Value: v.Ns}, true
	case *dns.PTR:
		return RecordValue{Value: v.Ptr}, true
	case *dns.MX:
		return RecordValue{Value: NormalizeFQDN(v.Mx), Priority: uint16Ptr(v.Preference)}, true
	case *dns.SRV:
		return RecordValue{
			Value:    NormalizeFQDN(v.Target),
			Priority: uint16Ptr(v.Priority),
			Weight:   uint16Ptr(v.Weight),
			Port:     uint16Ptr(v.Port),
		}, true
	case *dns.TXT:
		quoted := make([]string, len(v.Txt))
		for i, chunk := range v.Txt {
			quoted[i] = `"` + chunk + `"`
		}
		return RecordValue{Value: strings.Join(quoted, " ")}, true
	case *dns.CAA:
		return RecordValue{Value: fmt.Sprintf(`%d %s "%s"`, v.Flag, v.Tag, v.Value)}, true
	default:
		return RecordValue{}, false
	}
}

// WriteFull synthesizes a complete record file: $TTL, SOA, NS records,
// glue A records for forward zones, then the supplied recordsets. A
// zero serial means "first serial of today" (YYYYMMDD01).
func (e *Engine) WriteFull(zone, path string, recordsets []RecordSet, defaultTTL uint32, primaryNS string, nameservers []NameServer, serial uint32) error {
	zone = NormalizeFQDN(zone)
	if serial == 0 {
		serial = e.Serial.todaySerial()
	}
	reverse := IsReverseZone(zone)

	var lines []string
	lines = append(lines, fmt.Sprintf("$TTL %d", defaultTTL))

	if reverse {
		// Reverse zones carry FQDN nameservers; the admin domain is the
		// base two labels of the first nameserver's hostname.
		mname := NormalizeFQDN(primaryNS)
		adminDomain := zone
		if len(nameservers) > 0 {
			mname = NormalizeFQDN(nameservers[0].Hostname)
			adminDomain = reverseAdminDomain(nameservers[0].Hostname, zone)
		}
		lines = append(lines, fmt.Sprintf("@ IN SOA %s hostmaster.%s (", mname, adminDomain))
	} else {
		lines = append(lines, fmt.Sprintf("@ IN SOA %s.%s hostmaster.%s (", primaryNS, zone, zone))
	}
	lines = append(lines,
		fmt.Sprintf("    %d ; serial", serial),
		fmt.Sprintf("    %d ; refresh", soaRefresh),
		fmt.Sprintf("    %d ; retry", soaRetry),
		fmt.Sprintf("    %d ; expire", soaExpire),
		fmt.Sprintf("    %d ; minimum", defaultTTL),
		")",
	)

	for _, ns := range nameservers {
		if reverse {
			lines = append(lines, fmt.Sprintf("@ IN NS %s", NormalizeFQDN(ns.Hostname)))
		} else {
			lines = append(lines, fmt.Sprintf("@ IN NS %s.%s", ns.Hostname, zone))
		}
	}
	lines = append(lines, "")

	// Glue records, forward zones only.
	if !reverse {
		for _, ns := range nameservers {
			lines = append(lines, fmt.Sprintf("%s IN A %s", ns.Hostname, ns.IPv4))
		}
		lines = append(lines, "")
	}

	lines = append(lines, renderRecordLines(zone, recordsets, defaultTTL, true)...)

	text := strings.TrimRight(strings.Join(lines, "\n"), "\n ") + "\n"
	if e.AutoBumpSerial {
		text = e.Serial.Bump(text)
	}

	lock, err := lockfile.LockPath(path)
	if err != nil {
		return err
	}
	defer lock.Unlock()
	return atomicfile.Write(path, []byte(text), 0o644)
}

// reverseAdminDomain reduces an NS hostname to its base two labels
// ("ns1.example.com" -> "example.com."); hostnames with fewer labels
// fall back to the zone name.
func reverseAdminDomain(hostname, zone string) string {
	parts := strings.Split(strings.TrimSuffix(hostname, "."), ".")
	if len(parts) >= 2 {
		return strings.Join(parts[len(parts)-2:], ".") + "."
	}
	return zone
}

// WriteRecordsUpdate replaces a zone's data records while preserving
// its header verbatim: the $TTL line, the SOA block (through the first
// line containing a closing parenthesis), and the NS lines immediately
// following it. Supplied NS recordsets are skipped — NS is header-owned
// in this mode. The file must already exist.
func (e *Engine) WriteRecordsUpdate(zone, path string, recordsets []RecordSet) error {
	zone = NormalizeFQDN(zone)

	lock, err := lockfile.LockPath(path)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return err
	}

	header, defaultTTL := captureHeader(string(raw))

	text := header
	if !strings.HasSuffix(text, "\n\n") {
		text += "\n"
	}
	for _, line := range renderRecordLines(zone, recordsets, defaultTTL, false) {
		text += line + "\n"
	}

	if e.AutoBumpSerial {
		text = e.Serial.Bump(text)
	}
	return atomicfile.Write(path, []byte(text), 0o644)
}

// captureHeader extracts the preserved header region of an existing
// zone file and the effective default TTL.
func captureHeader(text string) (string, uint32) {
	var header strings.Builder
	defaultTTL := uint32(3600)
	soaFound, inSOA := false, false

	for _, line := range strings.SplitAfter(text, "\n") {
		stripped := strings.TrimSpace(line)

		if strings.HasPrefix(stripped, "$TTL") {
			if fields := strings.Fields(stripped); len(fields) >= 2 {
				if v, err := strconv.ParseUint(fields[1], 10, 32); err == nil {
					defaultTTL = uint32(v)
				}
			}
			header.WriteString(line)
			continue
		}

		if !soaFound && !inSOA && strings.Contains(line, "SOA") {
			inSOA = true
			header.WriteString(line)
			continue
		}

		if inSOA {
			header.WriteString(line)
			if strings.Contains(line, ")") {
				inSOA = false
				soaFound = true
			}
			continue
		}

		// Past the SOA block: keep NS lines, stop at the first data
		// record. Blank and comment lines neither stop nor extend the
		// header.
		if soaFound && stripped != "" && !strings.HasPrefix(stripped, ";") {
			if isNSLine(line) {
				header.WriteString(line)
			} else {
				break
			}
		}
	}
	return header.String(), defaultTTL
}

func isNSLine(line string) bool {
	return strings.Contains(line, "\tNS\t") ||
		strings.Contains(line, "\tIN\tNS\t") ||
		strings.Contains(line, " NS ") ||
		strings.Contains(line, " IN NS ")
}
