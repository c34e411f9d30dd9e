// Package zonereg manages the zone-stanza include document: scanning
// registration stanzas out of it, rendering canonical replacements, and
// performing locked read-modify-write edits.
package zonereg

import (
	"regexp"
	"strings"
)

// Role is a zone's replication role.
type Role string

const (
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
)

// Stanza is one managed zone registration block.
type Stanza struct {
	Name          string
	FilePath      string
	Role          Role
	AllowTransfer []string
	AlsoNotify    []string
	Raw           string

	// Byte range of Raw within the scanned document. Upsert and Delete
	// splice on these offsets so substitution hits exactly the
	// occurrence the parser matched.
	begin, end int
}

var (
	zoneTokenRE     = regexp.MustCompile(`zone\s+"([^"]+)"\s*\{`)
	fileRE          = regexp.MustCompile(`file\s+"([^"]+)"\s*;`)
	typeRE          = regexp.MustCompile(`type\s+([a-zA-Z-]+)\s*;`)
	allowTransferRE = regexp.MustCompile(`allow-transfer\s*\{([^}]*)\}`)
	alsoNotifyRE    = regexp.MustCompile(`also-notify\s*\{([^}]*)\}`)
)

// ParseStanzas scans text for zone registration stanzas. Each
// `zone "<name>" {` token is closed by brace counting, so nested blocks
// such as allow-transfer lists are handled; a stanza whose braces never
// balance is dropped and the scan resumes at the next zone token. A
// trailing `;` (and its newline) belongs to the stanza. When a name
// repeats, the later occurrence wins.
func ParseStanzas(text string) map[string]Stanza {
	out := make(map[string]Stanza)
	pos := 0
	for pos < len(text) {
		loc := zoneTokenRE.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		name := strings.TrimSpace(text[pos+loc[2] : pos+loc[3]])
		braceOpen := pos + loc[1] - 1

		end, balanced := scanBalanced(text, braceOpen)
		if !balanced {
			// Unparseable stanza: discard it and resume after the token.
			pos += loc[1]
			continue
		}
		if end < len(text) && text[end] == ';' {
			end++
		}
		if end < len(text) && text[end] == '\n' {
			end++
		}

		raw := text[start:end]
		pos = end

		fm := fileRE.FindStringSubmatch(raw)
		if fm == nil {
			// No record-file token: not a stanza this manager owns.
			continue
		}

		st := Stanza{
			Name:     name,
			FilePath: fm[1],
			Role:     RolePrimary,
			Raw:      raw,
			begin:    start,
			end:      end,
		}
		if tm := typeRE.FindStringSubmatch(raw); tm != nil {
			switch strings.ToLower(tm[1]) {
			case "slave", "secondary":
				st.Role = RoleSecondary
			}
		}
		st.AllowTransfer = parseAddressList(allowTransferRE, raw)
		st.AlsoNotify = parseAddressList(alsoNotifyRE, raw)
		out[name] = st
	}
	return out
}

// scanBalanced walks forward from the opening brace until depth returns
// to zero, returning the index just past the closing brace.
func scanBalanced(text string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

func parseAddressList(re *regexp.Regexp, raw string) []string {
	m := re.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	var out []string
	for _, tok := range strings.Split(m[1], ";") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
