package zonefile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// serialRE finds a 10-digit serial token annotated with the writer's
// "; serial" trailing comment inside the SOA block.
var serialRE = regexp.MustCompile(`(\b\d{10}\b)\s*;\s*serial`)

// SerialPolicy derives the next SOA serial in YYYYMMDDNN form. The Now
// hook exists for tests; a nil Now means time.Now.
type SerialPolicy struct {
	Now func() time.Time
}

// Bump rewrites the serial token in text. A serial dated today (UTC)
// has its two-digit counter incremented; any other date resets to
// today's date with counter 01. Text without the token is returned
// unchanged. The counter caps at 99 to keep the serial 10 digits wide;
// a capped serial is left as-is.
func (p SerialPolicy) Bump(text string) string {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	today := now().UTC().Format("20060102")

	m := serialRE.FindStringSubmatch(text)
	if m == nil {
		return text
	}
	serial := m[1]

	var next string
	if strings.HasPrefix(serial, today) {
		nn, _ := strconv.Atoi(serial[8:])
		if nn >= 99 {
			return text
		}
		next = fmt.Sprintf("%s%02d", today, nn+1)
	} else {
		next = today + "01"
	}
	return strings.Replace(text, serial, next, 1)
}

// todaySerial returns the first serial of the current UTC day.
func (p SerialPolicy) todaySerial() uint32 {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return parseUint32(now().UTC().Format("20060102") + "01")
}
