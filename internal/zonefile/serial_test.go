package zonefile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock(t *testing.T) func() time.Time {
	t.Helper()
	return func() time.Time {
		return time.Date(2025, 8, 25, 12, 0, 0, 0, time.UTC)
	}
}

func TestBump_SameDayIncrements(t *testing.T) {
	p := SerialPolicy{Now: fixedClock(t)}

	text := "    2025082503 ; serial\n"
	assert.Equal(t, "    2025082504 ; serial\n", p.Bump(text))
}

func TestBump_OtherDayResets(t *testing.T) {
	p := SerialPolicy{Now: fixedClock(t)}

	text := "    2024010112 ; serial\n"
	assert.Equal(t, "    2025082501 ; serial\n", p.Bump(text))
}

func TestBump_NoSerialTokenUnchanged(t *testing.T) {
	p := SerialPolicy{Now: fixedClock(t)}

	text := "$TTL 300\n@ IN NS ns1.example.com.\n"
	assert.Equal(t, text, p.Bump(text))
}

func TestBump_CounterCapsAt99(t *testing.T) {
	p := SerialPolicy{Now: fixedClock(t)}

	text := "    2025082599 ; serial\n"
	assert.Equal(t, text, p.Bump(text), "capped serial must stay 10 digits wide")
}

func TestBump_OnlyAnnotatedTokenMatches(t *testing.T) {
	p := SerialPolicy{Now: fixedClock(t)}

	// A 10-digit number without the "; serial" annotation is data, not
	// the serial.
	text := "big\t300\tIN\tTXT\t\"2024010101\"\n"
	assert.Equal(t, text, p.Bump(text))
}

func TestBump_ReplacesFirstOccurrenceOnly(t *testing.T) {
	p := SerialPolicy{Now: fixedClock(t)}

	text := "    2025082501 ; serial\nnote\t300\tIN\tTXT\t\"2025082501\"\n"
	got := p.Bump(text)
	assert.Contains(t, got, "2025082502 ; serial")
	assert.Contains(t, got, "\"2025082501\"")
}

func TestTodaySerial(t *testing.T) {
	p := SerialPolicy{Now: fixedClock(t)}
	assert.Equal(t, uint32(2025082501), p.todaySerial())
}
