package services

import (
	"strings"
	"testing"
	"time"

	"github.com/iternative/CTO-Lunches/models"

	ical "github.com/arran4/golang-ical"
)

var testSettings = models.Settings{
	LocationName:    "Cafe",
	LocationAddress: "123 Main",
	MeetingTime:     "12:00 PM",
	OrganizerEmail:  "organizer@example.com",
}

func TestParseMeetingTime(t *testing.T) {
	tests := []struct {
		input  string
		hour   int
		minute int
	}{
		{"12:00 PM", 12, 0},
		{"9:15 AM", 9, 15},
		{"12:00 AM", 0, 0},
		{"7:30 pm", 19, 30},
		{"1:05PM", 13, 5},
		{"14:30", 14, 30},
		{"noon", 12, 0}, // unparseable, falls back to noon
		{"", 12, 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			h, m := ParseMeetingTime(tt.input)
			if h != tt.hour || m != tt.minute {
				t.Errorf("ParseMeetingTime(%q) = %d:%02d, want %d:%02d", tt.input, h, m, tt.hour, tt.minute)
			}
		})
	}
}

func TestBuildICalEventTimes(t *testing.T) {
	doc := BuildICal(time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), testSettings, time.Now())

	for _, want := range []string{
		"DTSTART;TZID=America/New_York:20240313T120000\r\n",
		"DTEND;TZID=America/New_York:20240313T133000\r\n",
		"LOCATION:Cafe, 123 Main\r\n",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", strings.TrimRight(want, "\r\n"))
		}
	}
}

func TestBuildICalMinuteOverflow(t *testing.T) {
	s := testSettings
	s.MeetingTime = "9:45 AM"
	doc := BuildICal(time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), s, time.Now())

	// 9:45 + 90min = 11:15, the extra hour comes from the minute overflow.
	if !strings.Contains(doc, "DTEND;TZID=America/New_York:20240313T111500\r\n") {
		t.Errorf("DTEND not rolled over, document:\n%s", doc)
	}
}

func TestBuildICalDeterministicUID(t *testing.T) {
	d := time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)
	a := BuildICal(d, testSettings, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	b := BuildICal(d, testSettings, time.Date(2024, 3, 2, 11, 0, 0, 0, time.UTC))

	const uidLine = "UID:cto-lunch-20240313@cto-lunches\r\n"
	if !strings.Contains(a, uidLine) || !strings.Contains(b, uidLine) {
		t.Error("UID is not deterministic per date")
	}
	if !strings.Contains(a, "DTSTAMP:20240301T100000Z\r\n") {
		t.Error("DTSTAMP does not reflect generation time")
	}
}

func TestBuildICalTimezoneRules(t *testing.T) {
	doc := BuildICal(time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), testSettings, time.Now())

	// Fixed DST transitions: spring forward second Sunday of March, fall
	// back first Sunday of November.
	for _, want := range []string{
		"TZID:America/New_York",
		"RRULE:FREQ=YEARLY;BYMONTH=3;BYDAY=2SU",
		"RRULE:FREQ=YEARLY;BYMONTH=11;BYDAY=1SU",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestBuildICalParses(t *testing.T) {
	doc := BuildICal(time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), testSettings, time.Now())

	cal, err := ical.ParseCalendar(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("generated document does not parse: %v", err)
	}

	events := cal.Events()
	if len(events) != 1 {
		t.Fatalf("event count got = %d, want 1", len(events))
	}

	uid := events[0].GetProperty(ical.ComponentPropertyUniqueId)
	if uid == nil || uid.Value != "cto-lunch-20240313@cto-lunches" {
		t.Errorf("parsed UID got = %v, want cto-lunch-20240313@cto-lunches", uid)
	}
	summary := events[0].GetProperty(ical.ComponentPropertySummary)
	if summary == nil || summary.Value != "CTO Lunch" {
		t.Errorf("parsed SUMMARY got = %v, want CTO Lunch", summary)
	}
}
