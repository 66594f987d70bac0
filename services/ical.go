package services

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/iternative/CTO-Lunches/models"
)

// The lunch is anchored to US Eastern time. The VTIMEZONE block below embeds
// the DST transitions as recurrence rules: spring forward on the second
// Sunday of March, fall back on the first Sunday of November.
const eventDurationMinutes = 90

var meetingTimeRe = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)?`)

// ParseMeetingTime parses the free-text meeting time ("H:MM AM/PM",
// case-insensitive). Unparseable text falls back to noon; that matches the
// stored default and keeps exports working on bad data, at the cost of
// masking entry errors (logged so operators can spot them).
func ParseMeetingTime(s string) (hour, minute int) {
	m := meetingTimeRe.FindStringSubmatch(s)
	if m == nil {
		log.Printf("⚠️  Unparseable meeting_time %q, defaulting to 12:00", s)
		return 12, 0
	}

	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])

	switch strings.ToUpper(m[3]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	}
	return hour, minute
}

// BuildICal renders a single-event iCalendar document for the given date and
// settings. The UID is derived from the date so repeated exports are
// idempotent; DTSTAMP carries now and varies per export.
func BuildICal(date time.Time, settings models.Settings, now time.Time) string {
	hour, minute := ParseMeetingTime(settings.MeetingTime)

	endHour := hour + eventDurationMinutes/60
	endMinute := minute + eventDurationMinutes%60
	if endMinute >= 60 {
		endMinute -= 60
		endHour++
	}

	day := date.Format("20060102")
	uid := fmt.Sprintf("cto-lunch-%s@cto-lunches", day)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//CTO Lunches//RSVP//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VTIMEZONE",
		"TZID:America/New_York",
		"BEGIN:DAYLIGHT",
		"TZOFFSETFROM:-0500",
		"TZOFFSETTO:-0400",
		"TZNAME:EDT",
		"DTSTART:19700308T020000",
		"RRULE:FREQ=YEARLY;BYMONTH=3;BYDAY=2SU",
		"END:DAYLIGHT",
		"BEGIN:STANDARD",
		"TZOFFSETFROM:-0400",
		"TZOFFSETTO:-0500",
		"TZNAME:EST",
		"DTSTART:19701101T020000",
		"RRULE:FREQ=YEARLY;BYMONTH=11;BYDAY=1SU",
		"END:STANDARD",
		"END:VTIMEZONE",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + now.UTC().Format("20060102T150405Z"),
		fmt.Sprintf("DTSTART;TZID=America/New_York:%sT%02d%02d00", day, hour, minute),
		fmt.Sprintf("DTEND;TZID=America/New_York:%sT%02d%02d00", day, endHour, endMinute),
		"SUMMARY:CTO Lunch",
		fmt.Sprintf("DESCRIPTION:Monthly CTO lunch at %s", settings.LocationName),
		fmt.Sprintf("LOCATION:%s, %s", settings.LocationName, settings.LocationAddress),
		fmt.Sprintf("ORGANIZER;CN=CTO Lunch Organizer:mailto:%s", settings.OrganizerEmail),
		"STATUS:CONFIRMED",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}
