package services

import (
	"time"

	"github.com/iternative/CTO-Lunches/config"
	"github.com/iternative/CTO-Lunches/database"
	"github.com/iternative/CTO-Lunches/models"
)

const dateKeyFormat = "2006-01-02"

// QuarterlyRSVPEntry is one participant's RSVP within a date group.
type QuarterlyRSVPEntry struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	InvitedBy string `json:"invited_by"`
	Status    string `json:"status"`
}

// QuarterlyAgendaEntry is one agenda item within a date group.
type QuarterlyAgendaEntry struct {
	Item       string `json:"item"`
	ProposedBy string `json:"proposed_by"`
}

// QuarterlyPayload is what gets POSTed to the quarterly webhook.
type QuarterlyPayload struct {
	Type               string                            `json:"type"`
	WindowStart        string                            `json:"window_start"`
	WindowEnd          string                            `json:"window_end"`
	Participants       []models.Participant              `json:"participants"`
	RSVPsByDate        map[string][]QuarterlyRSVPEntry   `json:"rsvps_by_date"`
	AgendasByDate      map[string][]QuarterlyAgendaEntry `json:"agendas_by_date"`
	GeneratedAt        string                            `json:"generated_at"`
	GeneratedAtEastern string                            `json:"generated_at_eastern"`
}

// QuarterWindow computes the rolling quarter around now: the first day of
// the previous calendar month through the last day of the month after next.
// time.Date normalizes month over/underflow, so January and December work.
func QuarterWindow(now time.Time) (start, end time.Time) {
	year, month, _ := now.Date()
	start = time.Date(year, month-1, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, month+2, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return start, end
}

// BuildQuarterlyPayload groups the window's RSVP and agenda rows by ISO date
// and assembles the webhook payload. Row order within each date group is the
// order of the underlying reads (date, then participant name).
func BuildQuarterlyPayload(now time.Time, participants []models.Participant, rsvps []database.QuarterRSVPRow, agendas []models.Agenda) QuarterlyPayload {
	start, end := QuarterWindow(now)

	rsvpsByDate := map[string][]QuarterlyRSVPEntry{}
	for _, r := range rsvps {
		key := r.EventDate.Format(dateKeyFormat)
		rsvpsByDate[key] = append(rsvpsByDate[key], QuarterlyRSVPEntry{
			Name:      r.Name,
			Email:     r.Email,
			Phone:     r.Phone,
			InvitedBy: r.InvitedBy,
			Status:    r.Status,
		})
	}

	agendasByDate := map[string][]QuarterlyAgendaEntry{}
	for _, a := range agendas {
		proposedBy := a.ProposedBy
		if proposedBy == "" {
			proposedBy = "Anonymous"
		}
		key := a.EventDate.Format(dateKeyFormat)
		agendasByDate[key] = append(agendasByDate[key], QuarterlyAgendaEntry{
			Item:       a.Item,
			ProposedBy: proposedBy,
		})
	}

	return QuarterlyPayload{
		Type:               "quarterly_rsvp_report",
		WindowStart:        start.Format(dateKeyFormat),
		WindowEnd:          end.Format(dateKeyFormat),
		Participants:       participants,
		RSVPsByDate:        rsvpsByDate,
		AgendasByDate:      agendasByDate,
		GeneratedAt:        now.UTC().Format(time.RFC3339),
		GeneratedAtEastern: easternTimestamp(now),
	}
}

// SendQuarterlyReport fetches the rolling quarter, builds the payload and
// hands it to the webhook dispatcher. The bool is the delivery outcome; err
// is only set for store failures.
func SendQuarterlyReport(now time.Time) (bool, error) {
	start, end := QuarterWindow(now)

	participants, err := database.AllParticipants(database.DB)
	if err != nil {
		return false, err
	}
	rsvps, err := database.RSVPsInWindow(database.DB, start, end)
	if err != nil {
		return false, err
	}
	agendas, err := database.AgendasInWindow(database.DB, start, end)
	if err != nil {
		return false, err
	}

	payload := BuildQuarterlyPayload(now, participants, rsvps, agendas)
	return PostWebhook(config.AppConfig.QuarterlyWebhookURL, payload), nil
}

// easternTimestamp formats now in US Eastern time for human readers of the
// report. Falls back to UTC if the tz database is unavailable.
func easternTimestamp(now time.Time) string {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return now.UTC().Format("Jan 2, 2006 3:04 PM") + " UTC"
	}
	return now.In(loc).Format("Jan 2, 2006 3:04 PM MST")
}
