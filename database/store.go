package database

import (
	"strings"
	"time"

	"github.com/iternative/CTO-Lunches/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RSVPStatusRow is one participant annotated with their status for a date.
type RSVPStatusRow struct {
	ParticipantID uint   `json:"participant_id"`
	Name          string `json:"name"`
	Status        string `json:"status"`
}

// QuarterRSVPRow is an RSVP joined with its participant, for the quarterly
// report.
type QuarterRSVPRow struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	InvitedBy string    `json:"invited_by"`
	Status    string    `json:"status"`
	EventDate time.Time `json:"-"`
}

// UpsertRSVP ensures exactly one RSVP row exists for (participantID,
// eventDate) with the given status. On conflict only status is updated, so
// the original created_at survives. An empty status becomes "maybe" at
// creation; any other text is stored verbatim.
func UpsertRSVP(db *gorm.DB, participantID uint, eventDate time.Time, status string) (*models.RSVP, error) {
	if status == "" {
		status = "maybe"
	}

	rsvp := models.RSVP{
		ParticipantID: participantID,
		EventDate:     eventDate,
		Status:        status,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "participant_id"}, {Name: "event_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"status": status}),
	}).Create(&rsvp).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the conflict path also returns the stored row.
	var out models.RSVP
	err = db.Where("participant_id = ? AND event_date = ?", participantID, eventDate).First(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RSVPsForDate lists every participant exactly once with their status for the
// date, defaulting to "maybe" when no RSVP row exists. Ordered by name.
func RSVPsForDate(db *gorm.DB, date time.Time) ([]RSVPStatusRow, error) {
	rows := []RSVPStatusRow{}
	err := db.Table("participants").
		Select("participants.id AS participant_id, participants.name AS name, COALESCE(rsvps.status, 'maybe') AS status").
		Joins("LEFT JOIN rsvps ON rsvps.participant_id = participants.id AND rsvps.event_date = ?", date).
		Order("participants.name").
		Scan(&rows).Error
	return rows, err
}

// AllParticipants lists participants ordered by name.
func AllParticipants(db *gorm.DB) ([]models.Participant, error) {
	participants := []models.Participant{}
	err := db.Order("name").Find(&participants).Error
	return participants, err
}

// DeleteParticipant removes the participant; the store cascades the delete to
// their RSVP rows. Returns the number of participant rows removed.
func DeleteParticipant(db *gorm.DB, id uint) (int64, error) {
	res := db.Delete(&models.Participant{}, id)
	return res.RowsAffected, res.Error
}

// DeleteAgenda removes one agenda item. Returns the number of rows removed.
func DeleteAgenda(db *gorm.DB, id uint) (int64, error) {
	res := db.Delete(&models.Agenda{}, id)
	return res.RowsAffected, res.Error
}

// AgendasForDate lists agenda items for a date in creation order.
func AgendasForDate(db *gorm.DB, date time.Time) ([]models.Agenda, error) {
	agendas := []models.Agenda{}
	err := db.Where("event_date = ?", date).Order("created_at").Find(&agendas).Error
	return agendas, err
}

// RSVPsInWindow returns RSVP rows joined with participants for event dates in
// [start, end], ordered by date then participant name.
func RSVPsInWindow(db *gorm.DB, start, end time.Time) ([]QuarterRSVPRow, error) {
	rows := []QuarterRSVPRow{}
	err := db.Table("rsvps").
		Select("participants.name, participants.email, participants.phone, participants.invited_by, rsvps.status, rsvps.event_date").
		Joins("JOIN participants ON participants.id = rsvps.participant_id").
		Where("rsvps.event_date BETWEEN ? AND ?", start, end).
		Order("rsvps.event_date, participants.name").
		Scan(&rows).Error
	return rows, err
}

// AgendasInWindow returns agenda rows with event dates in [start, end].
func AgendasInWindow(db *gorm.DB, start, end time.Time) ([]models.Agenda, error) {
	agendas := []models.Agenda{}
	err := db.Where("event_date BETWEEN ? AND ?", start, end).
		Order("event_date, created_at").
		Find(&agendas).Error
	return agendas, err
}

// IsForeignKeyViolation reports whether err is a referential-integrity
// failure (e.g. an RSVP for a participant that does not exist). Matched on
// message text so it covers both Postgres and the sqlite used in tests.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key")
}
