package models

import "time"

// RSVP holds the current attendance status for one (participant, event date)
// pair. The pair is unique; later writes overwrite status, history is not
// kept. A missing row reads as status "maybe".
type RSVP struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	ParticipantID uint        `gorm:"not null;uniqueIndex:idx_rsvps_participant_date" json:"participant_id"`
	Participant   Participant `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE" json:"-"`
	EventDate     time.Time   `gorm:"type:date;not null;uniqueIndex:idx_rsvps_participant_date" json:"event_date"`
	Status        string      `gorm:"size:20;default:maybe" json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

type UpsertRSVPRequest struct {
	ParticipantID uint   `json:"participant_id" binding:"required"`
	EventDate     string `json:"event_date" binding:"required"` // YYYY-MM-DD
	Status        string `json:"status"`
}
