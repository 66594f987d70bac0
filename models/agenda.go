package models

import "time"

type Agenda struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EventDate  time.Time `gorm:"type:date;not null" json:"event_date"`
	Item       string    `gorm:"not null" json:"item"`
	ProposedBy string    `gorm:"size:255" json:"proposed_by"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateAgendaRequest struct {
	EventDate  string `json:"event_date" binding:"required"` // YYYY-MM-DD
	Item       string `json:"item" binding:"required"`
	ProposedBy string `json:"proposed_by"`
}
