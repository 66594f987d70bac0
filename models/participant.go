package models

import "time"

type Participant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Email     string    `gorm:"size:255" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	InvitedBy string    `gorm:"size:255" json:"invited_by"`
	CreatedAt time.Time `json:"-"`
}

type CreateParticipantRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	InvitedBy string `json:"invited_by"`
}
