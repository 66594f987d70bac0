package models

import "time"

// Message is a contact-form submission. Append-only.
type Message struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SenderName  string    `gorm:"size:255" json:"sender_name"`
	SenderEmail string    `gorm:"size:255" json:"sender_email"`
	Message     string    `gorm:"not null" json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateMessageRequest struct {
	SenderName  string `json:"sender_name"`
	SenderEmail string `json:"sender_email"`
	Message     string `json:"message" binding:"required"`
}
