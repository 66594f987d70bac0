package models

// Settings is the singleton meeting configuration. Exactly one row exists
// after init; PUT /api/settings mutates it in place and it is never deleted.
type Settings struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	LocationName    string `gorm:"size:255;default:TBD" json:"location_name"`
	LocationAddress string `gorm:"size:255;default:TBD" json:"location_address"`
	MeetingTime     string `gorm:"size:100;default:12:00 PM" json:"meeting_time"` // free text, e.g. "12:00 PM"
	OrganizerEmail  string `gorm:"size:255" json:"organizer_email"`
}

type UpdateSettingsRequest struct {
	LocationName    string `json:"location_name"`
	LocationAddress string `json:"location_address"`
	MeetingTime     string `json:"meeting_time"`
	OrganizerEmail  string `json:"organizer_email"`
}
