package database

import (
	"log"
	"time"

	"github.com/iternative/CTO-Lunches/config"
	"github.com/iternative/CTO-Lunches/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

const (
	connectAttempts = 10
	connectDelay    = 3 * time.Second
)

// Connect opens the Postgres connection, waiting for the database to come up
// (the db container usually starts alongside us), then migrates and seeds.
func Connect() {
	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		DB, err = gorm.Open(postgres.Open(config.AppConfig.DatabaseURL), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			break
		}
		log.Printf("⚠️  Database not ready (attempt %d/%d): %v", attempt, connectAttempts, err)
		time.Sleep(connectDelay)
	}
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Init(DB); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	log.Println("✅ Database connected and migrated")
}

// Init migrates the schema and seeds the singleton settings row. Split out
// from Connect so tests can run it against their own database.
func Init(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Settings{},
		&models.Participant{},
		&models.RSVP{},
		&models.Agenda{},
		&models.Message{},
	); err != nil {
		return err
	}
	return seedSettings(db)
}

func seedSettings(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Settings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&models.Settings{
		LocationName:    "TBD",
		LocationAddress: "TBD",
		MeetingTime:     "12:00 PM",
		OrganizerEmail:  "organizer@example.com",
	}).Error
}
