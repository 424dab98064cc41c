package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// activeSlotIndex is the storage-level guarantee against double booking:
// at most one non-cancelled appointment per doctor, date and time.
const activeSlotIndex = `
	CREATE UNIQUE INDEX IF NOT EXISTS ux_appointments_active_slot
	ON appointments (doctor_id, appointment_date, appointment_time)
	WHERE status <> 'cancelled'
`

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Doctor{},
		&models.ScheduleWindow{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err := db.Exec(activeSlotIndex).Error; err != nil {
		return fmt.Errorf("create active slot index: %w", err)
	}
	return nil
}

// SeedDoctors inserts doctors that are not present yet. Existing rows and
// their schedules are left alone.
func SeedDoctors(db *gorm.DB, doctors []models.Doctor) (int, error) {
	inserted := 0
	for i := range doctors {
		d := doctors[i]

		var count int64
		if err := db.Model(&models.Doctor{}).Where("id = ?", d.ID).Count(&count).Error; err != nil {
			return inserted, err
		}
		if count > 0 {
			continue
		}

		if err := db.Create(&d).Error; err != nil {
			return inserted, fmt.Errorf("seed doctor %d: %w", d.ID, err)
		}
		inserted++
	}
	return inserted, nil
}
