package database

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sinansouth/EnglishNet/internal/config"
	"github.com/sinansouth/EnglishNet/internal/models"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	var logLevel logger.LogLevel
	if cfg.Server.Env == "development" {
		logLevel = logger.Info
	} else {
		logLevel = logger.Silent
	}

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "sqlite":
		log.Printf("Opening sqlite database at %s", cfg.Database.Path)
		dialector = sqlite.Open(cfg.Database.DSN)
	case "mysql":
		log.Printf("Connecting to mysql with DSN: %s", maskPassword(cfg.Database.DSN))
		dialector = mysql.Open(cfg.Database.DSN)
	case "postgres":
		log.Printf("Connecting to postgres with DSN: %s", maskPassword(cfg.Database.DSN))
		dialector = postgres.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection successful")
	return db, nil
}

func maskPassword(dsn string) string {
	// Simple password masking for logging
	if len(dsn) > 20 {
		return dsn[:20] + "...***..."
	}
	return "***"
}

func Migrate(db *gorm.DB) error {
	log.Println("Running migrations...")

	err := db.AutoMigrate(
		&models.Classroom{},
		&models.Student{},
		&models.ExamDefinition{},
		&models.ExamResult{},
	)
	if err != nil {
		return err
	}

	// Add performance indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_students_classroom ON students(classroom_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_results_student ON exam_results(student_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_results_exam ON exam_results(exam_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_results_date ON exam_results(date)")

	return nil
}
