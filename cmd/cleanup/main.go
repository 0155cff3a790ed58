package main

import (
	"log"

	"gorm.io/gorm"

	"github.com/sinansouth/EnglishNet/internal/config"
	"github.com/sinansouth/EnglishNet/internal/database"
)

// One-shot maintenance pass. Result rows are not cascade-deleted by the
// schema, so an interrupted delete can leave rows pointing at students or
// exams that no longer exist.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	exec(db, "orphaned student results",
		"DELETE FROM exam_results WHERE student_id NOT IN (SELECT id FROM students WHERE deleted_at IS NULL)")
	exec(db, "orphaned exam results",
		"DELETE FROM exam_results WHERE exam_id IS NOT NULL AND exam_id NOT IN (SELECT id FROM exam_definitions WHERE deleted_at IS NULL)")

	// Hard-purge soft-deleted rows
	for _, table := range []string{"exam_results", "students", "exam_definitions", "classrooms"} {
		exec(db, "soft-deleted "+table, "DELETE FROM "+table+" WHERE deleted_at IS NOT NULL")
	}

	log.Println("Database cleanup completed")
}

func exec(db *gorm.DB, what, stmt string) {
	res := db.Exec(stmt)
	if res.Error != nil {
		log.Printf("Error removing %s: %v", what, res.Error)
		return
	}
	log.Printf("Removed %d %s rows", res.RowsAffected, what)
}
