package seeders

import (
	"log"

	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

// NewMainSeeder creates a new main seeder
func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders in the correct order
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	glossarySeeder := NewGlossarySeeder(s.db)
	if err := glossarySeeder.SeedGlossary(); err != nil {
		log.Printf("Glossary seeding failed: %v", err)
		return err
	}

	// Lessons reference glossary terms in their vocabulary blocks.
	lessonSeeder := NewLessonSeeder(s.db)
	if err := lessonSeeder.SeedLessons(); err != nil {
		log.Printf("Lesson seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedGlossaryOnly seeds only the glossary
func (s *MainSeeder) SeedGlossaryOnly() error {
	glossarySeeder := NewGlossarySeeder(s.db)
	return glossarySeeder.SeedGlossary()
}

// SeedLessonsOnly seeds only lessons
func (s *MainSeeder) SeedLessonsOnly() error {
	lessonSeeder := NewLessonSeeder(s.db)
	return lessonSeeder.SeedLessons()
}
