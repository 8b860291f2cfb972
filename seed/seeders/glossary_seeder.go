package seeders

import (
	"log"
	"time"

	"github.com/avanee-labs/guarani_api/model"
	"gorm.io/gorm"
)

// GlossarySeeder handles seeding the starter Guarani vocabulary
type GlossarySeeder struct {
	db *gorm.DB
}

// NewGlossarySeeder creates a new glossary seeder
func NewGlossarySeeder(db *gorm.DB) *GlossarySeeder {
	return &GlossarySeeder{db: db}
}

// SeedGlossary seeds the database with starter vocabulary entries
func (s *GlossarySeeder) SeedGlossary() error {
	terms := s.getStarterTerms()

	for _, term := range terms {
		var existing model.GlossaryTerm
		if err := s.db.Where("id = ?", term.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&term).Error; err != nil {
					log.Printf("Error creating term %s: %v", term.GuaraniWord, err)
					return err
				}
				log.Printf("Created glossary term: %s", term.GuaraniWord)
			} else {
				log.Printf("Error checking term %s: %v", term.GuaraniWord, err)
				return err
			}
		} else {
			log.Printf("Term %s already exists, skipping", term.GuaraniWord)
		}
	}

	log.Println("Glossary seeding completed successfully")
	return nil
}

func (s *GlossarySeeder) getStarterTerms() []model.GlossaryTerm {
	now := time.Now()

	return []model.GlossaryTerm{
		{
			ID:                     "term_mbaeichapa",
			GuaraniWord:            "Mba'éichapa",
			SpanishTranslation:     "Hola / ¿Cómo estás?",
			EnglishTranslation:     "Hello / How are you?",
			Pronunciation:          "mba-EH-icha-pa",
			ExampleSentenceGuarani: "Mba'éichapa, che irũ!",
			ExampleSentenceSpanish: "¡Hola, mi amigo!",
			Category:               "greetings",
			DifficultyLevel:        "beginner",
			CreatedAt:              now,
			UpdatedAt:              now,
		},
		{
			ID:                     "term_iporante",
			GuaraniWord:            "Iporãnte",
			SpanishTranslation:     "Estoy bien",
			EnglishTranslation:     "I am fine",
			Pronunciation:          "i-po-RAN-te",
			ExampleSentenceGuarani: "Iporãnte, ha nde?",
			ExampleSentenceSpanish: "Estoy bien, ¿y tú?",
			Category:               "greetings",
			DifficultyLevel:        "beginner",
			CreatedAt:              now,
			UpdatedAt:              now,
		},
		{
			ID:                     "term_aguyje",
			GuaraniWord:            "Aguyje",
			SpanishTranslation:     "Gracias",
			EnglishTranslation:     "Thank you",
			Pronunciation:          "a-gwy-YE",
			ExampleSentenceGuarani: "Aguyje ndéve!",
			ExampleSentenceSpanish: "¡Gracias a ti!",
			Category:               "greetings",
			DifficultyLevel:        "beginner",
			CreatedAt:              now,
			UpdatedAt:              now,
		},
		{
			ID:                     "term_jajohechapeve",
			GuaraniWord:            "Jajohecha peve",
			SpanishTranslation:     "Hasta luego",
			EnglishTranslation:     "See you later",
			Pronunciation:          "ja-jo-HE-cha pe-VE",
			ExampleSentenceGuarani: "Jajohecha peve, che irũ.",
			ExampleSentenceSpanish: "Hasta luego, mi amigo.",
			Category:               "greetings",
			DifficultyLevel:        "beginner",
			CreatedAt:              now,
			UpdatedAt:              now,
		},
		{
			ID:                     "term_che",
			GuaraniWord:            "Che",
			SpanishTranslation:     "Yo / Mi",
			EnglishTranslation:     "I / My",
			Pronunciation:          "che",
			ExampleSentenceGuarani: "Che réra María.",
			ExampleSentenceSpanish: "Mi nombre es María.",
			Category:               "pronouns",
			DifficultyLevel:        "beginner",
			CreatedAt:              now,
			UpdatedAt:              now,
		},
		{
			ID:                     "term_nde",
			GuaraniWord:            "Nde",
			SpanishTranslation:     "Tú",
			EnglishTranslation:     "You",
			Pronunciation:          "nde",
			ExampleSentenceGuarani: "Mba'éichapa nde réra?",
			ExampleSentenceSpanish: "¿Cómo te llamas?",
			Category:               "pronouns",
			DifficultyLevel:        "beginner",
			CreatedAt:              now,
			UpdatedAt:              now,
		},
		{
			ID:                     "term_y",
			GuaraniWord:            "Y",
			SpanishTranslation:     "Agua",
			EnglishTranslation:     "Water",
			Pronunciation:          "ü",
			ExampleSentenceGuarani: "Aipota y.",
			ExampleSentenceSpanish: "Quiero agua.",
			Category:               "nature",
			DifficultyLevel:        "beginner",
			CreatedAt:              now,
			UpdatedAt:              now,
		},
		{
			ID:                     "term_kuarahy",
			GuaraniWord:            "Kuarahy",
			SpanishTranslation:     "Sol",
			EnglishTranslation:     "Sun",
			Pronunciation:          "kwa-ra-HÜ",
			ExampleSentenceGuarani: "Kuarahy ohesape.",
			ExampleSentenceSpanish: "El sol brilla.",
			Category:               "nature",
			DifficultyLevel:        "beginner",
			CreatedAt:              now,
			UpdatedAt:              now,
		},
	}
}
