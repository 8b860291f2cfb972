package seeders

import (
	"log"
	"time"

	"github.com/avanee-labs/guarani_api/model"
	"gorm.io/gorm"
)

// LessonSeeder handles seeding the starter lesson with its content
// blocks, exercise and questions
type LessonSeeder struct {
	db *gorm.DB
}

// NewLessonSeeder creates a new lesson seeder
func NewLessonSeeder(db *gorm.DB) *LessonSeeder {
	return &LessonSeeder{db: db}
}

// SeedLessons seeds the greetings starter lesson
func (s *LessonSeeder) SeedLessons() error {
	lesson := s.getStarterLesson()

	var existing model.Lesson
	if err := s.db.Where("id = ?", lesson.ID).First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("Error checking lesson %s: %v", lesson.Title, err)
			return err
		}
	} else {
		log.Printf("Lesson %s already exists, skipping", lesson.Title)
		return nil
	}

	if err := s.db.Create(&lesson).Error; err != nil {
		log.Printf("Error creating lesson %s: %v", lesson.Title, err)
		return err
	}
	log.Printf("Created lesson: %s", lesson.Title)

	// Attach seeded glossary terms to the vocabulary block.
	var terms []model.GlossaryTerm
	if err := s.db.Where("category = ?", "greetings").Find(&terms).Error; err != nil {
		return err
	}
	if len(terms) > 0 {
		var block model.LessonContent
		if err := s.db.Where("id = ?", "block_greetings_vocab").First(&block).Error; err != nil {
			return err
		}
		if err := s.db.Model(&block).Association("Terms").Replace(terms); err != nil {
			return err
		}
		log.Printf("Linked %d glossary terms to vocabulary block", len(terms))
	}

	log.Println("Lesson seeding completed successfully")
	return nil
}

func (s *LessonSeeder) getStarterLesson() model.Lesson {
	now := time.Now()

	return model.Lesson{
		ID:                "lesson_greetings",
		Title:             "Greetings and Introductions",
		Description:       "Learn how to greet people, introduce yourself and say goodbye in Guarani.",
		Order:             1,
		DifficultyLevel:   "beginner",
		EstimatedDuration: 15,
		IsPublished:       true,
		CreatedAt:         now,
		UpdatedAt:         now,
		ContentBlocks: []model.LessonContent{
			{
				ID:          "block_greetings_intro",
				Order:       1,
				ContentType: "text",
				Title:       "Saying Hello",
				TextContent: "The most common Guarani greeting is \"Mba'éichapa\", which works both as \"hello\" and \"how are you?\". A typical reply is \"Iporãnte\" (I am fine). Guarani is spoken by most of Paraguay's population and greetings are an important part of everyday courtesy.",
			},
			{
				ID:          "block_greetings_vocab",
				Order:       2,
				ContentType: "vocabulary",
				Title:       "Key Greetings",
			},
			{
				ID:          "block_greetings_practice",
				Order:       3,
				ContentType: "text",
				Title:       "Introducing Yourself",
				TextContent: "To introduce yourself say \"Che réra ...\" (my name is ...). To ask someone's name, say \"Mba'éichapa nde réra?\". When parting, use \"Jajohecha peve\" (see you later).",
			},
		},
		Exercises: []model.Exercise{
			{
				ID:           "exercise_greetings_1",
				Title:        "Greetings Practice",
				Instructions: "Answer the questions about Guarani greetings.",
				Order:        1,
				CreatedAt:    now,
				Questions: []model.Question{
					{
						ID:            "question_greetings_1",
						QuestionType:  "multiple_choice",
						QuestionText:  "How do you say \"hello\" in Guarani?",
						CorrectAnswer: "Mba'éichapa",
						Explanation:   "\"Mba'éichapa\" is the standard Guarani greeting, used for both \"hello\" and \"how are you?\".",
						Points:        10,
						Order:         1,
						Choices: []model.AnswerChoice{
							{ID: "choice_greetings_1a", ChoiceText: "Mba'éichapa", Order: 1},
							{ID: "choice_greetings_1b", ChoiceText: "Aguyje", Order: 2},
							{ID: "choice_greetings_1c", ChoiceText: "Jajohecha peve", Order: 3},
							{ID: "choice_greetings_1d", ChoiceText: "Iporãnte", Order: 4},
						},
					},
					{
						ID:            "question_greetings_2",
						QuestionType:  "multiple_choice",
						QuestionText:  "What does \"Aguyje\" mean?",
						CorrectAnswer: "Thank you",
						Explanation:   "\"Aguyje\" expresses gratitude.",
						Points:        10,
						Order:         2,
						Choices: []model.AnswerChoice{
							{ID: "choice_greetings_2a", ChoiceText: "Goodbye", Order: 1},
							{ID: "choice_greetings_2b", ChoiceText: "Thank you", Order: 2},
							{ID: "choice_greetings_2c", ChoiceText: "Please", Order: 3},
							{ID: "choice_greetings_2d", ChoiceText: "Good morning", Order: 4},
						},
					},
					{
						ID:            "question_greetings_3",
						QuestionType:  "fill_blank",
						QuestionText:  "Complete the introduction: \"____ réra María\" (My name is María).",
						CorrectAnswer: "Che",
						Explanation:   "\"Che\" means \"I\" or \"my\" in Guarani.",
						Points:        15,
						Order:         3,
					},
				},
			},
		},
	}
}
