// model/content.go
package model

import (
	"time"
)

// GlossaryTerm represents a single Guarani vocabulary entry
type GlossaryTerm struct {
	ID                     string    `json:"id" gorm:"primaryKey"`
	GuaraniWord            string    `json:"guarani_word" gorm:"not null;index"`
	SpanishTranslation     string    `json:"spanish_translation" gorm:"not null"`
	EnglishTranslation     string    `json:"english_translation"`
	Pronunciation          string    `json:"pronunciation"`
	AudioURL               string    `json:"audio_url"`
	ExampleSentenceGuarani string    `json:"example_sentence_guarani" gorm:"type:text"`
	ExampleSentenceSpanish string    `json:"example_sentence_spanish" gorm:"type:text"`
	Category               string    `json:"category" gorm:"index"`
	DifficultyLevel        string    `json:"difficulty_level"` // beginner, intermediate, advanced
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// Lesson represents a structured instructional unit
type Lesson struct {
	ID                string    `json:"id" gorm:"primaryKey"`
	Title             string    `json:"title" gorm:"not null"`
	Description       string    `json:"description" gorm:"type:text"`
	Order             int       `json:"order" gorm:"not null;default:0"`
	DifficultyLevel   string    `json:"difficulty_level"`
	CoverImageURL     string    `json:"cover_image_url"`
	EstimatedDuration int       `json:"estimated_duration"` // in minutes
	IsPublished       bool      `json:"is_published"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Relationships
	ContentBlocks []LessonContent `json:"content_blocks,omitempty" gorm:"foreignKey:LessonID"`
	Exercises     []Exercise      `json:"exercises,omitempty" gorm:"foreignKey:LessonID"`
}

// LessonContent represents one ordered multimedia block within a lesson
type LessonContent struct {
	ID          string `json:"id" gorm:"primaryKey"`
	LessonID    string `json:"lesson_id" gorm:"not null;index"`
	Order       int    `json:"order" gorm:"not null;default:0"`
	ContentType string `json:"content_type"` // text, audio, image, video, vocabulary
	Title       string `json:"title"`
	TextContent string `json:"text_content" gorm:"type:text"`
	AudioURL    string `json:"audio_url"`
	ImageURL    string `json:"image_url"`
	VideoURL    string `json:"video_url"`

	// Vocabulary blocks reference glossary terms
	Terms []GlossaryTerm `json:"terms,omitempty" gorm:"many2many:lesson_content_terms"`
}

// Exercise represents a graded question set belonging to a lesson
type Exercise struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	LessonID     string    `json:"lesson_id" gorm:"not null;index"`
	Title        string    `json:"title" gorm:"not null"`
	Instructions string    `json:"instructions" gorm:"type:text"`
	Order        int       `json:"order" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at"`

	// Relationship
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:ExerciseID"`
}

// Question represents an individual question within an exercise
type Question struct {
	ID            string `json:"id" gorm:"primaryKey"`
	ExerciseID    string `json:"exercise_id" gorm:"not null;index"`
	QuestionType  string `json:"question_type"` // multiple_choice, fill_blank, true_false, matching
	QuestionText  string `json:"question_text" gorm:"type:text"`
	AudioURL      string `json:"audio_url"`
	ImageURL      string `json:"image_url"`
	CorrectAnswer string `json:"correct_answer" gorm:"not null"`
	Explanation   string `json:"explanation" gorm:"type:text"`
	Points        int    `json:"points"`
	Order         int    `json:"order" gorm:"not null;default:0"`

	// Relationship
	Choices []AnswerChoice `json:"choices,omitempty" gorm:"foreignKey:QuestionID"`
}

// AnswerChoice represents a multiple choice option
type AnswerChoice struct {
	ID         string `json:"id" gorm:"primaryKey"`
	QuestionID string `json:"question_id" gorm:"not null;index"`
	ChoiceText string `json:"choice_text" gorm:"not null"`
	Order      int    `json:"order" gorm:"not null;default:0"`
}
