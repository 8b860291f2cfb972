package dto

import "time"

// ==================== GLOSSARY DTOs ====================

type GlossarySearchRequest struct {
	Search     string `query:"search"`
	Difficulty string `query:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Category   string `query:"category"`
	Limit      int    `query:"limit" validate:"omitempty,min=1,max=200"`
}

func (r GlossarySearchRequest) Validate() error {
	return GetValidator().Struct(r)
}

type GlossaryTermResponse struct {
	ID                     string `json:"id"`
	GuaraniWord            string `json:"guarani_word"`
	SpanishTranslation     string `json:"spanish_translation"`
	EnglishTranslation     string `json:"english_translation"`
	Pronunciation          string `json:"pronunciation"`
	AudioURL               string `json:"audio_url"`
	ExampleSentenceGuarani string `json:"example_sentence_guarani"`
	ExampleSentenceSpanish string `json:"example_sentence_spanish"`
	Category               string `json:"category"`
	DifficultyLevel        string `json:"difficulty_level"`
}

type GlossaryCollectionResponse struct {
	Terms []GlossaryTermResponse `json:"terms"`
	Total int                    `json:"total"`
}

type CategoryListResponse struct {
	Categories []string `json:"categories"`
}

type CreateGlossaryTermRequest struct {
	GuaraniWord            string `json:"guarani_word" validate:"required,max=200" example:"Mba'éichapa"`
	SpanishTranslation     string `json:"spanish_translation" validate:"required,max=200" example:"Hola"`
	EnglishTranslation     string `json:"english_translation" validate:"omitempty,max=200" example:"Hello"`
	Pronunciation          string `json:"pronunciation" validate:"omitempty,max=200"`
	ExampleSentenceGuarani string `json:"example_sentence_guarani"`
	ExampleSentenceSpanish string `json:"example_sentence_spanish"`
	Category               string `json:"category" validate:"omitempty,max=100" example:"greetings"`
	DifficultyLevel        string `json:"difficulty_level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

func (r CreateGlossaryTermRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateGlossaryTermRequest struct {
	GuaraniWord            *string `json:"guarani_word" validate:"omitempty,max=200"`
	SpanishTranslation     *string `json:"spanish_translation" validate:"omitempty,max=200"`
	EnglishTranslation     *string `json:"english_translation" validate:"omitempty,max=200"`
	Pronunciation          *string `json:"pronunciation" validate:"omitempty,max=200"`
	ExampleSentenceGuarani *string `json:"example_sentence_guarani"`
	ExampleSentenceSpanish *string `json:"example_sentence_spanish"`
	Category               *string `json:"category" validate:"omitempty,max=100"`
	DifficultyLevel        *string `json:"difficulty_level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

func (r UpdateGlossaryTermRequest) Validate() error {
	return GetValidator().Struct(r)
}

// ==================== LESSON DTOs ====================

type LessonListRequest struct {
	Difficulty string `query:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
}

func (r LessonListRequest) Validate() error {
	return GetValidator().Struct(r)
}

type LessonSummaryResponse struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	Order             int    `json:"order"`
	DifficultyLevel   string `json:"difficulty_level"`
	CoverImageURL     string `json:"cover_image_url"`
	EstimatedDuration int    `json:"estimated_duration"`
	ContentBlockCount int    `json:"content_block_count"`
	ExerciseCount     int    `json:"exercise_count"`
}

type LessonCollectionResponse struct {
	Lessons []LessonSummaryResponse `json:"lessons"`
	Total   int                     `json:"total"`
}

type AnswerChoiceResponse struct {
	ID         string `json:"id"`
	ChoiceText string `json:"choice_text"`
	Order      int    `json:"order"`
}

// QuestionResponse is the learner-facing view. The correct answer and
// explanation are only revealed through grading results.
type QuestionResponse struct {
	ID           string                 `json:"id"`
	QuestionType string                 `json:"question_type"`
	QuestionText string                 `json:"question_text"`
	AudioURL     string                 `json:"audio_url"`
	ImageURL     string                 `json:"image_url"`
	Points       int                    `json:"points"`
	Order        int                    `json:"order"`
	Choices      []AnswerChoiceResponse `json:"choices"`
}

type QuestionAdminResponse struct {
	QuestionResponse
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

type ExerciseResponse struct {
	ID           string             `json:"id"`
	LessonID     string             `json:"lesson_id"`
	Title        string             `json:"title"`
	Instructions string             `json:"instructions"`
	Order        int                `json:"order"`
	Questions    []QuestionResponse `json:"questions"`
}

type ExerciseAdminResponse struct {
	ID           string                  `json:"id"`
	LessonID     string                  `json:"lesson_id"`
	Title        string                  `json:"title"`
	Instructions string                  `json:"instructions"`
	Order        int                     `json:"order"`
	Questions    []QuestionAdminResponse `json:"questions"`
}

type ContentBlockResponse struct {
	ID          string                 `json:"id"`
	LessonID    string                 `json:"lesson_id"`
	Order       int                    `json:"order"`
	ContentType string                 `json:"content_type"`
	Title       string                 `json:"title"`
	TextContent string                 `json:"text_content"`
	AudioURL    string                 `json:"audio_url"`
	ImageURL    string                 `json:"image_url"`
	VideoURL    string                 `json:"video_url"`
	Terms       []GlossaryTermResponse `json:"terms"`
}

type LessonDetailResponse struct {
	ID                string                 `json:"id"`
	Title             string                 `json:"title"`
	Description       string                 `json:"description"`
	Order             int                    `json:"order"`
	DifficultyLevel   string                 `json:"difficulty_level"`
	CoverImageURL     string                 `json:"cover_image_url"`
	EstimatedDuration int                    `json:"estimated_duration"`
	IsPublished       bool                   `json:"is_published"`
	CreatedAt         time.Time              `json:"created_at"`
	ContentBlocks     []ContentBlockResponse `json:"content_blocks"`
	Exercises         []ExerciseResponse     `json:"exercises"`
}

type LessonAdminDetailResponse struct {
	ID                string                  `json:"id"`
	Title             string                  `json:"title"`
	Description       string                  `json:"description"`
	Order             int                     `json:"order"`
	DifficultyLevel   string                  `json:"difficulty_level"`
	CoverImageURL     string                  `json:"cover_image_url"`
	EstimatedDuration int                     `json:"estimated_duration"`
	IsPublished       bool                    `json:"is_published"`
	CreatedAt         time.Time               `json:"created_at"`
	ContentBlocks     []ContentBlockResponse  `json:"content_blocks"`
	Exercises         []ExerciseAdminResponse `json:"exercises"`
}

// ==================== ADMIN AUTHORING DTOs ====================

type CreateLessonRequest struct {
	Title             string `json:"title" validate:"required,max=200"`
	Description       string `json:"description"`
	Order             int    `json:"order" validate:"omitempty,min=0"`
	DifficultyLevel   string `json:"difficulty_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	CoverImageURL     string `json:"cover_image_url" validate:"omitempty,url"`
	EstimatedDuration int    `json:"estimated_duration" validate:"omitempty,min=1"`
	IsPublished       *bool  `json:"is_published"`
}

func (r CreateLessonRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateLessonRequest struct {
	Title             *string `json:"title" validate:"omitempty,max=200"`
	Description       *string `json:"description"`
	Order             *int    `json:"order" validate:"omitempty,min=0"`
	DifficultyLevel   *string `json:"difficulty_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	CoverImageURL     *string `json:"cover_image_url" validate:"omitempty,url"`
	EstimatedDuration *int    `json:"estimated_duration" validate:"omitempty,min=1"`
	IsPublished       *bool   `json:"is_published"`
}

func (r UpdateLessonRequest) Validate() error {
	return GetValidator().Struct(r)
}

type CreateContentBlockRequest struct {
	ContentType string   `json:"content_type" validate:"required,oneof=text audio image video vocabulary"`
	Order       int      `json:"order" validate:"omitempty,min=0"`
	Title       string   `json:"title" validate:"omitempty,max=200"`
	TextContent string   `json:"text_content"`
	AudioURL    string   `json:"audio_url" validate:"omitempty,url"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url"`
	VideoURL    string   `json:"video_url" validate:"omitempty,url"`
	TermIDs     []string `json:"term_ids"`
}

func (r CreateContentBlockRequest) Validate() error {
	return GetValidator().Struct(r)
}

type CreateExerciseRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Instructions string `json:"instructions"`
	Order        int    `json:"order" validate:"omitempty,min=0"`
}

func (r CreateExerciseRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ChoiceRequest struct {
	ChoiceText string `json:"choice_text" validate:"required,max=500"`
	Order      int    `json:"order" validate:"omitempty,min=0"`
}

type CreateQuestionRequest struct {
	QuestionType  string          `json:"question_type" validate:"required,oneof=multiple_choice fill_blank true_false matching"`
	QuestionText  string          `json:"question_text" validate:"required"`
	CorrectAnswer string          `json:"correct_answer" validate:"required,max=500"`
	Explanation   string          `json:"explanation"`
	Points        *int            `json:"points" validate:"omitempty,min=0"`
	Order         int             `json:"order" validate:"omitempty,min=0"`
	Choices       []ChoiceRequest `json:"choices" validate:"omitempty,dive"`
}

func (r CreateQuestionRequest) Validate() error {
	return GetValidator().Struct(r)
}
