package shared

const (
	UserID = "user_id"

	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"

	ContentTypeText       = "text"
	ContentTypeAudio      = "audio"
	ContentTypeImage      = "image"
	ContentTypeVideo      = "video"
	ContentTypeVocabulary = "vocabulary"

	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeFillBlank      = "fill_blank"
	QuestionTypeTrueFalse      = "true_false"
	QuestionTypeMatching       = "matching"

	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
	ChatRoleSystem    = "system"
)
