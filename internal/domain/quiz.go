package domain

// Expected cardinalities of a generated quiz.
const (
	QuizQuestionCount = 5
	QuizOptionCount   = 4
)

// MCQQuestion is one multiple-choice question. CorrectAnswer is expected to be
// one of Options; the generator is trusted on that point.
type MCQQuestion struct {
	Question      string   `json:"question"      validate:"required"`
	Options       []string `json:"options"       validate:"required,len=4,dive,required"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
}

// Quiz is an ordered set of multiple-choice questions. Its JSON encoding,
// {"quiz":[...]}, is the content string stored for MCQ generations.
type Quiz struct {
	Questions []MCQQuestion `json:"quiz" validate:"required,len=5,dive"`
}
