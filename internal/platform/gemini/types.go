package gemini

import (
	"github.com/phrazzld/studysmart/internal/domain"
	"github.com/phrazzld/studysmart/internal/generation"
	"google.golang.org/genai"
)

// Template names, matching the files under prompts/.
const (
	learningContentTemplate = "learning_content.tmpl"
	quizTemplate            = "mcq_quiz.tmpl"
)

// learningPromptData is passed to the learning content template.
type learningPromptData struct {
	Topic       string
	ContentKind generation.ContentKind
}

// quizPromptData is passed to the quiz template.
type quizPromptData struct {
	Topic         string
	QuestionCount int
	OptionCount   int
}

// learningContentSchema constrains free-text responses to {"content": string}.
func learningContentSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"content": {
				Type:        genai.TypeString,
				Description: "The generated learning content, one point per line.",
			},
		},
		Required: []string{"content"},
	}
}

// quizSchema constrains quiz responses to {"quiz": [MCQQuestion x5]}.
func quizSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"quiz": {
				Type:        genai.TypeArray,
				Description: "The quiz questions.",
				MinItems:    genai.Ptr[int64](domain.QuizQuestionCount),
				MaxItems:    genai.Ptr[int64](domain.QuizQuestionCount),
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"question": {Type: genai.TypeString, Description: "The quiz question."},
						"options": {
							Type:        genai.TypeArray,
							Description: "The multiple choice options.",
							MinItems:    genai.Ptr[int64](domain.QuizOptionCount),
							MaxItems:    genai.Ptr[int64](domain.QuizOptionCount),
							Items:       &genai.Schema{Type: genai.TypeString},
						},
						"correctAnswer": {Type: genai.TypeString, Description: "The correct answer, copied from the options."},
					},
					Required: []string{"question", "options", "correctAnswer"},
				},
			},
		},
		Required: []string{"quiz"},
	}
}
