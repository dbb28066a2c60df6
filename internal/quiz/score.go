package quiz

import (
	"errors"
	"math"

	"github.com/phrazzld/studysmart/internal/domain"
)

// ErrNoQuestions is returned when scoring a quiz without questions.
var ErrNoQuestions = errors.New("quiz has no questions")

// QuestionResult is the outcome of one question.
type QuestionResult struct {
	Index         int    `json:"index"`
	Selected      string `json:"selected"`
	CorrectAnswer string `json:"correctAnswer"`
	Correct       bool   `json:"correct"`
}

// Result is the outcome of a scored quiz.
type Result struct {
	Correct   int              `json:"correct"`
	Incorrect int              `json:"incorrect"`
	Total     int              `json:"total"`
	Percent   int              `json:"percent"`
	Questions []QuestionResult `json:"questions"`
}

// Score grades answers, keyed by zero-based question index, against q. An
// answer is correct only when it equals the question's correct answer
// exactly; unanswered questions count as incorrect and answers for unknown
// indexes are ignored.
func Score(q *domain.Quiz, answers map[int]string) (*Result, error) {
	if q == nil || len(q.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	res := &Result{
		Total:     len(q.Questions),
		Questions: make([]QuestionResult, 0, len(q.Questions)),
	}
	for i, question := range q.Questions {
		selected := answers[i]
		correct := selected != "" && selected == question.CorrectAnswer
		if correct {
			res.Correct++
		} else {
			res.Incorrect++
		}
		res.Questions = append(res.Questions, QuestionResult{
			Index:         i,
			Selected:      selected,
			CorrectAnswer: question.CorrectAnswer,
			Correct:       correct,
		})
	}

	res.Percent = Percent(res.Correct, res.Total)
	return res, nil
}

// Percent returns round(100 * part / whole), or 0 when whole is not positive.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}
