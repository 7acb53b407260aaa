// Package practice implements the practice session engine: question
// selection for a weak knowledge point, answer grading, and the fold-in
// of session results back into the learner's weak-point stats.
package practice

// QuestionType discriminates how a question is answered.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	ShortAnswer    QuestionType = "short-answer"
)

// Question is one practice question presented during a session.
type Question struct {
	ID            string
	Prompt        string
	Type          QuestionType
	Options       []string // multiple-choice only
	CorrectAnswer string
	Explanation   string
	Topic         string
}

// UserAnswer is the graded response to one question. TimeSpentSecs is
// wall time from question display to submission.
type UserAnswer struct {
	QuestionID    string `json:"questionId"`
	Answer        string `json:"answer"`
	IsCorrect     bool   `json:"isCorrect"`
	TimeSpentSecs int    `json:"timeSpent"`
}

// DifficultyFor maps a weakness level to the difficulty label used for
// question selection and record keeping.
func DifficultyFor(weaknessLevel int) string {
	switch {
	case weaknessLevel > 75:
		return "Hard"
	case weaknessLevel > 60:
		return "Medium"
	default:
		return "Easy"
	}
}
