package generator

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/noah-isme/saarthi-api/internal/models"
)

const (
	typeMultipleChoice = "multiple_choice"
	typeShortAnswer    = "short_answer"
)

var multipleChoiceOptions = []string{"Option A", "Option B", "Option C", "Option D"}

// TemplateQuestioner emits placeholder questions of the requested types.
type TemplateQuestioner struct {
	rnd *lockedRand
}

// NewTemplateQuestioner builds a questioner. A nil source seeds from the clock.
func NewTemplateQuestioner(src rand.Source) *TemplateQuestioner {
	return &TemplateQuestioner{rnd: newLockedRand(src)}
}

// Generate implements QuestionGenerator. Each slot draws a label uniformly from
// spec.QuestionTypes and emits a stub for "Multiple Choice" or "Short Answer". Any other
// label, such as "Essay", leaves the slot empty, so the result may hold fewer than
// TotalQuestions questions. Ids are the 1-based slot positions.
func (g *TemplateQuestioner) Generate(ctx context.Context, spec QuestionSpec) ([]models.Question, error) {
	questions := make([]models.Question, 0, spec.TotalQuestions)
	if len(spec.QuestionTypes) == 0 {
		return questions, nil
	}

	for i := 0; i < spec.TotalQuestions; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n := i + 1
		switch spec.QuestionTypes[g.rnd.Intn(len(spec.QuestionTypes))] {
		case models.QuestionTypeMultipleChoice:
			correct := 0
			questions = append(questions, models.Question{
				ID:            n,
				Type:          typeMultipleChoice,
				Question:      fmt.Sprintf("%s question %d: This is a sample %s difficulty question.", spec.Subject, n, spec.Difficulty),
				Options:       append([]string(nil), multipleChoiceOptions...),
				CorrectAnswer: &correct,
				Points:        MultipleChoicePoints(spec.Difficulty),
			})
		case models.QuestionTypeShortAnswer:
			questions = append(questions, models.Question{
				ID:       n,
				Type:     typeShortAnswer,
				Question: fmt.Sprintf("%s question %d: Provide a brief explanation for this %s concept.", spec.Subject, n, spec.Difficulty),
				Points:   ShortAnswerPoints(spec.Difficulty),
			})
		}
	}
	return questions, nil
}

// MultipleChoicePoints is 3 for hard, 2 for medium and 1 otherwise.
func MultipleChoicePoints(d models.Difficulty) int {
	switch d {
	case models.DifficultyHard:
		return 3
	case models.DifficultyMedium:
		return 2
	default:
		return 1
	}
}

// ShortAnswerPoints is 5 for hard, 3 for medium and 2 otherwise.
func ShortAnswerPoints(d models.Difficulty) int {
	switch d {
	case models.DifficultyHard:
		return 5
	case models.DifficultyMedium:
		return 3
	default:
		return 2
	}
}
