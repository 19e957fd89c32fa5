// Package generator provides the tutor reply and question generation strategies.
//
// The template implementations are stand-ins: replies ignore the student's message and
// questions are placeholders. Anything satisfying the interfaces, such as a model-backed
// client, can be injected into the services instead.
package generator

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/noah-isme/saarthi-api/internal/models"
)

// ResponseGenerator produces the tutor's reply to a chat message.
type ResponseGenerator interface {
	Generate(ctx context.Context, message, subject string) (string, error)
}

// QuestionSpec describes the questions to generate for an assessment.
type QuestionSpec struct {
	Subject        string
	TotalQuestions int
	Difficulty     models.Difficulty
	QuestionTypes  []string
}

// QuestionGenerator produces the question list of a new assessment.
type QuestionGenerator interface {
	Generate(ctx context.Context, spec QuestionSpec) ([]models.Question, error)
}

// lockedRand makes a *rand.Rand safe for concurrent handlers.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func newLockedRand(src rand.Source) *lockedRand {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &lockedRand{rnd: rand.New(src)}
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}
