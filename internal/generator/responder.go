package generator

import (
	"context"
	"math/rand"
)

var subjectReplies = map[string][]string{
	"mathematics": {
		"I'd be happy to help with your math question! Let me break this down step by step.",
		"Great question! Mathematics is all about understanding patterns. Let's explore this together.",
		"I can see you're working on an interesting problem. Let me guide you through the solution.",
	},
	"physics": {
		"Physics is fascinating! Let's explore the fundamental principles behind your question.",
		"I love helping with physics problems. Let's start with the basic concepts.",
		"That's a great physics question! Let me explain the underlying principles.",
	},
	"chemistry": {
		"Chemistry is all about understanding how atoms and molecules interact. Let's dive in!",
		"Excellent chemistry question! Let's explore the molecular level to understand this.",
		"I'm excited to help with chemistry! Let's break down the chemical processes involved.",
	},
}

var genericReplies = []string{
	"That's a thoughtful question! Let me help you understand this concept better.",
	"I'm here to help you learn! Let's work through this together.",
	"Great question! Learning is all about curiosity, and I'm here to guide you.",
}

// TemplateResponder picks a canned reply for the subject. The message content is ignored.
type TemplateResponder struct {
	rnd *lockedRand
}

// NewTemplateResponder builds a responder. A nil source seeds from the clock.
func NewTemplateResponder(src rand.Source) *TemplateResponder {
	return &TemplateResponder{rnd: newLockedRand(src)}
}

// Generate implements ResponseGenerator.
func (r *TemplateResponder) Generate(_ context.Context, _ string, subject string) (string, error) {
	replies := RepliesFor(subject)
	return replies[r.rnd.Intn(len(replies))], nil
}

// RepliesFor returns the reply pool keyed exactly by subject ("mathematics", "physics",
// "chemistry"), falling back to the generic pool.
func RepliesFor(subject string) []string {
	if replies, ok := subjectReplies[subject]; ok {
		return replies
	}
	return genericReplies
}
