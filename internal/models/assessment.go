package models

import (
	"encoding/json"
	"time"
)

// Difficulty grades how hard an assessment is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyMixed  Difficulty = "mixed"
)

// AssessmentStatus tracks the assessment lifecycle.
type AssessmentStatus string

const (
	AssessmentDraft     AssessmentStatus = "draft"
	AssessmentActive    AssessmentStatus = "active"
	AssessmentCompleted AssessmentStatus = "completed"
)

// Question type labels as chosen in the assessment builder.
const (
	QuestionTypeMultipleChoice = "Multiple Choice"
	QuestionTypeShortAnswer    = "Short Answer"
)

// Assessment is an educator-authored test. Questions is stored as opaque JSON.
type Assessment struct {
	ID             int              `json:"id"`
	Title          string           `json:"title"`
	Subject        string           `json:"subject"`
	Grade          string           `json:"grade"`
	Duration       int              `json:"duration"`
	TotalQuestions int              `json:"totalQuestions"`
	Difficulty     Difficulty       `json:"difficulty"`
	QuestionTypes  []string         `json:"questionTypes"`
	Questions      json.RawMessage  `json:"questions"`
	CreatedBy      int              `json:"createdBy"`
	Status         AssessmentStatus `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// Question is the shape produced by the question generator.
type Question struct {
	ID            int      `json:"id"`
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer *int     `json:"correctAnswer,omitempty"`
	Points        int      `json:"points"`
}

// CreateAssessmentRequest is the payload of POST /assessments.
type CreateAssessmentRequest struct {
	Title          string           `json:"title" validate:"required,max=200"`
	Subject        string           `json:"subject" validate:"required,max=64"`
	Grade          string           `json:"grade" validate:"required,max=32"`
	Duration       int              `json:"duration" validate:"gte=0,max=600"`
	TotalQuestions int              `json:"totalQuestions" validate:"gte=0,max=200"`
	Difficulty     Difficulty       `json:"difficulty" validate:"required,oneof=easy medium hard mixed"`
	QuestionTypes  []string         `json:"questionTypes" validate:"omitempty,dive,required"`
	Questions      json.RawMessage  `json:"questions"`
	CreatedBy      int              `json:"createdBy" validate:"gte=0"`
	Status         AssessmentStatus `json:"status" validate:"omitempty,oneof=draft active completed"`
}

// AssessmentPatch lists the fields PUT /assessments/:id may change. Nil means unchanged.
type AssessmentPatch struct {
	Title          *string           `json:"title" validate:"omitempty,min=1,max=200"`
	Subject        *string           `json:"subject" validate:"omitempty,min=1,max=64"`
	Grade          *string           `json:"grade" validate:"omitempty,min=1,max=32"`
	Duration       *int              `json:"duration" validate:"omitempty,gte=0,max=600"`
	TotalQuestions *int              `json:"totalQuestions" validate:"omitempty,gte=0,max=200"`
	Difficulty     *Difficulty       `json:"difficulty" validate:"omitempty,oneof=easy medium hard mixed"`
	QuestionTypes  *[]string         `json:"questionTypes"`
	Questions      json.RawMessage   `json:"questions"`
	Status         *AssessmentStatus `json:"status" validate:"omitempty,oneof=draft active completed"`
}

// Apply overlays the non-nil fields of p onto a.
func (p AssessmentPatch) Apply(a Assessment) Assessment {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Subject != nil {
		a.Subject = *p.Subject
	}
	if p.Grade != nil {
		a.Grade = *p.Grade
	}
	if p.Duration != nil {
		a.Duration = *p.Duration
	}
	if p.TotalQuestions != nil {
		a.TotalQuestions = *p.TotalQuestions
	}
	if p.Difficulty != nil {
		a.Difficulty = *p.Difficulty
	}
	if p.QuestionTypes != nil {
		a.QuestionTypes = append([]string(nil), (*p.QuestionTypes)...)
	}
	if HasJSON(p.Questions) {
		a.Questions = append(json.RawMessage(nil), p.Questions...)
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	return a
}

// HasJSON reports whether raw carries a value other than JSON null.
func HasJSON(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
