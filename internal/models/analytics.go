package models

import "time"

// RiskCounts tallies progress records per risk level.
type RiskCounts struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// InterventionCounts tallies interventions per status.
type InterventionCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Total      int `json:"total"`
}

// RiskStudent is one medium or high risk progress record joined with its student.
type RiskStudent struct {
	StudentID         int       `json:"studentId"`
	Name              string    `json:"name"`
	Grade             string    `json:"grade"`
	Subject           string    `json:"subject"`
	RiskLevel         RiskLevel `json:"riskLevel"`
	Progress          int       `json:"progress"`
	EngagementScore   int       `json:"engagementScore"`
	LastActivity      time.Time `json:"lastActivity"`
	OpenInterventions int       `json:"openInterventions"`
}

// RiskOverview backs the educator analytics view.
type RiskOverview struct {
	TotalStudents     int                `json:"totalStudents"`
	TrackedRecords    int                `json:"trackedRecords"`
	RiskCounts        RiskCounts         `json:"riskCounts"`
	AverageProgress   float64            `json:"averageProgress"`
	AverageEngagement float64            `json:"averageEngagement"`
	AtRisk            []RiskStudent      `json:"atRisk"`
	Interventions     InterventionCounts `json:"interventions"`
	GeneratedAt       time.Time          `json:"generatedAt"`
}

// SystemMetrics is a lightweight runtime snapshot for administrators.
type SystemMetrics struct {
	RequestsTotal            uint64         `json:"requestsTotal"`
	AverageRequestDurationMs float64        `json:"averageRequestDurationMs"`
	CacheHits                uint64         `json:"cacheHits"`
	CacheMisses              uint64         `json:"cacheMisses"`
	CacheHitRatio            float64        `json:"cacheHitRatio"`
	Generations              uint64         `json:"generations"`
	Records                  map[string]int `json:"records"`
	Goroutines               int            `json:"goroutines"`
	GeneratedAt              time.Time      `json:"generatedAt"`
}
