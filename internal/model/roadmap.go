package model

import "time"

// CertStatus is the lifecycle state of a certification inside a roadmap.
type CertStatus string

const (
	StatusPlanned    CertStatus = "planned"
	StatusInProgress CertStatus = "in-progress"
	StatusCompleted  CertStatus = "completed"
	StatusExpired    CertStatus = "expired"
)

// ValidCertStatus reports whether s is a known status value.
func ValidCertStatus(s CertStatus) bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusExpired:
		return true
	}
	return false
}

// PathType classifies an edge between two certifications in a roadmap.
type PathType string

const (
	PathPrerequisite PathType = "prerequisite"
	PathRelated      PathType = "related"
	PathAlternative  PathType = "alternative"
)

// RoadmapCertification is one planned certification. Priority is the 1-based
// rank inside the roadmap.
type RoadmapCertification struct {
	ID           string     `json:"id"`
	Status       CertStatus `json:"status"`
	Priority     int        `json:"priority"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	TargetDate   *time.Time `json:"targetDate,omitempty"`
	Dependencies []string   `json:"dependencies"`
	Notes        string     `json:"notes,omitempty"`
}

// PathEdge is a directed edge between two certifications in the roadmap.
type PathEdge struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Type PathType `json:"type"`
}

// CompletionEstimate holds three target dates at different pacing assumptions.
type CompletionEstimate struct {
	Optimistic   time.Time `json:"optimistic"`
	Realistic    time.Time `json:"realistic"`
	Conservative time.Time `json:"conservative"`
}

// BasedOn records which inputs a roadmap was generated from.
type BasedOn struct {
	AssessmentID  string `json:"assessment"`
	CareerGoalsID string `json:"careerGoals"`
}

// Roadmap is the generated plan. Created once by the generator and mutated in
// place afterwards; every mutation re-stamps UpdatedAt.
type Roadmap struct {
	ID                  string                 `json:"id"`
	Name                string                 `json:"name"`
	CreatedAt           time.Time              `json:"createdAt"`
	UpdatedAt           time.Time              `json:"updatedAt"`
	BasedOn             BasedOn                `json:"basedOn"`
	Certifications      []RoadmapCertification `json:"certifications"`
	Paths               []PathEdge             `json:"paths"`
	EstimatedCompletion *CompletionEstimate    `json:"estimatedCompletion,omitempty"`
}

// NewRoadmap returns an empty roadmap with a fresh id and both timestamps set
// to now.
func NewRoadmap() *Roadmap {
	now := time.Now()
	return &Roadmap{
		ID:             newID("roadmap"),
		Name:           "Certification Roadmap",
		CreatedAt:      now,
		UpdatedAt:      now,
		Certifications: []RoadmapCertification{},
		Paths:          []PathEdge{},
	}
}

// Contains reports whether the roadmap already lists the certification.
func (r *Roadmap) Contains(certID string) bool {
	for _, c := range r.Certifications {
		if c.ID == certID {
			return true
		}
	}
	return false
}

// Touch re-stamps UpdatedAt, keeping it monotonic even if the clock stalls.
func (r *Roadmap) Touch() {
	now := time.Now()
	if now.Before(r.UpdatedAt) {
		now = r.UpdatedAt
	}
	r.UpdatedAt = now
}
