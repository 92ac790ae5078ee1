package model

import "time"

// Topic is one unit of study material inside a plan.
type Topic struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	DurationHours float64 `json:"duration"`
}

// PlanMilestone marks a checkpoint at a given week of the plan.
type PlanMilestone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Week int    `json:"week"`
}

// Progress tracks how far through a study plan the user is.
type Progress struct {
	CompletedTopics int     `json:"completedTopics"`
	TotalTopics     int     `json:"totalTopics"`
	CompletedHours  float64 `json:"completedHours"`
	TotalHours      float64 `json:"totalHours"`
	Percentage      float64 `json:"percentage"`
}

// StudyPlan is the derived scheduling artifact. Only its shape is owned here;
// plan generation lives with the UI layer.
type StudyPlan struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Certifications []string        `json:"certifications"`
	WeeklyHours    float64         `json:"weeklyHours"`
	StartDate      time.Time       `json:"startDate"`
	TargetEndDate  time.Time       `json:"targetEndDate"`
	CurrentWeek    int             `json:"currentWeek"`
	Topics         []Topic         `json:"topics"`
	Milestones     []PlanMilestone `json:"milestones"`
	Progress       Progress        `json:"progress"`
}

// NewStudyPlan returns an empty plan with a fresh id.
func NewStudyPlan() *StudyPlan {
	now := time.Now()
	return &StudyPlan{
		ID:             newID("plan"),
		Name:           "Study Plan",
		Certifications: []string{},
		WeeklyHours:    10,
		StartDate:      now,
		TargetEndDate:  now,
		CurrentWeek:    0,
		Topics:         []Topic{},
		Milestones:     []PlanMilestone{},
	}
}
