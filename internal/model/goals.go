package model

import "time"

// CareerPath is one of the fixed trajectories a user can target.
type CareerPath string

const (
	PathCloudArchitect   CareerPath = "cloud-architect"
	PathCloudDeveloper   CareerPath = "cloud-developer"
	PathDevOpsEngineer   CareerPath = "devops-engineer"
	PathDataEngineer     CareerPath = "data-engineer"
	PathSecurityEngineer CareerPath = "security-engineer"
	PathMLEngineer       CareerPath = "ml-engineer"
)

// CareerPaths lists every valid path value.
var CareerPaths = []CareerPath{
	PathCloudArchitect,
	PathCloudDeveloper,
	PathDevOpsEngineer,
	PathDataEngineer,
	PathSecurityEngineer,
	PathMLEngineer,
}

// Priorities are six weights (1-5) describing what the user optimizes for.
type Priorities struct {
	Salary           int `json:"salary"`
	WorkLifeBalance  int `json:"workLifeBalance"`
	JobSecurity      int `json:"jobSecurity"`
	RemoteWork       int `json:"remoteWork"`
	TechnicalDepth   int `json:"technicalDepth"`
	CareerGrowth     int `json:"careerGrowth"`
}

// TimelineGoal is a named milestone with a target date.
type TimelineGoal struct {
	Milestone  string    `json:"milestone"`
	TargetDate time.Time `json:"targetDate"`
}

// CareerGoals captures the trajectory the roadmap should optimize for.
type CareerGoals struct {
	ID             string         `json:"id"`
	Timestamp      time.Time      `json:"timestamp"`
	PrimaryPath    CareerPath     `json:"primaryPath"`
	SecondaryPaths []CareerPath   `json:"secondaryPaths"`
	TargetRoles    []string       `json:"targetRoles"`
	Priorities     Priorities     `json:"priorities"`
	IndustryFocus  []string       `json:"industryFocus"`
	TimelineGoals  []TimelineGoal `json:"timelineGoals"`
}

// NewCareerGoals returns an empty goals object with a fresh id. PrimaryPath is
// left unset on purpose; validation rejects it until the form fills it in.
func NewCareerGoals() *CareerGoals {
	return &CareerGoals{
		ID:             newID("goals"),
		Timestamp:      time.Now(),
		SecondaryPaths: []CareerPath{},
		TargetRoles:    []string{},
		Priorities: Priorities{
			Salary:          3,
			WorkLifeBalance: 3,
			JobSecurity:     3,
			RemoteWork:      3,
			TechnicalDepth:  3,
			CareerGrowth:    3,
		},
		IndustryFocus: []string{},
		TimelineGoals: []TimelineGoal{},
	}
}

// HasSecondaryPath reports whether p is one of the user's secondary paths.
func (g *CareerGoals) HasSecondaryPath(p CareerPath) bool {
	for _, s := range g.SecondaryPaths {
		if s == p {
			return true
		}
	}
	return false
}
