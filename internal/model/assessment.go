package model

import (
	"time"

	"github.com/google/uuid"
)

// LearningStyle is the user's preferred way of studying.
type LearningStyle string

const (
	LearningVisual      LearningStyle = "visual"
	LearningAuditory    LearningStyle = "auditory"
	LearningReading     LearningStyle = "reading"
	LearningKinesthetic LearningStyle = "kinesthetic"
	LearningMixed       LearningStyle = "mixed"
)

// BudgetConstraint bounds how much the user is willing to spend on exams and prep.
type BudgetConstraint string

const (
	BudgetLimited  BudgetConstraint = "limited"
	BudgetModerate BudgetConstraint = "moderate"
	BudgetFlexible BudgetConstraint = "flexible"
)

// Timeframe is the horizon the user wants the roadmap to fit in.
type Timeframe string

const (
	TimeframeThreeMonths Timeframe = "3-months"
	TimeframeSixMonths   Timeframe = "6-months"
	TimeframeOneYear     Timeframe = "1-year"
	TimeframeTwoYears    Timeframe = "2-years"
	TimeframeFlexible    Timeframe = "flexible"
)

// CloudProvider is the user's self-reported experience with one provider.
// ExperienceLevel runs 0 (none) through 4 (expert).
type CloudProvider struct {
	Name            string `json:"name"`
	ExperienceLevel int    `json:"experienceLevel"`
}

// Skill is a single named skill inside a domain. Level runs 1 through 4.
type Skill struct {
	Name            string  `json:"name"`
	Level           int     `json:"level"`
	YearsExperience float64 `json:"yearsExperience"`
}

// DomainSkill groups skills under a technology domain (compute, networking, ...).
type DomainSkill struct {
	Domain string  `json:"domain"`
	Skills []Skill `json:"skills"`
}

// AchievedCertification records a certification the user already holds.
type AchievedCertification struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Provider       string     `json:"provider"`
	DateAchieved   time.Time  `json:"dateAchieved"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
}

// Preferences are the study constraints collected by the assessment form.
type Preferences struct {
	LearningStyle         LearningStyle    `json:"learningStyle"`
	AvailableHoursPerWeek float64          `json:"availableHoursPerWeek"`
	BudgetConstraints     BudgetConstraint `json:"budgetConstraints"`
	Timeframe             Timeframe        `json:"timeframe"`
}

// Assessment is the user's skill snapshot. It is replaced wholesale on every
// form submit; there are no partial updates.
type Assessment struct {
	ID             string                  `json:"id"`
	Timestamp      time.Time               `json:"timestamp"`
	CloudProviders []CloudProvider         `json:"cloudProviders"`
	DomainSkills   []DomainSkill           `json:"domainSkills"`
	Certifications []AchievedCertification `json:"certifications"`
	Preferences    Preferences             `json:"preferences"`
}

// NewAssessment returns an empty assessment with a fresh id and sane preference
// defaults.
func NewAssessment() *Assessment {
	return &Assessment{
		ID:             newID("assessment"),
		Timestamp:      time.Now(),
		CloudProviders: []CloudProvider{},
		DomainSkills:   []DomainSkill{},
		Certifications: []AchievedCertification{},
		Preferences: Preferences{
			LearningStyle:         LearningMixed,
			AvailableHoursPerWeek: 10,
			BudgetConstraints:     BudgetModerate,
			Timeframe:             TimeframeOneYear,
		},
	}
}

// ProviderExperience returns the experience level reported for the named
// provider, or 0 when the user has no entry for it.
func (a *Assessment) ProviderExperience(provider string) int {
	for _, p := range a.CloudProviders {
		if p.Name == provider {
			return p.ExperienceLevel
		}
	}
	return 0
}

// SkillLevel returns the user's level for a named domain averaged across its
// skills, or 0 when the domain was not assessed.
func (a *Assessment) SkillLevel(domain string) float64 {
	for _, d := range a.DomainSkills {
		if d.Domain != domain || len(d.Skills) == 0 {
			continue
		}
		total := 0.0
		for _, s := range d.Skills {
			total += float64(s.Level)
		}
		return total / float64(len(d.Skills))
	}
	return 0
}

func newID(kind string) string {
	return kind + "-" + uuid.NewString()
}
