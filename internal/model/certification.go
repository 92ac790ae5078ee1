package model

// CertLevel is a certification's difficulty tier.
type CertLevel string

const (
	LevelFoundational CertLevel = "Foundational"
	LevelAssociate    CertLevel = "Associate"
	LevelProfessional CertLevel = "Professional"
	LevelSpecialty    CertLevel = "Specialty"
	LevelExpert       CertLevel = "Expert"
)

// ExamDomain is one graded area of an exam with its score weight (0-1).
type ExamDomain struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// PrepHours estimates study time by starting skill tier.
type PrepHours struct {
	Beginner     float64 `json:"beginner"`
	Intermediate float64 `json:"intermediate"`
	Advanced     float64 `json:"advanced"`
}

// Certification is an immutable catalog entry describing one exam.
type Certification struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	ExamCode         string       `json:"examCode"`
	Level            CertLevel    `json:"level"`
	PriceUSD         float64      `json:"price"`
	DurationMinutes  int          `json:"duration"`
	QuestionCount    int          `json:"questionCount"`
	PassingScore     int          `json:"passingScore"`
	Domains          []ExamDomain `json:"domains"`
	Prerequisites    []string     `json:"prerequisites"`
	Related          []string     `json:"related"`
	PreparationHours PrepHours    `json:"preparationTimeHours"`
}
