package usecase

import (
	"cert-roadmap/internal/catalog"
	"cert-roadmap/internal/model"
)

// Sub-score weights. They sum to 100, so a total score is always in [0, 100].
const (
	weightProvider   = 40.0
	weightCareerPath = 30.0
	weightSkillGap   = 20.0
	weightDifficulty = 10.0
)

// ScoreBreakdown carries the four sub-scores and their sum for one
// certification.
type ScoreBreakdown struct {
	Provider   float64 `json:"provider"`
	CareerPath float64 `json:"careerPath"`
	SkillGap   float64 `json:"skillGap"`
	Difficulty float64 `json:"difficulty"`
	Total      float64 `json:"total"`
}

// Score rates how well one certification fits the user. Each sub-score is
// bounded by its weight.
func (g *Generator) Score(cert *model.Certification, a *model.Assessment, goals *model.CareerGoals) ScoreBreakdown {
	b := ScoreBreakdown{
		Provider:   g.providerAlignment(cert, a),
		CareerPath: g.careerPathAlignment(cert, goals),
		SkillGap:   g.skillGapAlignment(cert, a),
		Difficulty: g.difficultyAppropriateness(cert, a),
	}
	b.Total = b.Provider + b.CareerPath + b.SkillGap + b.Difficulty
	return b
}

// providerAlignment scales the user's 0-4 experience with the cert's provider
// to 0-40. Unrecognized id prefixes and unreported providers score zero.
func (g *Generator) providerAlignment(cert *model.Certification, a *model.Assessment) float64 {
	provider := catalog.ProviderOf(cert.ID)
	if provider == "" {
		return 0
	}
	return float64(a.ProviderExperience(provider)) / 4 * weightProvider
}

// careerPathAlignment scores 1.0 for the primary path, 0.7 for a secondary
// path, 0.3 otherwise (including certs with no known path mapping).
func (g *Generator) careerPathAlignment(cert *model.Certification, goals *model.CareerGoals) float64 {
	factor := 0.3
	for _, p := range g.catalog.PathsFor(cert.ID) {
		if p == goals.PrimaryPath {
			factor = 1.0
			break
		}
		if goals.HasSecondaryPath(p) && factor < 0.7 {
			factor = 0.7
		}
	}
	return factor * weightCareerPath
}

// skillGapAlignment favors certs covering domains where the user is weakest.
// Gap per domain is 1 - level/4 (1.0 when the domain was never assessed);
// the cert's topic weights average the gaps. Certs without a topic-weight
// entry get a neutral 0.5.
func (g *Generator) skillGapAlignment(cert *model.Certification, a *model.Assessment) float64 {
	weights, ok := g.catalog.TopicWeights(cert.ID)
	if !ok || len(weights) == 0 {
		return 0.5 * weightSkillGap
	}
	var weighted, total float64
	for domain, w := range weights {
		gap := 1.0
		if level := a.SkillLevel(domain); level > 0 {
			gap = 1 - level/4
		}
		weighted += gap * w
		total += w
	}
	if total == 0 {
		return 0.5 * weightSkillGap
	}
	return weighted / total * weightSkillGap
}

// difficultyAppropriateness compares the experience a cert level expects with
// what the user reported for that provider. Exact match 1.0, off-by-one 0.7,
// off-by-two 0.4, further 0.1.
func (g *Generator) difficultyAppropriateness(cert *model.Certification, a *model.Assessment) float64 {
	expected := expectedExperience(cert.Level)
	actual := a.ProviderExperience(catalog.ProviderOf(cert.ID))
	diff := expected - actual
	if diff < 0 {
		diff = -diff
	}
	factor := 0.1
	switch diff {
	case 0:
		factor = 1.0
	case 1:
		factor = 0.7
	case 2:
		factor = 0.4
	}
	return factor * weightDifficulty
}

func expectedExperience(level model.CertLevel) int {
	switch level {
	case model.LevelFoundational:
		return 0
	case model.LevelAssociate:
		return 1
	case model.LevelProfessional, model.LevelSpecialty:
		return 3
	case model.LevelExpert:
		return 4
	}
	return 2
}
