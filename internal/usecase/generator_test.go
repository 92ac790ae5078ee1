package usecase

import (
	"context"
	"testing"
	"time"

	"cert-roadmap/internal/catalog"
	"cert-roadmap/internal/model"
)

func newTestGenerator() *Generator {
	return NewGenerator(catalog.New(), nil)
}

func assessmentWithExperience(level int) *model.Assessment {
	a := model.NewAssessment()
	a.CloudProviders = []model.CloudProvider{{Name: "AWS", ExperienceLevel: level}}
	return a
}

func architectGoals() *model.CareerGoals {
	g := model.NewCareerGoals()
	g.PrimaryPath = model.PathCloudArchitect
	return g
}

// TestGenerateRequiresBothInputs ensures missing input degrades to nil, not a
// panic.
func TestGenerateRequiresBothInputs(t *testing.T) {
	g := newTestGenerator()
	if r := g.Generate(context.Background(), nil, architectGoals()); r != nil {
		t.Fatal("expected nil roadmap without an assessment")
	}
	if r := g.Generate(context.Background(), assessmentWithExperience(1), nil); r != nil {
		t.Fatal("expected nil roadmap without career goals")
	}
}

// TestScoreBounds checks every catalog certification stays inside [0, 100]
// across assessments at both experience extremes.
func TestScoreBounds(t *testing.T) {
	g := newTestGenerator()
	goals := architectGoals()
	goals.SecondaryPaths = []model.CareerPath{model.PathDevOpsEngineer}

	assessments := []*model.Assessment{
		assessmentWithExperience(0),
		assessmentWithExperience(4),
	}
	skilled := assessmentWithExperience(2)
	skilled.CloudProviders = append(skilled.CloudProviders,
		model.CloudProvider{Name: "Azure", ExperienceLevel: 3},
		model.CloudProvider{Name: "GCP", ExperienceLevel: 1},
	)
	skilled.DomainSkills = []model.DomainSkill{
		{Domain: "compute", Skills: []model.Skill{{Name: "vm", Level: 4, YearsExperience: 5}}},
		{Domain: "security", Skills: []model.Skill{{Name: "iam", Level: 1, YearsExperience: 1}}},
	}
	assessments = append(assessments, skilled)

	cat := catalog.New()
	for _, a := range assessments {
		for _, id := range cat.IDs() {
			cert, _ := cat.ByID(id)
			score := g.Score(cert, a, goals)
			if score.Total < 0 || score.Total > 100 {
				t.Errorf("score for %s out of bounds: %+v", id, score)
			}
			if score.Provider < 0 || score.Provider > 40 ||
				score.CareerPath < 0 || score.CareerPath > 30 ||
				score.SkillGap < 0 || score.SkillGap > 20 ||
				score.Difficulty < 0 || score.Difficulty > 10 {
				t.Errorf("sub-score for %s out of bounds: %+v", id, score)
			}
		}
	}
}

// TestGenerateIsDeterministic ensures two runs over identical inputs produce
// the same certification order and path set.
func TestGenerateIsDeterministic(t *testing.T) {
	ctx := context.Background()
	a := assessmentWithExperience(1)
	goals := architectGoals()

	first := newTestGenerator().Generate(ctx, a, goals)
	second := newTestGenerator().Generate(ctx, a, goals)
	if first == nil || second == nil {
		t.Fatal("generation failed")
	}
	if len(first.Certifications) != len(second.Certifications) {
		t.Fatalf("cert counts differ: %d vs %d", len(first.Certifications), len(second.Certifications))
	}
	for i := range first.Certifications {
		if first.Certifications[i].ID != second.Certifications[i].ID {
			t.Fatalf("order differs at %d: %s vs %s", i, first.Certifications[i].ID, second.Certifications[i].ID)
		}
	}
	if len(first.Paths) != len(second.Paths) {
		t.Fatalf("path counts differ: %d vs %d", len(first.Paths), len(second.Paths))
	}
	for i := range first.Paths {
		if first.Paths[i] != second.Paths[i] {
			t.Fatalf("paths differ at %d: %+v vs %+v", i, first.Paths[i], second.Paths[i])
		}
	}
}

// TestGeneratePrerequisiteClosure ensures every direct and transitive
// prerequisite of an included certification is also included.
func TestGeneratePrerequisiteClosure(t *testing.T) {
	cat := catalog.New()
	roadmap := newTestGenerator().Generate(context.Background(), assessmentWithExperience(2), architectGoals())
	if roadmap == nil {
		t.Fatal("generation failed")
	}
	var check func(id string)
	check = func(id string) {
		cert, ok := cat.ByID(id)
		if !ok {
			return
		}
		for _, prereq := range cert.Prerequisites {
			if !roadmap.Contains(prereq) {
				t.Errorf("roadmap lists %s but not its prerequisite %s", id, prereq)
				continue
			}
			check(prereq)
		}
	}
	for _, c := range roadmap.Certifications {
		check(c.ID)
	}
}

// TestGenerateValidatesCleanly ensures generated roadmaps pass their own
// validation, including path referential integrity.
func TestGenerateValidatesCleanly(t *testing.T) {
	roadmap := newTestGenerator().Generate(context.Background(), assessmentWithExperience(1), architectGoals())
	if roadmap == nil {
		t.Fatal("generation failed")
	}
	if res := model.ValidateRoadmap(roadmap); !res.Valid {
		t.Fatalf("generated roadmap fails validation: %v", res.Errors)
	}
}

// TestGenerateBeginnerRanking mirrors the core scenario: a user with zero AWS
// experience targeting cloud-architect gets associate certs ranked above
// professional ones, with the foundational prerequisite pulled in.
func TestGenerateBeginnerRanking(t *testing.T) {
	roadmap := newTestGenerator().Generate(context.Background(), assessmentWithExperience(0), architectGoals())
	if roadmap == nil {
		t.Fatal("generation failed")
	}

	pos := func(id string) int {
		for i, c := range roadmap.Certifications {
			if c.ID == id {
				return i
			}
		}
		return -1
	}

	saa := pos("aws-solutions-architect-associate")
	sap := pos("aws-solutions-architect-professional")
	if saa == -1 {
		t.Fatal("expected aws-solutions-architect-associate in the roadmap")
	}
	if sap != -1 && sap < saa {
		t.Fatalf("professional cert ranked above associate: pro=%d assoc=%d", sap, saa)
	}

	ccp := pos("aws-cloud-practitioner")
	if ccp == -1 {
		t.Fatal("expected aws-cloud-practitioner to be pulled in as a prerequisite")
	}
	foundEdge := false
	for _, p := range roadmap.Paths {
		if p.From == "aws-cloud-practitioner" && p.To == "aws-solutions-architect-associate" && p.Type == model.PathPrerequisite {
			foundEdge = true
		}
	}
	if !foundEdge {
		t.Fatal("expected a prerequisite edge from aws-cloud-practitioner to aws-solutions-architect-associate")
	}
}

// TestEstimateOrdering ensures optimistic <= realistic <= conservative and
// all estimates are in the future.
func TestEstimateOrdering(t *testing.T) {
	g := newTestGenerator()
	a := assessmentWithExperience(0)
	roadmap := g.Generate(context.Background(), a, architectGoals())
	if roadmap == nil || roadmap.EstimatedCompletion == nil {
		t.Fatal("expected completion estimates")
	}
	est := roadmap.EstimatedCompletion
	now := time.Now()
	if !est.Optimistic.After(now) {
		t.Fatalf("optimistic estimate not in the future: %v", est.Optimistic)
	}
	if est.Realistic.Before(est.Optimistic) || est.Conservative.Before(est.Realistic) {
		t.Fatalf("estimates out of order: %+v", est)
	}
}

// TestEstimateExcludesCompleted ensures certs already earned contribute no
// study hours; with everything completed there is nothing left to estimate.
func TestEstimateExcludesCompleted(t *testing.T) {
	g := newTestGenerator()
	a := assessmentWithExperience(1)
	roadmap := g.Generate(context.Background(), a, architectGoals())
	if roadmap == nil || roadmap.EstimatedCompletion == nil {
		t.Fatal("expected completion estimates")
	}
	for i := range roadmap.Certifications {
		roadmap.Certifications[i].Status = model.StatusCompleted
	}
	if est := g.EstimateCompletion(roadmap, a); est != nil {
		t.Fatalf("expected nil estimate with all certs completed, got %+v", est)
	}
}

// TestEstimateNeedsHours ensures a zero-hour budget yields no estimate rather
// than a division blowup.
func TestEstimateNeedsHours(t *testing.T) {
	g := newTestGenerator()
	a := assessmentWithExperience(1)
	roadmap := g.Generate(context.Background(), a, architectGoals())
	a.Preferences.AvailableHoursPerWeek = 0
	if est := g.EstimateCompletion(roadmap, a); est != nil {
		t.Fatalf("expected nil estimate with zero weekly hours, got %+v", est)
	}
}
