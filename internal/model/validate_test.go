package model

import (
	"strings"
	"testing"
	"time"
)

func validAssessment() *Assessment {
	a := NewAssessment()
	a.CloudProviders = []CloudProvider{{Name: "AWS", ExperienceLevel: 2}}
	a.DomainSkills = []DomainSkill{
		{Domain: "compute", Skills: []Skill{{Name: "ec2", Level: 3, YearsExperience: 2}}},
	}
	return a
}

// TestValidateAssessmentNil ensures the missing-data case yields exactly one
// error with the documented wording.
func TestValidateAssessmentNil(t *testing.T) {
	res := ValidateAssessment(nil)
	if res.Valid {
		t.Fatal("expected nil assessment to be invalid")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", res.Errors)
	}
	if res.Errors[0] != "Assessment data is missing" {
		t.Fatalf("unexpected error message: %q", res.Errors[0])
	}
}

// TestValidateAssessmentCollectsAllViolations ensures validation reports every
// problem in one pass instead of stopping at the first.
func TestValidateAssessmentCollectsAllViolations(t *testing.T) {
	a := validAssessment()
	a.CloudProviders = append(a.CloudProviders,
		CloudProvider{Name: "AWS", ExperienceLevel: 1},
		CloudProvider{Name: "Azure", ExperienceLevel: 9},
	)
	a.Preferences.AvailableHoursPerWeek = 0

	res := ValidateAssessment(a)
	if res.Valid {
		t.Fatal("expected invalid result")
	}
	if len(res.Errors) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(res.Errors), res.Errors)
	}
	joined := strings.Join(res.Errors, "; ")
	for _, want := range []string{"duplicate", "between 0 and 4", "hours per week"} {
		if !strings.Contains(joined, want) {
			t.Errorf("errors %v missing %q", res.Errors, want)
		}
	}
}

// TestValidateAssessmentValid ensures a well-formed assessment passes clean.
func TestValidateAssessmentValid(t *testing.T) {
	res := ValidateAssessment(validAssessment())
	if !res.Valid {
		t.Fatalf("expected valid, got errors: %v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", res.Errors)
	}
}

// TestValidateCareerGoals covers the primary-path requirement and priority
// bounds.
func TestValidateCareerGoals(t *testing.T) {
	g := NewCareerGoals()
	res := ValidateCareerGoals(g)
	if res.Valid {
		t.Fatal("expected goals without a primary path to be invalid")
	}
	if !strings.Contains(strings.Join(res.Errors, "; "), "Primary path is required") {
		t.Fatalf("expected primary path error, got %v", res.Errors)
	}

	g.PrimaryPath = PathCloudArchitect
	g.Priorities.Salary = 0
	res = ValidateCareerGoals(g)
	if res.Valid {
		t.Fatal("expected out-of-range priority to be invalid")
	}

	g.Priorities.Salary = 5
	res = ValidateCareerGoals(g)
	if !res.Valid {
		t.Fatalf("expected valid goals, got %v", res.Errors)
	}

	if res := ValidateCareerGoals(nil); res.Valid || res.Errors[0] != "Career goals data is missing" {
		t.Fatalf("unexpected nil result: %+v", res)
	}
}

// TestValidateRoadmapPathReferences ensures path edges must point at listed
// certifications.
func TestValidateRoadmapPathReferences(t *testing.T) {
	r := NewRoadmap()
	r.Certifications = []RoadmapCertification{
		{ID: "aws-cloud-practitioner", Status: StatusPlanned, Priority: 1, Dependencies: []string{}},
	}
	r.Paths = []PathEdge{{From: "aws-cloud-practitioner", To: "aws-solutions-architect-associate", Type: PathPrerequisite}}

	res := ValidateRoadmap(r)
	if res.Valid {
		t.Fatal("expected dangling path reference to be invalid")
	}
	if !strings.Contains(strings.Join(res.Errors, "; "), "not in the roadmap") {
		t.Fatalf("expected dangling-reference error, got %v", res.Errors)
	}

	r.Paths = nil
	if res := ValidateRoadmap(r); !res.Valid {
		t.Fatalf("expected valid roadmap, got %v", res.Errors)
	}
}

// TestValidateRoadmapTimestamps rejects updatedAt before createdAt.
func TestValidateRoadmapTimestamps(t *testing.T) {
	r := NewRoadmap()
	r.UpdatedAt = r.CreatedAt.Add(-time.Hour)
	if res := ValidateRoadmap(r); res.Valid {
		t.Fatal("expected updatedAt before createdAt to be invalid")
	}
}

// TestValidateStudyPlan covers the hour and progress bounds.
func TestValidateStudyPlan(t *testing.T) {
	p := NewStudyPlan()
	if res := ValidateStudyPlan(p); !res.Valid {
		t.Fatalf("expected default plan to be valid, got %v", res.Errors)
	}
	p.WeeklyHours = 0
	p.Progress.Percentage = 120
	res := ValidateStudyPlan(p)
	if res.Valid || len(res.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %+v", res)
	}
	if res := ValidateStudyPlan(nil); res.Valid || res.Errors[0] != "Study plan data is missing" {
		t.Fatalf("unexpected nil result: %+v", res)
	}
}
