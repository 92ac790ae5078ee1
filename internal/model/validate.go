package model

import "fmt"

// ValidationResult collects every violation found in one pass so the UI can
// show them all at once.
type ValidationResult struct {
	Valid  bool     `json:"isValid"`
	Errors []string `json:"errors"`
}

func newResult() *ValidationResult {
	return &ValidationResult{Valid: true, Errors: []string{}}
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// ValidateAssessment checks an assessment against the shape rules: unique
// provider and domain names, levels within range, positive weekly hours.
// It is structural only; it does not cross-check against the catalog.
func ValidateAssessment(a *Assessment) *ValidationResult {
	res := newResult()
	if a == nil {
		res.fail("Assessment data is missing")
		return res
	}
	if a.ID == "" {
		res.fail("Assessment ID is missing")
	}
	if a.Timestamp.IsZero() {
		res.fail("Assessment timestamp is missing")
	}
	seenProviders := map[string]bool{}
	for _, p := range a.CloudProviders {
		if p.Name == "" {
			res.fail("Cloud providers must all have a name")
			continue
		}
		if seenProviders[p.Name] {
			res.fail("Cloud providers contain a duplicate entry for %q", p.Name)
		}
		seenProviders[p.Name] = true
		if p.ExperienceLevel < 0 || p.ExperienceLevel > 4 {
			res.fail("Cloud provider %q experience level must be between 0 and 4", p.Name)
		}
	}
	seenDomains := map[string]bool{}
	for _, d := range a.DomainSkills {
		if d.Domain == "" {
			res.fail("Domain skills must all have a domain name")
			continue
		}
		if seenDomains[d.Domain] {
			res.fail("Domain skills contain a duplicate entry for %q", d.Domain)
		}
		seenDomains[d.Domain] = true
		for _, s := range d.Skills {
			if s.Level < 1 || s.Level > 4 {
				res.fail("Skill %q in domain %q has level outside 1-4", s.Name, d.Domain)
			}
			if s.YearsExperience < 0 {
				res.fail("Skill %q in domain %q has negative years of experience", s.Name, d.Domain)
			}
		}
	}
	for _, c := range a.Certifications {
		if c.ID == "" || c.Name == "" {
			res.fail("Achieved certifications must have an id and a name")
			break
		}
	}
	if a.Preferences.AvailableHoursPerWeek <= 0 {
		res.fail("Available hours per week must be greater than zero")
	}
	return res
}

// ValidateCareerGoals checks the goals shape: primary path set and known,
// every priority weight inside 1-5.
func ValidateCareerGoals(g *CareerGoals) *ValidationResult {
	res := newResult()
	if g == nil {
		res.fail("Career goals data is missing")
		return res
	}
	if g.ID == "" {
		res.fail("Career goals ID is missing")
	}
	if g.PrimaryPath == "" {
		res.fail("Primary path is required")
	} else if !validCareerPath(g.PrimaryPath) {
		res.fail("Primary path %q is not a known career path", g.PrimaryPath)
	}
	for _, p := range g.SecondaryPaths {
		if !validCareerPath(p) {
			res.fail("Secondary path %q is not a known career path", p)
		}
	}
	checkPriority := func(name string, v int) {
		if v < 1 || v > 5 {
			res.fail("Priority %q must be between 1 and 5", name)
		}
	}
	checkPriority("salary", g.Priorities.Salary)
	checkPriority("workLifeBalance", g.Priorities.WorkLifeBalance)
	checkPriority("jobSecurity", g.Priorities.JobSecurity)
	checkPriority("remoteWork", g.Priorities.RemoteWork)
	checkPriority("technicalDepth", g.Priorities.TechnicalDepth)
	checkPriority("careerGrowth", g.Priorities.CareerGrowth)
	for _, t := range g.TimelineGoals {
		if t.Milestone == "" {
			res.fail("Timeline goals must all have a milestone name")
			break
		}
	}
	return res
}

// ValidateRoadmap checks the roadmap shape, including that every path edge
// references a certification present in the roadmap.
func ValidateRoadmap(r *Roadmap) *ValidationResult {
	res := newResult()
	if r == nil {
		res.fail("Roadmap data is missing")
		return res
	}
	if r.ID == "" {
		res.fail("Roadmap ID is missing")
	}
	if r.UpdatedAt.Before(r.CreatedAt) {
		res.fail("Roadmap updated time precedes its creation time")
	}
	listed := map[string]bool{}
	for i, c := range r.Certifications {
		if c.ID == "" {
			res.fail("Certification at position %d has no id", i)
			continue
		}
		if listed[c.ID] {
			res.fail("Certification %q is listed more than once", c.ID)
		}
		listed[c.ID] = true
		if !ValidCertStatus(c.Status) {
			res.fail("Certification %q has unknown status %q", c.ID, c.Status)
		}
		if c.Priority < 1 {
			res.fail("Certification %q has priority below 1", c.ID)
		}
	}
	for _, p := range r.Paths {
		switch p.Type {
		case PathPrerequisite, PathRelated, PathAlternative:
		default:
			res.fail("Path %s -> %s has unknown type %q", p.From, p.To, p.Type)
		}
		if !listed[p.From] {
			res.fail("Path references %q which is not in the roadmap", p.From)
		}
		if !listed[p.To] {
			res.fail("Path references %q which is not in the roadmap", p.To)
		}
	}
	return res
}

// ValidateStudyPlan checks the study plan shape.
func ValidateStudyPlan(p *StudyPlan) *ValidationResult {
	res := newResult()
	if p == nil {
		res.fail("Study plan data is missing")
		return res
	}
	if p.ID == "" {
		res.fail("Study plan ID is missing")
	}
	if p.WeeklyHours <= 0 {
		res.fail("Weekly hours must be greater than zero")
	}
	if p.CurrentWeek < 0 {
		res.fail("Current week cannot be negative")
	}
	for _, t := range p.Topics {
		if t.ID == "" || t.Name == "" {
			res.fail("Topics must all have an id and a name")
			break
		}
	}
	for _, m := range p.Milestones {
		if m.Week < 0 {
			res.fail("Milestone %q has a negative week", m.Name)
		}
	}
	if p.Progress.Percentage < 0 || p.Progress.Percentage > 100 {
		res.fail("Progress percentage must be between 0 and 100")
	}
	return res
}

func validCareerPath(p CareerPath) bool {
	for _, v := range CareerPaths {
		if v == p {
			return true
		}
	}
	return false
}
