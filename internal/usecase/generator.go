// Package usecase implements roadmap generation: scoring the certification
// catalog against a user's assessment and career goals, resolving
// prerequisite chains, and estimating completion dates.
package usecase

import (
	"context"
	"log/slog"
	"sort"

	"cert-roadmap/internal/catalog"
	"cert-roadmap/internal/model"
)

// primaryPickCount is how many top-scored certifications seed a roadmap;
// prerequisites are pulled in on top of these.
const primaryPickCount = 5

// AssessmentSource supplies the stored assessment when mutations need to
// recompute completion estimates. The storage service satisfies it.
type AssessmentSource interface {
	LoadAssessment(ctx context.Context) *model.Assessment
}

// Generator produces and mutates roadmaps. It holds the current roadmap
// explicitly rather than in ambient globals; callers share one instance.
type Generator struct {
	catalog *catalog.Catalog
	source  AssessmentSource
	current *model.Roadmap
}

// NewGenerator wires a generator to the catalog. source may be nil; estimates
// are then only computed at generation time.
func NewGenerator(cat *catalog.Catalog, source AssessmentSource) *Generator {
	return &Generator{catalog: cat, source: source}
}

// Current returns the roadmap produced by the last Generate (or set via
// SetCurrent), or nil.
func (g *Generator) Current() *model.Roadmap { return g.current }

// SetCurrent replaces the working roadmap, e.g. after loading one from
// storage at startup.
func (g *Generator) SetCurrent(r *model.Roadmap) { g.current = r }

type scoredCert struct {
	id    string
	score float64
}

// Generate builds a roadmap from an assessment and career goals. Missing
// input is logged and yields nil; callers must null-check, nothing is thrown.
func (g *Generator) Generate(ctx context.Context, a *model.Assessment, goals *model.CareerGoals) *model.Roadmap {
	if a == nil || goals == nil {
		slog.Error("roadmap generation needs both an assessment and career goals",
			"haveAssessment", a != nil, "haveCareerGoals", goals != nil)
		return nil
	}

	scored := make([]scoredCert, 0, len(g.catalog.IDs()))
	for _, id := range g.catalog.IDs() {
		cert, _ := g.catalog.ByID(id)
		scored = append(scored, scoredCert{id: id, score: g.Score(cert, a, goals).Total})
	}
	// Descending by score; equal scores order by id so generation is
	// reproducible.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].id < scored[j].id
	})

	picks := scored
	if len(picks) > primaryPickCount {
		picks = picks[:primaryPickCount]
	}

	roadmap := model.NewRoadmap()
	roadmap.Name = "Roadmap: " + string(goals.PrimaryPath)
	roadmap.BasedOn = model.BasedOn{AssessmentID: a.ID, CareerGoalsID: goals.ID}

	visited := map[string]bool{}
	for _, pick := range picks {
		g.appendCertification(roadmap, pick.id, "")
		g.resolvePrerequisites(roadmap, pick.id, visited)
	}

	// Related edges between primary picks the catalog links to each other.
	for i := 0; i < len(picks); i++ {
		for j := i + 1; j < len(picks); j++ {
			if g.marksRelated(picks[i].id, picks[j].id) {
				roadmap.Paths = append(roadmap.Paths, model.PathEdge{
					From: picks[i].id, To: picks[j].id, Type: model.PathRelated,
				})
			}
		}
	}

	roadmap.EstimatedCompletion = g.EstimateCompletion(roadmap, a)
	g.current = roadmap
	return roadmap
}

// appendCertification adds a cert to the end of the list with the next
// priority. No-op if already listed.
func (g *Generator) appendCertification(r *model.Roadmap, certID, notes string) {
	if r.Contains(certID) {
		return
	}
	cert, ok := g.catalog.ByID(certID)
	if !ok {
		slog.Warn("skipping unknown certification", "id", certID)
		return
	}
	deps := make([]string, len(cert.Prerequisites))
	copy(deps, cert.Prerequisites)
	r.Certifications = append(r.Certifications, model.RoadmapCertification{
		ID:           certID,
		Status:       model.StatusPlanned,
		Priority:     len(r.Certifications) + 1,
		Dependencies: deps,
		Notes:        notes,
	})
}

// resolvePrerequisites walks the prerequisite chain of certID, appending any
// cert not yet listed and recording a prerequisite edge for each pair. The
// visited set terminates on a malformed (cyclic) catalog instead of recursing
// forever.
func (g *Generator) resolvePrerequisites(r *model.Roadmap, certID string, visited map[string]bool) {
	if visited[certID] {
		slog.Warn("prerequisite cycle detected in catalog", "id", certID)
		return
	}
	visited[certID] = true
	defer delete(visited, certID)

	cert, ok := g.catalog.ByID(certID)
	if !ok {
		return
	}
	for _, prereq := range cert.Prerequisites {
		if _, ok := g.catalog.ByID(prereq); !ok {
			slog.Warn("catalog lists unknown prerequisite", "cert", certID, "prerequisite", prereq)
			continue
		}
		g.appendCertification(r, prereq, "Prerequisite")
		if !g.hasEdge(r, prereq, certID, model.PathPrerequisite) {
			r.Paths = append(r.Paths, model.PathEdge{From: prereq, To: certID, Type: model.PathPrerequisite})
		}
		g.resolvePrerequisites(r, prereq, visited)
	}
}

func (g *Generator) hasEdge(r *model.Roadmap, from, to string, typ model.PathType) bool {
	for _, p := range r.Paths {
		if p.From == from && p.To == to && p.Type == typ {
			return true
		}
	}
	return false
}

// marksRelated reports whether either cert lists the other as related.
func (g *Generator) marksRelated(a, b string) bool {
	for _, rel := range g.relatedIDs(a) {
		if rel == b {
			return true
		}
	}
	for _, rel := range g.relatedIDs(b) {
		if rel == a {
			return true
		}
	}
	return false
}

func (g *Generator) relatedIDs(id string) []string {
	cert, ok := g.catalog.ByID(id)
	if !ok {
		return nil
	}
	return cert.Related
}
