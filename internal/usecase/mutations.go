package usecase

import (
	"context"
	"fmt"

	"cert-roadmap/internal/model"
)

// Mutations operate on a passed-in roadmap, or on the generator's current one
// when r is nil. They are not transactional; use is single-writer.

// AddCertification appends a certification and re-runs prerequisite
// resolution for it. Adding a cert that is already listed is a no-op.
func (g *Generator) AddCertification(ctx context.Context, r *model.Roadmap, certID string) error {
	r, err := g.target(r)
	if err != nil {
		return err
	}
	if _, ok := g.catalog.ByID(certID); !ok {
		return fmt.Errorf("unknown certification %q", certID)
	}
	if r.Contains(certID) {
		return nil
	}
	g.appendCertification(r, certID, "")
	g.resolvePrerequisites(r, certID, map[string]bool{})
	g.finishMutation(ctx, r)
	return nil
}

// RemoveCertification drops a certification and every path edge touching it.
func (g *Generator) RemoveCertification(ctx context.Context, r *model.Roadmap, certID string) error {
	r, err := g.target(r)
	if err != nil {
		return err
	}
	found := false
	kept := r.Certifications[:0]
	for _, c := range r.Certifications {
		if c.ID == certID {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return fmt.Errorf("certification %q is not in the roadmap", certID)
	}
	r.Certifications = kept

	paths := r.Paths[:0]
	for _, p := range r.Paths {
		if p.From == certID || p.To == certID {
			continue
		}
		paths = append(paths, p)
	}
	r.Paths = paths
	g.finishMutation(ctx, r)
	return nil
}

// UpdateCertificationStatus sets the status of one listed certification.
func (g *Generator) UpdateCertificationStatus(ctx context.Context, r *model.Roadmap, certID string, status model.CertStatus) error {
	r, err := g.target(r)
	if err != nil {
		return err
	}
	if !model.ValidCertStatus(status) {
		return fmt.Errorf("unknown status %q", status)
	}
	for i := range r.Certifications {
		if r.Certifications[i].ID == certID {
			r.Certifications[i].Status = status
			g.finishMutation(ctx, r)
			return nil
		}
	}
	return fmt.Errorf("certification %q is not in the roadmap", certID)
}

// Reorder rewrites priorities to match orderedIDs, which must be a
// permutation of the roadmap's certification ids.
func (g *Generator) Reorder(ctx context.Context, r *model.Roadmap, orderedIDs []string) error {
	r, err := g.target(r)
	if err != nil {
		return err
	}
	if len(orderedIDs) != len(r.Certifications) {
		return fmt.Errorf("order lists %d certifications, roadmap has %d", len(orderedIDs), len(r.Certifications))
	}
	byID := map[string]model.RoadmapCertification{}
	for _, c := range r.Certifications {
		byID[c.ID] = c
	}
	reordered := make([]model.RoadmapCertification, 0, len(orderedIDs))
	for i, id := range orderedIDs {
		c, ok := byID[id]
		if !ok {
			return fmt.Errorf("certification %q is not in the roadmap", id)
		}
		delete(byID, id)
		c.Priority = i + 1
		reordered = append(reordered, c)
	}
	r.Certifications = reordered
	g.finishMutation(ctx, r)
	return nil
}

func (g *Generator) target(r *model.Roadmap) (*model.Roadmap, error) {
	if r != nil {
		return r, nil
	}
	if g.current != nil {
		return g.current, nil
	}
	return nil, fmt.Errorf("no roadmap to mutate")
}

// finishMutation re-stamps UpdatedAt and recomputes completion estimates when
// assessment data is available from storage.
func (g *Generator) finishMutation(ctx context.Context, r *model.Roadmap) {
	r.Touch()
	if g.source == nil {
		return
	}
	if a := g.source.LoadAssessment(ctx); a != nil {
		r.EstimatedCompletion = g.EstimateCompletion(r, a)
	}
}
