package usecase

import (
	"context"
	"testing"

	"cert-roadmap/internal/model"
)

func generatedRoadmap(t *testing.T) (*Generator, *model.Roadmap) {
	t.Helper()
	g := newTestGenerator()
	r := g.Generate(context.Background(), assessmentWithExperience(1), architectGoals())
	if r == nil {
		t.Fatal("generation failed")
	}
	return g, r
}

// TestMutationsStampUpdatedAt ensures every mutation moves UpdatedAt forward,
// never backward.
func TestMutationsStampUpdatedAt(t *testing.T) {
	ctx := context.Background()
	g, r := generatedRoadmap(t)

	prev := r.UpdatedAt
	if err := g.UpdateCertificationStatus(ctx, r, r.Certifications[0].ID, model.StatusInProgress); err != nil {
		t.Fatalf("status update failed: %v", err)
	}
	if r.UpdatedAt.Before(prev) {
		t.Fatalf("UpdatedAt went backward: %v -> %v", prev, r.UpdatedAt)
	}
	if r.Certifications[0].Status != model.StatusInProgress {
		t.Fatalf("status not applied: %s", r.Certifications[0].Status)
	}
}

// TestAddCertification covers the unknown-id error, the already-listed no-op,
// and prerequisite pull-in.
func TestAddCertification(t *testing.T) {
	ctx := context.Background()
	g, r := generatedRoadmap(t)

	if err := g.AddCertification(ctx, r, "not-a-cert"); err == nil {
		t.Fatal("expected error for unknown certification")
	}

	before := len(r.Certifications)
	if err := g.AddCertification(ctx, r, r.Certifications[0].ID); err != nil {
		t.Fatalf("re-adding listed cert should be a no-op: %v", err)
	}
	if len(r.Certifications) != before {
		t.Fatalf("no-op add changed the list: %d -> %d", before, len(r.Certifications))
	}

	if !r.Contains("aws-security-specialty") {
		if err := g.AddCertification(ctx, r, "aws-security-specialty"); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if !r.Contains("aws-security-specialty") {
			t.Fatal("added cert missing")
		}
		// Its catalog prerequisite must come along.
		if !r.Contains("aws-solutions-architect-associate") {
			t.Fatal("prerequisite of added cert missing")
		}
	}
}

// TestRemoveCertificationStripsEdges ensures removal also drops every path
// edge touching the removed cert.
func TestRemoveCertificationStripsEdges(t *testing.T) {
	ctx := context.Background()
	g, r := generatedRoadmap(t)

	id := "aws-cloud-practitioner"
	if !r.Contains(id) {
		t.Fatalf("fixture roadmap missing %s", id)
	}
	if err := g.RemoveCertification(ctx, r, id); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if r.Contains(id) {
		t.Fatal("cert still listed after removal")
	}
	for _, p := range r.Paths {
		if p.From == id || p.To == id {
			t.Fatalf("edge touching removed cert survived: %+v", p)
		}
	}

	if err := g.RemoveCertification(ctx, r, id); err == nil {
		t.Fatal("expected error removing an absent certification")
	}
}

// TestReorder checks the permutation requirement and 1..n priority rewrite.
func TestReorder(t *testing.T) {
	ctx := context.Background()
	g, r := generatedRoadmap(t)

	ids := make([]string, len(r.Certifications))
	for i, c := range r.Certifications {
		ids[len(ids)-1-i] = c.ID
	}
	if err := g.Reorder(ctx, r, ids); err != nil {
		t.Fatalf("reorder failed: %v", err)
	}
	for i, c := range r.Certifications {
		if c.ID != ids[i] {
			t.Fatalf("order not applied at %d: %s vs %s", i, c.ID, ids[i])
		}
		if c.Priority != i+1 {
			t.Fatalf("priority not rewritten at %d: %d", i, c.Priority)
		}
	}

	if err := g.Reorder(ctx, r, ids[:1]); err == nil {
		t.Fatal("expected error for short order list")
	}
	bad := make([]string, len(ids))
	copy(bad, ids)
	bad[0] = "not-a-cert"
	if err := g.Reorder(ctx, r, bad); err == nil {
		t.Fatal("expected error for non-permutation order")
	}
}

// TestMutationsNeedATarget ensures mutations error out with neither a passed
// roadmap nor a current one.
func TestMutationsNeedATarget(t *testing.T) {
	g := newTestGenerator()
	if err := g.UpdateCertificationStatus(context.Background(), nil, "x", model.StatusPlanned); err == nil {
		t.Fatal("expected error without a roadmap")
	}
}
