package catalog

import (
	"testing"

	"cert-roadmap/internal/model"
)

// TestCatalogLookups covers the basic query surface.
func TestCatalogLookups(t *testing.T) {
	c := New()

	cert, ok := c.ByID("aws-cloud-practitioner")
	if !ok {
		t.Fatal("aws-cloud-practitioner missing from catalog")
	}
	if cert.Level != model.LevelFoundational {
		t.Fatalf("unexpected level: %s", cert.Level)
	}

	if _, ok := c.ByID("aws-nonexistent"); ok {
		t.Fatal("lookup of unknown id should fail")
	}

	if len(c.IDs()) == 0 {
		t.Fatal("catalog is empty")
	}
}

// TestCatalogGrouping ensures All groups by provider then level and covers
// every entry exactly once.
func TestCatalogGrouping(t *testing.T) {
	c := New()
	grouped := c.All()
	total := 0
	for provider, levels := range grouped {
		if provider == "" {
			t.Fatal("entry grouped under empty provider")
		}
		for _, certs := range levels {
			total += len(certs)
		}
	}
	if total != len(c.IDs()) {
		t.Fatalf("grouping covers %d certs, catalog has %d", total, len(c.IDs()))
	}
}

// TestPrerequisitesResolve ensures every listed prerequisite is itself a
// catalog entry.
func TestPrerequisitesResolve(t *testing.T) {
	c := New()
	for _, id := range c.IDs() {
		cert, _ := c.ByID(id)
		for _, prereq := range cert.Prerequisites {
			if _, ok := c.ByID(prereq); !ok {
				t.Errorf("%s lists unknown prerequisite %s", id, prereq)
			}
		}
	}
}

// TestPrerequisiteGraphIsAcyclic walks every prerequisite chain; the
// generator's cycle guard should never have to fire on shipped data.
func TestPrerequisiteGraphIsAcyclic(t *testing.T) {
	c := New()
	var visit func(id string, seen map[string]bool) bool
	visit = func(id string, seen map[string]bool) bool {
		if seen[id] {
			return false
		}
		seen[id] = true
		defer delete(seen, id)
		cert, ok := c.ByID(id)
		if !ok {
			return true
		}
		for _, prereq := range cert.Prerequisites {
			if !visit(prereq, seen) {
				return false
			}
		}
		return true
	}
	for _, id := range c.IDs() {
		if !visit(id, map[string]bool{}) {
			t.Fatalf("prerequisite cycle reachable from %s", id)
		}
	}
}

// TestRelated ensures related links resolve to real entries both ways.
func TestRelated(t *testing.T) {
	c := New()
	related := c.Related("aws-solutions-architect-associate")
	if len(related) == 0 {
		t.Fatal("expected related certifications")
	}
	for _, id := range c.IDs() {
		cert, _ := c.ByID(id)
		for _, rel := range cert.Related {
			if _, ok := c.ByID(rel); !ok {
				t.Errorf("%s lists unknown related cert %s", id, rel)
			}
		}
	}
	if got := c.Related("unknown-cert"); got != nil {
		t.Fatalf("expected nil for unknown id, got %v", got)
	}
}

// TestProviderOf checks id-prefix derivation, including the unknown case.
func TestProviderOf(t *testing.T) {
	cases := map[string]string{
		"aws-cloud-practitioner":       "AWS",
		"azure-fundamentals":           "Azure",
		"gcp-associate-cloud-engineer": "GCP",
		"oracle-cloud-foundations":     "",
	}
	for id, want := range cases {
		if got := ProviderOf(id); got != want {
			t.Errorf("ProviderOf(%s) = %q, want %q", id, got, want)
		}
	}
}

// TestTopicWeightsNormalized ensures each topic-weight table sums to roughly 1
// so gap averaging stays meaningful.
func TestTopicWeightsNormalized(t *testing.T) {
	c := New()
	for _, id := range c.IDs() {
		weights, ok := c.TopicWeights(id)
		if !ok {
			continue
		}
		var sum float64
		for _, w := range weights {
			sum += w
		}
		if sum < 0.99 || sum > 1.01 {
			t.Errorf("%s topic weights sum to %.2f", id, sum)
		}
	}
}
