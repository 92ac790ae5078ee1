// Package catalog holds the static certification reference data the roadmap
// generator queries. Read-only: there is no mutation API.
package catalog

import (
	"sort"
	"strings"

	"cert-roadmap/internal/model"
)

// Catalog indexes the compiled-in certification data for lookup.
type Catalog struct {
	byID  map[string]*model.Certification
	order []string
}

// New builds the catalog indexes. Call once at startup.
func New() *Catalog {
	c := &Catalog{byID: make(map[string]*model.Certification, len(certifications))}
	for i := range certifications {
		cert := &certifications[i]
		c.byID[cert.ID] = cert
		c.order = append(c.order, cert.ID)
	}
	sort.Strings(c.order)
	return c
}

// ByID returns the certification with the given id.
func (c *Catalog) ByID(id string) (*model.Certification, bool) {
	cert, ok := c.byID[id]
	return cert, ok
}

// IDs returns every certification id in deterministic (sorted) order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// All groups the catalog by provider then level, the shape the browse UI
// consumes.
func (c *Catalog) All() map[string]map[model.CertLevel][]model.Certification {
	out := map[string]map[model.CertLevel][]model.Certification{}
	for _, id := range c.order {
		cert := c.byID[id]
		provider := ProviderOf(cert.ID)
		if out[provider] == nil {
			out[provider] = map[model.CertLevel][]model.Certification{}
		}
		out[provider][cert.Level] = append(out[provider][cert.Level], *cert)
	}
	return out
}

// Related returns the certifications the catalog links to the given id.
// Unknown ids yield an empty list.
func (c *Catalog) Related(id string) []model.Certification {
	cert, ok := c.byID[id]
	if !ok {
		return nil
	}
	out := make([]model.Certification, 0, len(cert.Related))
	for _, rid := range cert.Related {
		if rel, ok := c.byID[rid]; ok {
			out = append(out, *rel)
		}
	}
	return out
}

// PathsFor returns the career paths a certification serves, or nil when no
// mapping is known.
func (c *Catalog) PathsFor(id string) []model.CareerPath {
	return careerPathMap[id]
}

// TopicWeights returns the per-domain study weighting for a certification.
func (c *Catalog) TopicWeights(id string) (map[string]float64, bool) {
	w, ok := topicWeightMap[id]
	return w, ok
}

// ProviderOf derives the provider from a certification id prefix. Unknown
// prefixes return "".
func ProviderOf(certID string) string {
	switch {
	case strings.HasPrefix(certID, "aws-"):
		return "AWS"
	case strings.HasPrefix(certID, "azure-"):
		return "Azure"
	case strings.HasPrefix(certID, "gcp-"):
		return "GCP"
	}
	return ""
}
