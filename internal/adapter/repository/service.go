// Package repository persists every roadmap entity into a namespaced
// key-value store with versioning, integrity checking, export/import, and
// capped backups. Public entry points degrade to false/nil returns plus a
// log line; nothing here panics into the caller.
package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"cert-roadmap/internal/model"
)

// Key namespace. One key per entity type plus version, integrity, and
// timestamped backup snapshots.
const (
	keyPrefix      = "certificationRoadmap."
	KeyAssessment  = keyPrefix + "assessment"
	KeyCareerGoals = keyPrefix + "careerGoals"
	KeyRoadmap     = keyPrefix + "roadmap"
	KeyStudyPlan   = keyPrefix + "studyPlan"
	KeyResources   = keyPrefix + "resources"
	KeySettings    = keyPrefix + "settings"
	KeyVersion     = keyPrefix + "version"
	KeyIntegrity   = keyPrefix + "dataIntegrity"
	backupPrefix   = keyPrefix + "backup."
)

// DefaultBackupLimit is how many snapshots are retained before the oldest is
// evicted.
const DefaultBackupLimit = 5

// Service layers validation, date restoration, and bookkeeping over a Store.
type Service struct {
	store       Store
	version     string
	backupLimit int
}

// NewService wires the storage service. version is the data-format version
// written to the version key; backupLimit <= 0 falls back to the default.
func NewService(store Store, version string, backupLimit int) *Service {
	if backupLimit <= 0 {
		backupLimit = DefaultBackupLimit
	}
	return &Service{store: store, version: version, backupLimit: backupLimit}
}

// dataMigration upgrades stored data from one version to the next. The
// registry is the explicit extension point for format changes; it ships
// empty, so a mismatch today just fast-forwards the version key.
type dataMigration struct {
	From string
	To   string
	Run  func(ctx context.Context, store Store) error
}

var dataMigrations []dataMigration

// Init compares the stored data version with the current one and runs any
// registered migrations on mismatch, then stamps the current version.
func (s *Service) Init(ctx context.Context) error {
	raw, ok, err := s.store.Get(ctx, KeyVersion)
	if err != nil {
		return err
	}
	stored := string(raw)
	if ok && stored != s.version {
		slog.Info("stored data version differs", "stored", stored, "current", s.version)
		migrated := false
		for _, m := range dataMigrations {
			if m.From != stored {
				continue
			}
			if err := m.Run(ctx, s.store); err != nil {
				return err
			}
			slog.Info("data migration applied", "from", m.From, "to", m.To)
			stored = m.To
			migrated = true
		}
		if !migrated {
			slog.Info("no data migration registered, fast-forwarding version")
		}
	}
	return s.store.Set(ctx, KeyVersion, []byte(s.version))
}

// Version returns the data-format version this service writes.
func (s *Service) Version() string { return s.version }

// saveEntity validates, serializes, writes, and refreshes the integrity hash.
// Invalid or unserializable data is logged and reported as false.
func (s *Service) saveEntity(ctx context.Context, key, label string, v interface{}, res *model.ValidationResult) bool {
	if !res.Valid {
		slog.Error("refusing to save invalid data", "entity", label, "errors", res.Errors)
		return false
	}
	raw, err := json.Marshal(v)
	if err != nil {
		slog.Error("serialize failed", "entity", label, "error", err)
		return false
	}
	if err := s.store.Set(ctx, key, raw); err != nil {
		slog.Error("store write failed", "entity", label, "error", err)
		return false
	}
	if err := s.UpdateIntegrity(ctx); err != nil {
		slog.Warn("integrity refresh failed", "error", err)
	}
	return true
}

// loadRaw reads a key; absent keys and read errors both come back as nil.
func (s *Service) loadRaw(ctx context.Context, key string) []byte {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		slog.Error("store read failed", "key", key, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return raw
}

// SaveAssessment validates and persists the assessment. Returns false (and
// logs) instead of erroring out.
func (s *Service) SaveAssessment(ctx context.Context, a *model.Assessment) bool {
	return s.saveEntity(ctx, KeyAssessment, "assessment", a, model.ValidateAssessment(a))
}

// LoadAssessment returns the stored assessment, or nil when absent or
// undecodable.
func (s *Service) LoadAssessment(ctx context.Context) *model.Assessment {
	raw := s.loadRaw(ctx, KeyAssessment)
	if raw == nil {
		return nil
	}
	var a model.Assessment
	if err := json.Unmarshal(raw, &a); err != nil {
		slog.Error("stored assessment is corrupt", "error", err)
		return nil
	}
	return &a
}

// SaveCareerGoals validates and persists the career goals.
func (s *Service) SaveCareerGoals(ctx context.Context, g *model.CareerGoals) bool {
	return s.saveEntity(ctx, KeyCareerGoals, "careerGoals", g, model.ValidateCareerGoals(g))
}

// LoadCareerGoals returns the stored goals, or nil.
func (s *Service) LoadCareerGoals(ctx context.Context) *model.CareerGoals {
	raw := s.loadRaw(ctx, KeyCareerGoals)
	if raw == nil {
		return nil
	}
	var g model.CareerGoals
	if err := json.Unmarshal(raw, &g); err != nil {
		slog.Error("stored career goals are corrupt", "error", err)
		return nil
	}
	return &g
}

// SaveRoadmap validates and persists the roadmap.
func (s *Service) SaveRoadmap(ctx context.Context, r *model.Roadmap) bool {
	return s.saveEntity(ctx, KeyRoadmap, "roadmap", r, model.ValidateRoadmap(r))
}

// LoadRoadmap returns the stored roadmap, or nil.
func (s *Service) LoadRoadmap(ctx context.Context) *model.Roadmap {
	raw := s.loadRaw(ctx, KeyRoadmap)
	if raw == nil {
		return nil
	}
	var r model.Roadmap
	if err := json.Unmarshal(raw, &r); err != nil {
		slog.Error("stored roadmap is corrupt", "error", err)
		return nil
	}
	return &r
}

// SaveStudyPlan validates and persists the study plan.
func (s *Service) SaveStudyPlan(ctx context.Context, p *model.StudyPlan) bool {
	return s.saveEntity(ctx, KeyStudyPlan, "studyPlan", p, model.ValidateStudyPlan(p))
}

// LoadStudyPlan returns the stored study plan, or nil.
func (s *Service) LoadStudyPlan(ctx context.Context) *model.StudyPlan {
	raw := s.loadRaw(ctx, KeyStudyPlan)
	if raw == nil {
		return nil
	}
	var p model.StudyPlan
	if err := json.Unmarshal(raw, &p); err != nil {
		slog.Error("stored study plan is corrupt", "error", err)
		return nil
	}
	return &p
}

// SaveSettings persists the free-form settings object. Settings carry no
// schema; only serializability is required.
func (s *Service) SaveSettings(ctx context.Context, settings map[string]interface{}) bool {
	raw, err := json.Marshal(settings)
	if err != nil {
		slog.Error("serialize failed", "entity", "settings", "error", err)
		return false
	}
	if err := s.store.Set(ctx, KeySettings, raw); err != nil {
		slog.Error("store write failed", "entity", "settings", "error", err)
		return false
	}
	return true
}

// LoadSettings returns the stored settings with date strings restored, or nil.
func (s *Service) LoadSettings(ctx context.Context) map[string]interface{} {
	return s.loadFreeForm(ctx, KeySettings, "settings")
}

// SaveResources persists the saved-resource tracking object.
func (s *Service) SaveResources(ctx context.Context, resources map[string]interface{}) bool {
	raw, err := json.Marshal(resources)
	if err != nil {
		slog.Error("serialize failed", "entity", "resources", "error", err)
		return false
	}
	if err := s.store.Set(ctx, KeyResources, raw); err != nil {
		slog.Error("store write failed", "entity", "resources", "error", err)
		return false
	}
	return true
}

// LoadResources returns the stored resource tracking object, or nil.
func (s *Service) LoadResources(ctx context.Context) map[string]interface{} {
	return s.loadFreeForm(ctx, KeyResources, "resources")
}

func (s *Service) loadFreeForm(ctx context.Context, key, label string) map[string]interface{} {
	raw := s.loadRaw(ctx, key)
	if raw == nil {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		slog.Error("stored data is corrupt", "entity", label, "error", err)
		return nil
	}
	model.ConvertDates(m)
	return m
}

// Clear wipes every key in the namespace, backups included.
func (s *Service) Clear(ctx context.Context) error {
	keys, err := s.store.Keys(ctx, keyPrefix)
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := s.store.Delete(ctx, k); err != nil {
			return err
		}
	}
	return nil
}
