package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"cert-roadmap/internal/model"
)

// Envelope is the interchange format for export files and backup snapshots.
// Absent entities serialize as null so round-trips stay bit-compatible.
type Envelope struct {
	Version     string                 `json:"version"`
	Timestamp   time.Time              `json:"timestamp"`
	Assessment  *model.Assessment      `json:"assessment"`
	CareerGoals *model.CareerGoals     `json:"careerGoals"`
	Roadmap     *model.Roadmap         `json:"roadmap"`
	StudyPlan   *model.StudyPlan       `json:"studyPlan"`
	Settings    map[string]interface{} `json:"settings"`
}

// rawEnvelope defers entity decoding so each part can be schema-validated
// individually before typed unmarshal.
type rawEnvelope struct {
	Version     string          `json:"version"`
	Timestamp   string          `json:"timestamp"`
	Assessment  json.RawMessage `json:"assessment"`
	CareerGoals json.RawMessage `json:"careerGoals"`
	Roadmap     json.RawMessage `json:"roadmap"`
	StudyPlan   json.RawMessage `json:"studyPlan"`
	Settings    json.RawMessage `json:"settings"`
}

// ImportResult reports which parts of an envelope were applied and, per
// skipped part, why.
type ImportResult struct {
	Imported []string            `json:"imported"`
	Skipped  map[string][]string `json:"skipped"`
}

// Export assembles everything currently stored into one envelope.
func (s *Service) Export(ctx context.Context) *Envelope {
	return &Envelope{
		Version:     s.version,
		Timestamp:   time.Now(),
		Assessment:  s.LoadAssessment(ctx),
		CareerGoals: s.LoadCareerGoals(ctx),
		Roadmap:     s.LoadRoadmap(ctx),
		StudyPlan:   s.LoadStudyPlan(ctx),
		Settings:    s.LoadSettings(ctx),
	}
}

// Import applies an exported envelope. Each part is validated independently;
// parts that fail are skipped with their errors collected, parts that pass
// are saved. The version key is updated regardless of partial failure, which
// matches the export format's contract.
func (s *Service) Import(ctx context.Context, raw []byte) (*ImportResult, error) {
	if res := model.ValidateRaw(model.EntityExport, raw); !res.Valid {
		return nil, &EnvelopeError{Errors: res.Errors}
	}
	var env rawEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}

	result := &ImportResult{Imported: []string{}, Skipped: map[string][]string{}}

	importPart(result, model.EntityAssessment, env.Assessment,
		model.ValidateAssessment,
		func(a *model.Assessment) bool { return s.SaveAssessment(ctx, a) })
	importPart(result, model.EntityCareerGoals, env.CareerGoals,
		model.ValidateCareerGoals,
		func(g *model.CareerGoals) bool { return s.SaveCareerGoals(ctx, g) })
	importPart(result, model.EntityRoadmap, env.Roadmap,
		model.ValidateRoadmap,
		func(r *model.Roadmap) bool { return s.SaveRoadmap(ctx, r) })
	importPart(result, model.EntityStudyPlan, env.StudyPlan,
		model.ValidateStudyPlan,
		func(p *model.StudyPlan) bool { return s.SaveStudyPlan(ctx, p) })

	if present(env.Settings) {
		var settings map[string]interface{}
		if err := json.Unmarshal(env.Settings, &settings); err != nil {
			result.Skipped["settings"] = []string{"Settings data is not a JSON object"}
		} else if s.SaveSettings(ctx, settings) {
			result.Imported = append(result.Imported, "settings")
		} else {
			result.Skipped["settings"] = []string{"Settings could not be saved"}
		}
	}

	if err := s.store.Set(ctx, KeyVersion, []byte(s.version)); err != nil {
		slog.Error("version key update failed after import", "error", err)
	}
	return result, nil
}

// EnvelopeError reports an import payload whose envelope itself is malformed.
type EnvelopeError struct {
	Errors []string
}

func (e *EnvelopeError) Error() string {
	if len(e.Errors) == 0 {
		return "invalid export envelope"
	}
	return "invalid export envelope: " + e.Errors[0]
}

// importPart runs the raw schema check, the typed decode, and the typed
// validation for one entity, saving it only when all three pass.
func importPart[T any](result *ImportResult, entity string, raw json.RawMessage,
	validate func(*T) *model.ValidationResult, save func(*T) bool) {
	if !present(raw) {
		return
	}
	if res := model.ValidateRaw(entity, raw); !res.Valid {
		result.Skipped[entity] = res.Errors
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		result.Skipped[entity] = []string{err.Error()}
		return
	}
	if res := validate(&v); !res.Valid {
		result.Skipped[entity] = res.Errors
		return
	}
	if !save(&v) {
		result.Skipped[entity] = []string{"save failed"}
		return
	}
	result.Imported = append(result.Imported, entity)
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
