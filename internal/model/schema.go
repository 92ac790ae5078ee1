package model

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Entity names accepted by ValidateRaw.
const (
	EntityAssessment  = "assessment"
	EntityCareerGoals = "careerGoals"
	EntityRoadmap     = "roadmap"
	EntityStudyPlan   = "studyPlan"
	EntityExport      = "export"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

var schemaFiles = map[string]string{
	EntityAssessment:  "schema/assessment.schema.json",
	EntityCareerGoals: "schema/careergoals.schema.json",
	EntityRoadmap:     "schema/roadmap.schema.json",
	EntityStudyPlan:   "schema/studyplan.schema.json",
	EntityExport:      "schema/export.schema.json",
}

var entityLabels = map[string]string{
	EntityAssessment:  "Assessment",
	EntityCareerGoals: "Career goals",
	EntityRoadmap:     "Roadmap",
	EntityStudyPlan:   "Study plan",
	EntityExport:      "Export",
}

// fieldLabels maps schema property names to the wording the UI shows.
var fieldLabels = map[string]string{
	"cloudProviders":      "Cloud providers",
	"domainSkills":        "Domain skills",
	"certifications":      "Certifications",
	"preferences":         "Preferences",
	"timestamp":           "Timestamp",
	"primaryPath":         "Primary path",
	"secondaryPaths":      "Secondary paths",
	"targetRoles":         "Target roles",
	"priorities":          "Priorities",
	"industryFocus":       "Industry focus",
	"timelineGoals":       "Timeline goals",
	"paths":               "Paths",
	"estimatedCompletion": "Estimated completion",
	"weeklyHours":         "Weekly hours",
	"startDate":           "Start date",
	"targetEndDate":       "Target end date",
	"currentWeek":         "Current week",
	"topics":              "Topics",
	"milestones":          "Milestones",
	"progress":            "Progress",
	"version":             "Version",
	"settings":            "Settings",
}

var compiledSchemas = map[string]*gojsonschema.Schema{}

func init() {
	for entity, path := range schemaFiles {
		raw, err := schemaFS.ReadFile(path)
		if err != nil {
			panic(fmt.Sprintf("model: missing embedded schema %s: %v", path, err))
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			panic(fmt.Sprintf("model: invalid embedded schema %s: %v", path, err))
		}
		compiledSchemas[entity] = schema
	}
}

// ValidateRaw validates an untyped JSON payload against the embedded schema
// for the named entity. It is the front door for imported data, before any
// typed decoding happens. Violations are reported with humanized field names.
func ValidateRaw(entity string, raw []byte) *ValidationResult {
	res := newResult()
	label, ok := entityLabels[entity]
	if !ok {
		res.fail("Unknown entity %q", entity)
		return res
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		res.fail("%s data is missing", label)
		return res
	}
	schema, ok := compiledSchemas[entity]
	if !ok {
		res.fail("No schema registered for %q", entity)
		return res
	}
	outcome, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		res.fail("%s data is not valid JSON: %v", label, err)
		return res
	}
	for _, e := range outcome.Errors() {
		res.fail("%s", humanizeSchemaError(e))
	}
	return res
}

// humanizeSchemaError rewrites the leading field segment of a schema error so
// messages read "Cloud providers: Invalid type. ..." instead of raw JSON keys.
func humanizeSchemaError(e gojsonschema.ResultError) string {
	field := e.Field()
	if field == "(root)" {
		return e.Description()
	}
	segments := strings.Split(field, ".")
	if label, ok := fieldLabels[segments[0]]; ok {
		segments[0] = label
	}
	return strings.Join(segments, ".") + ": " + e.Description()
}
