package http

import (
	"errors"

	"cert-roadmap/internal/adapter/repository"
	"cert-roadmap/internal/catalog"
	"cert-roadmap/internal/model"
	"cert-roadmap/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the roadmap operations over HTTP. It is the stand-in for
// the interactive UI layer: plain JSON in, plain JSON out.
type Handler struct {
	storage   *repository.Service
	generator *usecase.Generator
	catalog   *catalog.Catalog
}

func NewHandler(storage *repository.Service, generator *usecase.Generator, cat *catalog.Catalog) *Handler {
	return &Handler{storage: storage, generator: generator, catalog: cat}
}

// Register mounts every route on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/assessment", h.GetAssessment)
	app.Post("/assessment", h.SaveAssessment)
	app.Get("/career-goals", h.GetCareerGoals)
	app.Post("/career-goals", h.SaveCareerGoals)
	app.Get("/study-plan", h.GetStudyPlan)
	app.Post("/study-plan", h.SaveStudyPlan)
	app.Get("/settings", h.GetSettings)
	app.Put("/settings", h.SaveSettings)
	app.Get("/resources", h.GetResources)
	app.Put("/resources", h.SaveResources)

	app.Post("/roadmap/generate", h.GenerateRoadmap)
	app.Get("/roadmap", h.GetRoadmap)
	app.Post("/roadmap/certifications", h.AddCertification)
	app.Delete("/roadmap/certifications/:id", h.RemoveCertification)
	app.Patch("/roadmap/certifications/:id/status", h.UpdateStatus)
	app.Post("/roadmap/reorder", h.Reorder)

	app.Get("/catalog", h.Catalog)
	app.Get("/catalog/:id", h.CatalogEntry)
	app.Get("/catalog/:id/related", h.RelatedCertifications)

	app.Get("/export", h.Export)
	app.Post("/import", h.Import)
	app.Get("/integrity", h.Integrity)

	app.Get("/backups", h.ListBackups)
	app.Post("/backups", h.CreateBackup)
	app.Post("/backups/:timestamp/restore", h.RestoreBackup)
	app.Delete("/backups/:timestamp", h.DeleteBackup)

	app.Delete("/data", h.ClearData)
}

func (h *Handler) GetAssessment(c *fiber.Ctx) error {
	a := h.storage.LoadAssessment(c.Context())
	if a == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no assessment saved"})
	}
	return c.JSON(a)
}

func (h *Handler) SaveAssessment(c *fiber.Ctx) error {
	var a model.Assessment
	if err := c.BodyParser(&a); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if a.ID == "" {
		a.ID = model.NewAssessment().ID
	}
	if res := model.ValidateAssessment(&a); !res.Valid {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(res)
	}
	if !h.storage.SaveAssessment(c.Context(), &a) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "save failed"})
	}
	return c.JSON(a)
}

func (h *Handler) GetCareerGoals(c *fiber.Ctx) error {
	g := h.storage.LoadCareerGoals(c.Context())
	if g == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no career goals saved"})
	}
	return c.JSON(g)
}

func (h *Handler) SaveCareerGoals(c *fiber.Ctx) error {
	var g model.CareerGoals
	if err := c.BodyParser(&g); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if g.ID == "" {
		g.ID = model.NewCareerGoals().ID
	}
	if res := model.ValidateCareerGoals(&g); !res.Valid {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(res)
	}
	if !h.storage.SaveCareerGoals(c.Context(), &g) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "save failed"})
	}
	return c.JSON(g)
}

func (h *Handler) GetStudyPlan(c *fiber.Ctx) error {
	p := h.storage.LoadStudyPlan(c.Context())
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no study plan saved"})
	}
	return c.JSON(p)
}

func (h *Handler) SaveStudyPlan(c *fiber.Ctx) error {
	var p model.StudyPlan
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if p.ID == "" {
		p.ID = model.NewStudyPlan().ID
	}
	if res := model.ValidateStudyPlan(&p); !res.Valid {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(res)
	}
	if !h.storage.SaveStudyPlan(c.Context(), &p) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "save failed"})
	}
	return c.JSON(p)
}

func (h *Handler) GetSettings(c *fiber.Ctx) error {
	s := h.storage.LoadSettings(c.Context())
	if s == nil {
		s = map[string]interface{}{}
	}
	return c.JSON(s)
}

func (h *Handler) SaveSettings(c *fiber.Ctx) error {
	var s map[string]interface{}
	if err := c.BodyParser(&s); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if !h.storage.SaveSettings(c.Context(), s) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "save failed"})
	}
	return c.JSON(s)
}

func (h *Handler) GetResources(c *fiber.Ctx) error {
	r := h.storage.LoadResources(c.Context())
	if r == nil {
		r = map[string]interface{}{}
	}
	return c.JSON(r)
}

func (h *Handler) SaveResources(c *fiber.Ctx) error {
	var r map[string]interface{}
	if err := c.BodyParser(&r); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if !h.storage.SaveResources(c.Context(), r) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "save failed"})
	}
	return c.JSON(r)
}

// GenerateRoadmap builds a roadmap from the stored assessment and career
// goals and persists it.
func (h *Handler) GenerateRoadmap(c *fiber.Ctx) error {
	ctx := c.Context()
	assessment := h.storage.LoadAssessment(ctx)
	goals := h.storage.LoadCareerGoals(ctx)
	roadmap := h.generator.Generate(ctx, assessment, goals)
	if roadmap == nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "an assessment and career goals must be saved before generating",
		})
	}
	if !h.storage.SaveRoadmap(ctx, roadmap) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "save failed"})
	}
	return c.JSON(roadmap)
}

func (h *Handler) GetRoadmap(c *fiber.Ctx) error {
	r := h.storage.LoadRoadmap(c.Context())
	if r == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no roadmap saved"})
	}
	return c.JSON(r)
}

type addCertReq struct {
	ID string `json:"id"`
}

func (h *Handler) AddCertification(c *fiber.Ctx) error {
	var req addCertReq
	if err := c.BodyParser(&req); err != nil || req.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return h.mutateRoadmap(c, func(r *model.Roadmap) error {
		return h.generator.AddCertification(c.Context(), r, req.ID)
	})
}

func (h *Handler) RemoveCertification(c *fiber.Ctx) error {
	id := c.Params("id")
	return h.mutateRoadmap(c, func(r *model.Roadmap) error {
		return h.generator.RemoveCertification(c.Context(), r, id)
	})
}

type statusReq struct {
	Status model.CertStatus `json:"status"`
}

func (h *Handler) UpdateStatus(c *fiber.Ctx) error {
	var req statusReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	id := c.Params("id")
	return h.mutateRoadmap(c, func(r *model.Roadmap) error {
		return h.generator.UpdateCertificationStatus(c.Context(), r, id, req.Status)
	})
}

type reorderReq struct {
	Order []string `json:"order"`
}

func (h *Handler) Reorder(c *fiber.Ctx) error {
	var req reorderReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return h.mutateRoadmap(c, func(r *model.Roadmap) error {
		return h.generator.Reorder(c.Context(), r, req.Order)
	})
}

// mutateRoadmap loads the stored roadmap, applies the mutation, and saves the
// result back.
func (h *Handler) mutateRoadmap(c *fiber.Ctx, mutate func(*model.Roadmap) error) error {
	ctx := c.Context()
	roadmap := h.storage.LoadRoadmap(ctx)
	if roadmap == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no roadmap saved"})
	}
	if err := mutate(roadmap); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	if !h.storage.SaveRoadmap(ctx, roadmap) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "save failed"})
	}
	h.generator.SetCurrent(roadmap)
	return c.JSON(roadmap)
}

func (h *Handler) Catalog(c *fiber.Ctx) error {
	return c.JSON(h.catalog.All())
}

func (h *Handler) CatalogEntry(c *fiber.Ctx) error {
	cert, ok := h.catalog.ByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown certification"})
	}
	return c.JSON(cert)
}

func (h *Handler) RelatedCertifications(c *fiber.Ctx) error {
	if _, ok := h.catalog.ByID(c.Params("id")); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown certification"})
	}
	related := h.catalog.Related(c.Params("id"))
	if related == nil {
		related = []model.Certification{}
	}
	return c.JSON(related)
}

func (h *Handler) Export(c *fiber.Ctx) error {
	env := h.storage.Export(c.Context())
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="certification-roadmap-export.json"`)
	return c.JSON(env)
}

func (h *Handler) Import(c *fiber.Ctx) error {
	result, err := h.storage.Import(c.Context(), c.Body())
	if err != nil {
		var envErr *repository.EnvelopeError
		if errors.As(err, &envErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": envErr.Errors})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

func (h *Handler) Integrity(c *fiber.Ctx) error {
	ok, err := h.storage.VerifyIntegrity(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"ok": ok})
}

func (h *Handler) ListBackups(c *fiber.Ctx) error {
	stamps, err := h.storage.ListBackups(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if stamps == nil {
		stamps = []string{}
	}
	return c.JSON(stamps)
}

func (h *Handler) CreateBackup(c *fiber.Ctx) error {
	ts, err := h.storage.CreateBackup(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"timestamp": ts})
}

func (h *Handler) RestoreBackup(c *fiber.Ctx) error {
	result, err := h.storage.RestoreBackup(c.Context(), c.Params("timestamp"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

func (h *Handler) DeleteBackup(c *fiber.Ctx) error {
	if err := h.storage.DeleteBackup(c.Context(), c.Params("timestamp")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) ClearData(c *fiber.Ctx) error {
	if err := h.storage.Clear(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	h.generator.SetCurrent(nil)
	return c.SendStatus(fiber.StatusNoContent)
}
