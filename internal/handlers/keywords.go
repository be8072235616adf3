package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/amal-alexander/autocomplete-keyword-engine/internal/config"
	"github.com/amal-alexander/autocomplete-keyword-engine/internal/keywords"
	"github.com/amal-alexander/autocomplete-keyword-engine/internal/suggest"
	"github.com/amal-alexander/autocomplete-keyword-engine/internal/validation"
)

// KeywordHandler handles the generate and export flow.
type KeywordHandler struct {
	svc   *keywords.Service
	store *keywords.Store
	cfg   *config.Config
}

// NewKeywordHandler creates a new keyword handler.
func NewKeywordHandler(svc *keywords.Service, store *keywords.Store, cfg *config.Config) *KeywordHandler {
	return &KeywordHandler{svc: svc, store: store, cfg: cfg}
}

// Index renders the seed keyword form.
func (h *KeywordHandler) Index(c fiber.Ctx) error {
	return c.Render("index", MergeBranding(fiber.Map{
		"Markets":       suggest.Markets,
		"DefaultMarket": h.cfg.DefaultMarket,
		"MaxSeeds":      validation.MaxSeeds,
	}, h.cfg))
}

// Generate runs the fetch loop over the submitted seeds and renders the
// categorized results.
func (h *KeywordHandler) Generate(c fiber.Ctx) error {
	seeds := validation.ParseSeeds(c.FormValue("seeds"))
	if len(seeds) == 0 {
		return c.Status(fiber.StatusBadRequest).Render("index", MergeBranding(fiber.Map{
			"Markets":       suggest.Markets,
			"DefaultMarket": h.cfg.DefaultMarket,
			"MaxSeeds":      validation.MaxSeeds,
			"Message":       "Enter at least one seed keyword",
		}, h.cfg))
	}

	market := suggest.MarketCode(c.FormValue("market"), h.cfg.DefaultMarket)
	rs := h.svc.Aggregate(c.Context(), seeds, market)
	h.store.Put(rs)

	return c.Render("results", MergeBranding(fiber.Map{
		"Run":    rs,
		"Groups": rs.ByGroup(),
		"Total":  len(rs.Rows),
	}, h.cfg))
}

// Export streams a run's rows as a CSV download.
func (h *KeywordHandler) Export(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid run id")
	}

	rs, ok := h.store.Get(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "run not found or expired")
	}

	data, err := rs.CSV()
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "keyword_suggestions.csv"))
	return c.Send(data)
}
