package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"persona-engine/internal/catalog"
	"persona-engine/internal/persona"
)

// CatalogHandler serves the active question bank and the persona catalog.
// Both are static per deployment; clients cache them by version.
type CatalogHandler struct {
	logger   *zap.Logger
	cat      *catalog.Catalog
	personas *persona.Catalog
}

func NewCatalogHandler(logger *zap.Logger, cat *catalog.Catalog, personas *persona.Catalog) *CatalogHandler {
	return &CatalogHandler{logger: logger, cat: cat, personas: personas}
}

// GetCatalog handles GET /catalog.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":             h.cat.Version,
		"min_items_per_trait": h.cat.MinItemsPerTrait,
		"questions":           h.cat.Questions(),
	})
}

// ListPersonas handles GET /personas.
func (h *CatalogHandler) ListPersonas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"personas": h.personas.Personas()})
}
