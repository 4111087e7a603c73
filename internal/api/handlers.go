// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package api

import (
	"context"
	"io"
	"time"

	"github.com/tomtom215/coolerselect/internal/cache"
	"github.com/tomtom215/coolerselect/internal/config"
	"github.com/tomtom215/coolerselect/internal/events"
	"github.com/tomtom215/coolerselect/internal/importer"
	"github.com/tomtom215/coolerselect/internal/models"
)

// CatalogStore is the catalog maintenance surface. *database.DB satisfies it.
type CatalogStore interface {
	Ping(ctx context.Context) error

	GetCooler(ctx context.Context, id int64) (*models.Cooler, error)
	ListCoolers(ctx context.Context, filter models.CoolerFilter, page models.Pagination) (*models.Page[models.Cooler], error)
	CreateCooler(ctx context.Context, c *models.Cooler) (*models.Cooler, error)
	UpdateCooler(ctx context.Context, id int64, u *models.CoolerUpdate) (*models.Cooler, error)
	DeleteCooler(ctx context.Context, id int64) error

	ListCapacities(ctx context.Context, coolerID int64) ([]models.CapacityRecord, error)
	CreateCapacity(ctx context.Context, r *models.CapacityRecord) (*models.CapacityRecord, error)
	DeleteCapacity(ctx context.Context, id int64) error

	GetCorrection(ctx context.Context, id int64) (*models.CorrectionEntry, error)
	ListCorrections(ctx context.Context, filter models.CorrectionFilter, page models.Pagination) (*models.Page[models.CorrectionEntry], error)
	CreateCorrection(ctx context.Context, e *models.CorrectionEntry) (*models.CorrectionEntry, error)
	UpdateCorrectionQuant(ctx context.Context, id int64, quant float64) (*models.CorrectionEntry, error)
	DeleteCorrection(ctx context.Context, id int64) error
}

// CatalogImporter loads CSV files into the catalog. *importer.Importer
// satisfies it.
type CatalogImporter interface {
	ImportCoolers(ctx context.Context, r io.Reader) (*importer.ImportStats, error)
	ImportCorrections(ctx context.Context, r io.Reader) (*importer.ImportStats, error)
}

// ChangeNotifier announces catalog mutations. *events.Publisher satisfies it.
type ChangeNotifier interface {
	Notify(ctx context.Context, entity events.Entity, action events.Action, entityID int64)
}

// BreakerStatus reports the catalog circuit breaker state.
// *catalog.BreakerCatalog satisfies it.
type BreakerStatus interface {
	State() string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_select.go: cooler selection
//   - handlers_coolers.go: coolers and their capacity records
//   - handlers_corrections.go: correction coefficients
//   - handlers_import.go: CSV imports
//   - handlers_health.go: health probes
type Handler struct {
	selector  cache.Selector
	store     CatalogStore
	importer  CatalogImporter
	notifier  ChangeNotifier
	breaker   BreakerStatus
	config    *config.Config
	startTime time.Time
}

// NewHandler creates the API handler. The importer, notifier and breaker
// are attached afterwards with their setters; all three are optional.
//
//	handler := api.NewHandler(selector, db, cfg)
//	handler.SetImporter(imp)
//	handler.SetNotifier(publisher)
func NewHandler(selector cache.Selector, store CatalogStore, cfg *config.Config) *Handler {
	return &Handler{
		selector:  selector,
		store:     store,
		config:    cfg,
		startTime: time.Now(),
	}
}

// SetImporter enables the import endpoints.
func (h *Handler) SetImporter(imp CatalogImporter) {
	h.importer = imp
}

// SetNotifier sets the publisher for catalog-changed events.
//
// Thread Safety: call once during startup.
func (h *Handler) SetNotifier(n ChangeNotifier) {
	h.notifier = n
}

// SetBreaker exposes the breaker state on the health endpoint.
func (h *Handler) SetBreaker(b BreakerStatus) {
	h.breaker = b
}

func (h *Handler) notify(ctx context.Context, entity events.Entity, action events.Action, id int64) {
	if h.notifier != nil {
		h.notifier.Notify(ctx, entity, action, id)
	}
}
