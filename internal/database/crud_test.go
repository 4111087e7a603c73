// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package database

import (
	"errors"
	"testing"

	"github.com/tomtom215/coolerselect/internal/models"
)

func TestCooler_CreateGetRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	in := &models.Cooler{
		Model:            "DD-80/400",
		Series:           "DD",
		HeatExchangeArea: 400,
		TubeVolume:       floatPtr(62.5),
		TotalFanPower:    "3×0.75",
		PipeDia:          "Φ22/Φ42",
		Noise:            floatPtr(68),
		FinSpacing:       "φ=6",
		FanSpacingNum:    floatPtr(6),
	}
	created, err := db.CreateCooler(ctx, in)
	if err != nil {
		t.Fatalf("CreateCooler() error: %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Errorf("created = %+v, want id and timestamps", created)
	}

	got, err := db.GetCooler(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetCooler() error: %v", err)
	}
	if got.Model != in.Model || got.TotalFanPower != "3×0.75" || got.PipeDia != "Φ22/Φ42" {
		t.Errorf("GetCooler() = %+v", got)
	}
	if got.TubeVolume == nil || *got.TubeVolume != 62.5 {
		t.Errorf("TubeVolume = %v, want 62.5", got.TubeVolume)
	}
	if got.AirFlowRate != nil {
		t.Errorf("AirFlowRate = %v, want nil", *got.AirFlowRate)
	}
	if got.FanSpacingNum == nil || *got.FanSpacingNum != 6 {
		t.Errorf("FanSpacingNum = %v, want 6", got.FanSpacingNum)
	}
}

func TestCooler_DuplicateModelConflicts(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	first := mustCreateCooler(t, db, "DD-1", 10)
	if _, err := db.CreateCooler(ctx, &models.Cooler{Model: "DD-1", HeatExchangeArea: 11}); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate CreateCooler() error = %v, want ErrConflict", err)
	}

	// Once deleted, the model can be reused.
	if err := db.DeleteCooler(ctx, first.ID); err != nil {
		t.Fatalf("DeleteCooler() error: %v", err)
	}
	if _, err := db.CreateCooler(ctx, &models.Cooler{Model: "DD-1", HeatExchangeArea: 12}); err != nil {
		t.Errorf("CreateCooler() after delete error: %v", err)
	}
}

func TestCooler_UpdatePartial(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	c := mustCreateCooler(t, db, "DD-1", 10)
	mustCreateCooler(t, db, "DD-2", 20)

	comment := "revised sheet"
	area := 15.5
	updated, err := db.UpdateCooler(ctx, c.ID, &models.CoolerUpdate{Comment: &comment, HeatExchangeArea: &area})
	if err != nil {
		t.Fatalf("UpdateCooler() error: %v", err)
	}
	if updated.Comment != comment || updated.HeatExchangeArea != area || updated.Model != "DD-1" {
		t.Errorf("updated = %+v", updated)
	}
	if updated.UpdatedAt.Before(c.UpdatedAt) {
		t.Errorf("updated_at went backwards: %v < %v", updated.UpdatedAt, c.UpdatedAt)
	}

	taken := "DD-2"
	if _, err := db.UpdateCooler(ctx, c.ID, &models.CoolerUpdate{Model: &taken}); !errors.Is(err, ErrConflict) {
		t.Errorf("rename to existing model error = %v, want ErrConflict", err)
	}

	if _, err := db.UpdateCooler(ctx, 9999, &models.CoolerUpdate{Comment: &comment}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateCooler(missing) error = %v, want ErrNotFound", err)
	}
}

func TestCooler_DeleteCascadesToCapacities(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	c := mustCreateCooler(t, db, "DD-1", 10)
	mustCreateCapacity(t, db, c.ID, "SC1", "R404A", 15)

	if err := db.DeleteCooler(ctx, c.ID); err != nil {
		t.Fatalf("DeleteCooler() error: %v", err)
	}
	if _, err := db.GetCooler(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetCooler() after delete error = %v, want ErrNotFound", err)
	}
	if err := db.DeleteCooler(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteCooler() error = %v, want ErrNotFound", err)
	}

	var active int
	if err := db.Conn().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cooling_capacity WHERE cooler_id = ? AND is_deleted = FALSE`, c.ID).Scan(&active); err != nil {
		t.Fatalf("count error: %v", err)
	}
	if active != 0 {
		t.Errorf("active capacity records = %d, want 0", active)
	}
}

func TestListCoolers_FiltersAndPagination(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	for i, m := range []string{"DD-10", "DD-20", "DD-30", "DL-40", "DJ-50"} {
		mustCreateCooler(t, db, m, float64((i+1)*100))
	}

	page, err := db.ListCoolers(ctx, models.CoolerFilter{Model: "dd-"}, models.Pagination{Page: 1, Size: 2})
	if err != nil {
		t.Fatalf("ListCoolers() error: %v", err)
	}
	if page.Total != 3 || page.Pages != 2 || len(page.Items) != 2 {
		t.Errorf("page = total %d, pages %d, items %d; want 3, 2, 2", page.Total, page.Pages, len(page.Items))
	}
	if page.Items[0].Model != "DD-10" {
		t.Errorf("first item = %s, want DD-10", page.Items[0].Model)
	}

	page2, err := db.ListCoolers(ctx, models.CoolerFilter{Model: "dd-"}, models.Pagination{Page: 2, Size: 2})
	if err != nil {
		t.Fatalf("ListCoolers() page 2 error: %v", err)
	}
	if len(page2.Items) != 1 || page2.Items[0].Model != "DD-30" {
		t.Errorf("page 2 = %+v", page2.Items)
	}

	ranged, err := db.ListCoolers(ctx, models.CoolerFilter{
		MinHeatExchangeArea: floatPtr(200),
		MaxHeatExchangeArea: floatPtr(400),
	}, models.Pagination{Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("ListCoolers() range error: %v", err)
	}
	if ranged.Total != 3 {
		t.Errorf("range total = %d, want 3", ranged.Total)
	}
}

func TestCapacity_CreateConflictAndDelete(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	c := mustCreateCooler(t, db, "DD-1", 10)
	r := mustCreateCapacity(t, db, c.ID, "SC2", "R404A", 10)

	if _, err := db.CreateCapacity(ctx, &models.CapacityRecord{CoolerID: c.ID, WorkingStatus: "SC2", Refrigerant: "R404A", Capacity: 11}); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate CreateCapacity() error = %v, want ErrConflict", err)
	}
	if _, err := db.CreateCapacity(ctx, &models.CapacityRecord{CoolerID: 9999, WorkingStatus: "SC2", Refrigerant: "R404A", Capacity: 11}); !errors.Is(err, ErrNotFound) {
		t.Errorf("CreateCapacity(missing cooler) error = %v, want ErrNotFound", err)
	}

	list, err := db.ListCapacities(ctx, c.ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListCapacities() = %v, %v; want 1 record", list, err)
	}

	if err := db.DeleteCapacity(ctx, r.ID); err != nil {
		t.Fatalf("DeleteCapacity() error: %v", err)
	}
	if err := db.DeleteCapacity(ctx, r.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteCapacity() error = %v, want ErrNotFound", err)
	}
	if _, err := db.ListCapacities(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("ListCapacities(missing) error = %v, want ErrNotFound", err)
	}
}

func TestCorrection_CRUD(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	e, err := db.CreateCorrection(ctx, &models.CorrectionEntry{EvaporatingTemp: -10, DeltaT: 6, Quant: 1.06})
	if err != nil {
		t.Fatalf("CreateCorrection() error: %v", err)
	}
	if _, err := db.CreateCorrection(ctx, &models.CorrectionEntry{EvaporatingTemp: -10, DeltaT: 6, Quant: 2}); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate CreateCorrection() error = %v, want ErrConflict", err)
	}

	updated, err := db.UpdateCorrectionQuant(ctx, e.ID, 1.1)
	if err != nil {
		t.Fatalf("UpdateCorrectionQuant() error: %v", err)
	}
	if updated.Quant != 1.1 {
		t.Errorf("quant = %v, want 1.1", updated.Quant)
	}

	if _, err := db.CreateCorrection(ctx, &models.CorrectionEntry{EvaporatingTemp: -25, DeltaT: 8, Quant: 0.9}); err != nil {
		t.Fatalf("CreateCorrection() error: %v", err)
	}
	page, err := db.ListCorrections(ctx, models.CorrectionFilter{MaxEvaporatingTemp: floatPtr(-20)}, models.Pagination{Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("ListCorrections() error: %v", err)
	}
	if page.Total != 1 || page.Items[0].EvaporatingTemp != -25 {
		t.Errorf("filtered corrections = %+v", page.Items)
	}

	if err := db.DeleteCorrection(ctx, e.ID); err != nil {
		t.Fatalf("DeleteCorrection() error: %v", err)
	}
	if _, err := db.GetCorrection(ctx, e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetCorrection() after delete error = %v, want ErrNotFound", err)
	}
	if _, err := db.UpdateCorrectionQuant(ctx, e.ID, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateCorrectionQuant(deleted) error = %v, want ErrNotFound", err)
	}
}

func TestImportCoolers_UpsertByModel(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	batch := []models.CoolerImport{
		{
			Cooler: models.Cooler{Model: "DD-1", HeatExchangeArea: 10},
			Capacities: []models.CapacityRecord{
				{WorkingStatus: "SC1", Refrigerant: "R404A", Capacity: 15},
				{WorkingStatus: "SC2", Refrigerant: "R404A", Capacity: 10},
			},
		},
		{
			Cooler:     models.Cooler{Model: "DD-2", HeatExchangeArea: 20},
			Capacities: []models.CapacityRecord{{WorkingStatus: "SC2", Refrigerant: "R404A", Capacity: 20}},
		},
	}
	res, err := db.ImportCoolers(ctx, batch)
	if err != nil {
		t.Fatalf("ImportCoolers() error: %v", err)
	}
	if res.Inserted != 2 || res.Updated != 0 || res.Capacities != 3 {
		t.Errorf("first import = %+v", res)
	}

	// Re-import DD-1 with a new sheet: datasheet overwritten, capacities replaced.
	res, err = db.ImportCoolers(ctx, []models.CoolerImport{{
		Cooler:     models.Cooler{Model: "DD-1", HeatExchangeArea: 12, Comment: "rev B"},
		Capacities: []models.CapacityRecord{{WorkingStatus: "SC2", Refrigerant: "R404A", Capacity: 11}},
	}})
	if err != nil {
		t.Fatalf("ImportCoolers() error: %v", err)
	}
	if res.Inserted != 0 || res.Updated != 1 || res.Capacities != 1 {
		t.Errorf("second import = %+v", res)
	}

	n, _ := db.CountActiveCoolers(ctx)
	if n != 2 {
		t.Errorf("coolers = %d, want 2", n)
	}
	records, err := db.GetCapacityRecords(ctx, "SC2", "R404A")
	if err != nil {
		t.Fatalf("GetCapacityRecords() error: %v", err)
	}
	caps := map[float64]bool{}
	for _, r := range records {
		caps[r.Capacity] = true
	}
	if len(records) != 2 || !caps[11] || !caps[20] || caps[10] {
		t.Errorf("SC2 records = %+v, want capacities 11 and 20", records)
	}
	sc1, _ := db.GetCapacityRecords(ctx, "SC1", "R404A")
	if len(sc1) != 0 {
		t.Errorf("SC1 records = %+v, want retired", sc1)
	}
}

func TestUpsertCorrections(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	res, err := db.UpsertCorrections(ctx, []models.CorrectionEntry{
		{EvaporatingTemp: -10, DeltaT: 6, Quant: 1.0},
		{EvaporatingTemp: -10, DeltaT: 8, Quant: 1.2},
	})
	if err != nil || res.Inserted != 2 {
		t.Fatalf("UpsertCorrections() = %+v, %v", res, err)
	}

	res, err = db.UpsertCorrections(ctx, []models.CorrectionEntry{{EvaporatingTemp: -10, DeltaT: 6, Quant: 1.05}})
	if err != nil || res.Updated != 1 || res.Inserted != 0 {
		t.Fatalf("UpsertCorrections() = %+v, %v", res, err)
	}

	entry, err := db.FindCorrectionEntry(ctx, -10, 6)
	if err != nil || entry == nil || entry.Quant != 1.05 {
		t.Errorf("FindCorrectionEntry() = %+v, %v; want quant 1.05", entry, err)
	}
}
