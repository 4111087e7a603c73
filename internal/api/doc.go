// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

/*
Package api provides the HTTP REST API of CoolerSelect.

Routes (prefix /api/v1):

	POST   /coolers/select               rank units for an operating requirement
	GET    /coolers                      list units (model, series, area filters; page, size)
	POST   /coolers                      create a unit
	GET    /coolers/{id}                 get a unit
	PUT    /coolers/{id}                 partial update
	DELETE /coolers/{id}                 soft delete, including its capacity records
	GET    /coolers/{id}/capacities      list rated capacities
	POST   /coolers/{id}/capacities      add a rated capacity
	DELETE /capacities/{id}              soft delete a rated capacity
	GET    /corrections                  list correction coefficients
	POST   /corrections                  add a coefficient
	GET    /corrections/{id}             get a coefficient
	PUT    /corrections/{id}             change a coefficient
	DELETE /corrections/{id}             soft delete a coefficient
	POST   /import/coolers               CSV data sheet upload
	POST   /import/corrections           CSV correction grid upload
	GET    /health, /health/live, /health/ready

Plus /metrics (Prometheus) and /swagger/* (OpenAPI UI).

Every JSON response uses the APIResponse envelope:

	{
	  "success": false,
	  "error": {"code": "VALIDATION_ERROR", "message": "...", "details": {...}},
	  "meta": {"timestamp": "...", "query_time_ms": 3, "request_id": "..."}
	}

Selection errors map to status codes as follows: invalid conditions are
400, catalog failures and an open breaker are 503, catalog timeouts are 504.
Store errors map database.ErrNotFound to 404 and database.ErrConflict to 409.

Every successful catalog mutation is announced through the ChangeNotifier so
that cached selections are purged.

Usage:

	handler := api.NewHandler(selector, db, cfg)
	handler.SetImporter(imp)
	handler.SetNotifier(publisher)
	handler.SetBreaker(breaker)

	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security))
	http.ListenAndServe(":8080", api.NewRouter(handler, mw).SetupChi())
*/
package api
