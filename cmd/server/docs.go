// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

// Package main provides the CoolerSelect HTTP server
//
// @title CoolerSelect API
// @version 1.0
// @description Selects refrigeration cooler units from a capacity catalog for given operating conditions.
// @description
// @description ## Selection
// @description
// @description `POST /coolers/select` takes the evaporating temperature, the room temperature, the required
// @description cooling capacity, the refrigerant and the supply method. The service picks the standard
// @description working condition (SC1..SC5) for the temperature difference, divides the required capacity by
// @description the correction coefficient and the supply factor, and returns the smallest units that cover it.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. Imports get a tenth of that.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {"code": "VALIDATION_ERROR", "message": "evaporating temperature 12 is above the supported maximum 10", "details": {}},
// @description   "meta": {"timestamp": "2026-01-01T00:00:00Z", "request_id": "..."}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/coolerselect/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Selection
// @tag.description Cooler selection for operating conditions
//
// @tag.name Catalog
// @tag.description Cooler units and their rated capacities
//
// @tag.name Corrections
// @tag.description Correction coefficients by evaporating temperature and delta T
//
// @tag.name Import
// @tag.description CSV import of data sheets and correction grids
//
// @tag.name Health
// @tag.description Liveness and readiness
package main
