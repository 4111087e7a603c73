// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

/*
Package validation validates API request bodies with go-playground/validator.

One validator is shared by the process. Failures name fields by their
JSON key.

Catalog tags:

	refrigerant     a refrigerant code, case-insensitive ("r404a")
	supply_method   a supply method or alias ("direct", "pump", "直膨", "泵供液")
	working_status  SC1 to SC5, case-insensitive

Example:

	type SelectRequest struct {
	    EvaporatingTemp *float64 `json:"evaporating_temp" validate:"required"`
	    Refrigerant     string   `json:"refrigerant" validate:"omitempty,refrigerant"`
	}

	if errs := validation.Struct(&req); errs != nil {
	    // errs.Error() joins the messages; errs.Details() lists the fields
	}

Selection range rules (evaporating temperature above 10 °C, non-positive
capacity) are checked by the selection engine, not here.
*/
package validation
