// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/coolerselect/internal/selection"
)

// Code is the API error code for a rejected body.
const Code = "VALIDATION_ERROR"

// FieldError is one rejected field, named by its JSON key.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Message }

// Errors holds every failure found in one request body.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e))
	for i := range e {
		msgs[i] = e[i].Message
	}
	return strings.Join(msgs, "; ")
}

// Details is the error.details object of the 400 response.
func (e Errors) Details() map[string]interface{} {
	return map[string]interface{}{"fields": []FieldError(e)}
}

// domainRules are the catalog vocabulary tags, each backed by the selection
// package's parser so aliases are accepted the same way everywhere.
var domainRules = map[string]struct {
	parse   func(string) error
	message string
}{
	"refrigerant": {
		parse:   func(s string) error { _, err := selection.ParseRefrigerant(s); return err },
		message: "%s must be a known refrigerant code",
	},
	"supply_method": {
		parse:   func(s string) error { _, err := selection.ParseSupplyMethod(s); return err },
		message: "%s must be direct-expansion or pump-supplied",
	},
	"working_status": {
		parse:   func(s string) error { _, err := selection.ParseBucket(s); return err },
		message: "%s must be one of SC1, SC2, SC3, SC4, SC5",
	},
}

var (
	instance *validator.Validate
	once     sync.Once
)

// Validator returns the shared validator with the domain tags registered.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		for tag, rule := range domainRules {
			parse := rule.parse
			if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return parse(fl.Field().String()) == nil
			}); err != nil {
				panic(fmt.Sprintf("register %s: %v", tag, err))
			}
		}
		instance = v
	})
	return instance
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// Struct validates v and returns nil when it passes.
//
//	if errs := validation.Struct(&req); errs != nil {
//		rw.ErrorWithDetails(http.StatusBadRequest, validation.Code, errs.Error(), errs.Details())
//	}
func Struct(v interface{}) Errors {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Errors{{Rule: "struct", Message: err.Error()}}
	}

	out := make(Errors, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: message(fe),
		}
	}
	return out
}

func message(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()
	if rule, ok := domainRules[fe.Tag()]; ok {
		return fmt.Sprintf(rule.message, field)
	}

	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be %s or more", field, param)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be %s or less", field, param)
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, param, unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, param, unit)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}
