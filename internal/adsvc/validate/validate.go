// Package validate checks create-ad request bodies before they reach the
// store. Field messages come from a catalog supplied at construction so
// deployments can localize them without touching validation logic.
package validate

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/duofinder/duo-services/internal/adsvc/apperr"
)

// CreateAdRequest mirrors the create-ad body. Pointer fields keep
// "missing" distinct from a zero value.
type CreateAdRequest struct {
	Name            *string `json:"name" validate:"required"`
	YearsPlaying    *int    `json:"yearsPlaying" validate:"required,min=0"`
	Discord         *string `json:"discord" validate:"required"`
	WeekDays        *[]int  `json:"weekDays" validate:"required,dive,min=0,max=6"`
	HourStart       *string `json:"hourStart" validate:"required"`
	HourEnd         *string `json:"hourEnd" validate:"required"`
	UseVoiceChannel *bool   `json:"useVoiceChannel" validate:"required"`
}

// Catalog maps field names to user-facing messages, one entry for a
// missing field and one for a type/content mismatch.
type Catalog struct {
	Required  map[string]string
	WrongType map[string]string
}

func DefaultCatalog() Catalog {
	return Catalog{
		Required: map[string]string{
			"name":            "name is required.",
			"yearsPlaying":    "yearsPlaying is required.",
			"discord":         "discord is required.",
			"weekDays":        "weekDays is required.",
			"hourStart":       "hourStart is required.",
			"hourEnd":         "hourEnd is required.",
			"useVoiceChannel": "useVoiceChannel is required.",
		},
		WrongType: map[string]string{
			"name":            "name must be a string.",
			"yearsPlaying":    "yearsPlaying must be a number.",
			"discord":         "discord must be a string.",
			"weekDays":        "weekDays must be an array of numbers 0-6. Ex: [5,6,1].",
			"hourStart":       "hourStart must be a string. Ex: 00:00.",
			"hourEnd":         "hourEnd must be a string. Ex: 01:00.",
			"useVoiceChannel": "useVoiceChannel must be a boolean.",
		},
	}
}

func (c Catalog) required(field string) string {
	if m, ok := c.Required[field]; ok {
		return m
	}
	return field + " is required."
}

func (c Catalog) wrongType(field string) string {
	if m, ok := c.WrongType[field]; ok {
		return m
	}
	return field + " has the wrong type."
}

type Validator struct {
	validate *validator.Validate
	catalog  Catalog
}

func New(catalog Catalog) *Validator {
	v := validator.New()

	// report json field names, not Go struct names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v, catalog: catalog}
}

// CreateAd decodes and validates a create-ad body. On failure it returns
// an apperr validation error enumerating every violated field.
func (v *Validator) CreateAd(body io.Reader) (*CreateAdRequest, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, apperr.Validation("request body is not valid JSON", nil)
	}

	// Unmarshal, unlike a streaming Decode, rejects trailing garbage
	// after the object.
	var object map[string]json.RawMessage
	if err := json.Unmarshal(raw, &object); err != nil {
		return nil, apperr.Validation("request body is not valid JSON", nil)
	}

	// decode field by field so every type mismatch is reported, not just
	// the first one the decoder hits
	var req CreateAdRequest
	violations := map[string]string{}
	for _, f := range []struct {
		name   string
		target interface{}
	}{
		{"name", &req.Name},
		{"yearsPlaying", &req.YearsPlaying},
		{"discord", &req.Discord},
		{"weekDays", &req.WeekDays},
		{"hourStart", &req.HourStart},
		{"hourEnd", &req.HourEnd},
		{"useVoiceChannel", &req.UseVoiceChannel},
	} {
		rawField, ok := object[f.name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(rawField, f.target); err != nil {
			violations[f.name] = v.catalog.wrongType(f.name)
		}
	}

	if err := v.validate.Struct(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				field := rootField(fe.Field())
				// a mistyped field is also nil, keep the type message
				if _, seen := violations[field]; seen {
					continue
				}
				if fe.Tag() == "required" {
					violations[field] = v.catalog.required(field)
				} else {
					violations[field] = v.catalog.wrongType(field)
				}
			}
		}
	}

	if len(violations) > 0 {
		return nil, apperr.Validation("invalid ad payload", violations)
	}

	return &req, nil
}

// rootField strips nested element paths like "weekDays[2]" or
// "weekDays.0" down to the top-level field name.
func rootField(name string) string {
	if i := strings.IndexAny(name, "[."); i >= 0 {
		return name[:i]
	}
	return name
}
