// File: elements.go
// Title: OFX Element Coercion
// Description: Converts flattened OFX element text into Go types: exact
//              decimal amounts, OFX timestamps, boolean flags, and
//              enumerations. The strict flag decides between rejecting and
//              tolerating malformed values; missing optional elements are
//              never an error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-15
//
// Change History:
// - 2026-08-15 v0.1.0: Initial element coercion helpers

package aggregates

import (
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v2"

	mofxerror "github.com/msto63/mOFX/foundation/core/error"
	"github.com/msto63/mOFX/foundation/ofx/registry"
)

// OFX timestamp layouts, longest first. The optional "[+X:NAME]" timezone
// suffix is handled separately before layout matching.
var dateLayouts = []string{
	"20060102150405.000",
	"20060102150405",
	"200601021504",
	"20060102",
}

// requireString returns the value for a mandatory element
func requireString(tag string, attrs registry.Attributes, key string) (string, error) {
	value := attrs.Get(key)
	if value == "" {
		return "", mofxerror.Newf("<%s> requires element %s", tag, strings.ToUpper(key)).
			WithCode(mofxerror.CodeRequiredField).
			WithTag(tag).
			WithDetail("element", key)
	}
	return value, nil
}

// parseAmount converts an OFX amount into an exact decimal. OFX producers
// emit both dot and comma decimal separators.
func parseAmount(tag string, attrs registry.Attributes, key string, strict bool) (*apd.Decimal, error) {
	value := attrs.Get(key)
	if value == "" {
		return nil, nil
	}

	normalized := strings.ReplaceAll(value, ",", ".")

	dec, _, err := apd.NewFromString(normalized)
	if err != nil {
		if !strict {
			return nil, nil
		}
		return nil, mofxerror.Wrap(err, "invalid amount").
			WithCode(mofxerror.CodeInvalidFormat).
			WithTag(tag).
			WithDetail("element", key).
			WithDetail("value", value)
	}

	return dec, nil
}

// parseDate converts an OFX timestamp. The bracketed "[+H.MM:NAME]" offset
// convention is honored when present; bare timestamps are read as GMT per
// the OFX default.
func parseDate(tag string, attrs registry.Attributes, key string, strict bool) (time.Time, error) {
	value := attrs.Get(key)
	if value == "" {
		return time.Time{}, nil
	}

	parsed, err := parseOFXTime(value)
	if err != nil {
		if !strict {
			return time.Time{}, nil
		}
		return time.Time{}, mofxerror.Wrap(err, "invalid timestamp").
			WithCode(mofxerror.CodeInvalidFormat).
			WithTag(tag).
			WithDetail("element", key).
			WithDetail("value", value)
	}

	return parsed, nil
}

// parseOFXTime parses one OFX timestamp string
func parseOFXTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	location := time.UTC

	if open := strings.IndexByte(value, '['); open >= 0 {
		loc, err := parseOFXOffset(value[open:])
		if err != nil {
			return time.Time{}, err
		}
		location = loc
		value = strings.TrimSpace(value[:open])
	}

	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.ParseInLocation(layout, value, location)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}

// parseOFXOffset parses the "[+H.MM:NAME]" timezone suffix into a fixed
// offset location. The digits after the dot are minutes, not a decimal
// fraction: "+5.30" is five hours thirty minutes. The name part is
// optional and only informational.
func parseOFXOffset(suffix string) (*time.Location, error) {
	if !strings.HasPrefix(suffix, "[") || !strings.HasSuffix(suffix, "]") {
		return nil, mofxerror.Newf("malformed timezone suffix %q", suffix).
			WithCode(mofxerror.CodeInvalidFormat)
	}

	body := suffix[1 : len(suffix)-1]
	name := "OFX"
	if colon := strings.IndexByte(body, ':'); colon >= 0 {
		if n := strings.TrimSpace(body[colon+1:]); n != "" {
			name = n
		}
		body = body[:colon]
	}
	body = strings.TrimSpace(body)

	sign := 1
	switch {
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	case strings.HasPrefix(body, "-"):
		sign = -1
		body = body[1:]
	}

	hourPart := body
	minutePart := ""
	if dot := strings.IndexByte(body, '.'); dot >= 0 {
		hourPart = body[:dot]
		minutePart = body[dot+1:]
	}

	if hourPart == "" {
		return nil, mofxerror.Newf("malformed timezone offset %q", suffix).
			WithCode(mofxerror.CodeInvalidFormat)
	}
	hours, err := strconv.Atoi(hourPart)
	if err != nil {
		return nil, mofxerror.Wrapf(err, "malformed timezone offset %q", suffix).
			WithCode(mofxerror.CodeInvalidFormat)
	}

	minutes := 0
	if minutePart != "" {
		minutes, err = strconv.Atoi(minutePart)
		if err != nil || minutes > 59 {
			return nil, mofxerror.Newf("malformed timezone offset %q", suffix).
				WithCode(mofxerror.CodeInvalidFormat)
		}
	}

	return time.FixedZone(name, sign*(hours*3600+minutes*60)), nil
}

// parseBool converts an OFX Y/N flag
func parseBool(tag string, attrs registry.Attributes, key string, strict bool) (bool, error) {
	value := attrs.Get(key)
	switch value {
	case "", "N":
		return false, nil
	case "Y":
		return true, nil
	}

	if !strict {
		return false, nil
	}
	return false, mofxerror.Newf("<%s> element %s must be Y or N, got %q", tag, strings.ToUpper(key), value).
		WithCode(mofxerror.CodeInvalidFormat).
		WithTag(tag).
		WithDetail("element", key).
		WithDetail("value", value)
}

// parseEnum validates an element against its allowed values. In lax mode
// an unexpected value passes through unchanged.
func parseEnum(tag string, attrs registry.Attributes, key string, strict bool, allowed ...string) (string, error) {
	value := attrs.Get(key)
	if value == "" {
		return "", nil
	}

	for _, candidate := range allowed {
		if value == candidate {
			return value, nil
		}
	}

	if !strict {
		return value, nil
	}
	return "", mofxerror.Newf("<%s> element %s has unexpected value %q", tag, strings.ToUpper(key), value).
		WithCode(mofxerror.CodeInvalidFormat).
		WithTag(tag).
		WithDetail("element", key).
		WithDetail("value", value).
		WithDetail("allowed", allowed)
}
