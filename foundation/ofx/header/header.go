// File: header.go
// Title: OFX Header Handling
// Description: Detects, validates, and strips the header block preceding
//              the OFX body. OFXv1 uses a block of Key:Value lines, OFXv2
//              uses XML processing instructions; both are stripped so the
//              parser only ever sees tag soup.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-15
//
// Change History:
// - 2026-08-15 v0.1.0: Initial header implementation

package header

import (
	"strings"

	mofxerror "github.com/msto63/mOFX/foundation/core/error"
	mofxstringx "github.com/msto63/mOFX/foundation/utils/stringx"
)

// Version identifies the header dialect
type Version int

const (
	// V1 is the OFXv1 Key:Value header block
	V1 Version = 1

	// V2 is the OFXv2 XML declaration with an OFX processing instruction
	V2 Version = 2
)

// Header is the parsed metadata block of an OFX document
type Header struct {
	// Version of the header dialect
	Version Version

	// Fields holds the raw header entries, keys uppercased
	Fields map[string]string
}

// Get returns a header field value, or the empty string when absent
func (h *Header) Get(key string) string {
	return h.Fields[strings.ToUpper(key)]
}

// supportedSecurity lists the SECURITY values this implementation accepts.
// TYPE1 application-level encryption is not implemented.
var supportedSecurity = map[string]bool{
	"": true, "NONE": true,
}

// Strip parses and removes the header block from a raw OFX document and
// returns the header together with the remaining body text. Documents
// without any recognizable header are rejected; the body alone cannot be
// interpreted safely without knowing the declared dialect.
func Strip(text string) (*Header, string, error) {
	trimmed := strings.TrimLeft(text, " \t\r\n")

	switch {
	case strings.HasPrefix(trimmed, "OFXHEADER:"):
		return stripV1(trimmed)
	case strings.HasPrefix(trimmed, "<?xml"):
		return stripV2(trimmed)
	default:
		return nil, "", mofxerror.New("document has no recognizable OFX header").
			WithCode(mofxerror.CodeHeaderInvalid).
			WithOperation("header.Strip")
	}
}

// stripV1 parses the OFXv1 Key:Value header block. The block ends at the
// first blank line or at the first tag.
func stripV1(text string) (*Header, string, error) {
	header := &Header{Version: V1, Fields: make(map[string]string)}

	rest := text
	for {
		line := rest
		bodyAfter := ""
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			line = rest[:nl]
			bodyAfter = rest[nl+1:]
		}
		line = strings.TrimRight(line, "\r")

		if mofxstringx.IsBlank(line) || strings.HasPrefix(strings.TrimSpace(line), "<") {
			break
		}

		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			return nil, "", mofxerror.Newf("malformed header line %q", line).
				WithCode(mofxerror.CodeHeaderInvalid).
				WithOperation("header.Strip")
		}

		key := strings.ToUpper(strings.TrimSpace(line[:colon]))
		value := strings.TrimSpace(line[colon+1:])
		header.Fields[key] = value

		rest = bodyAfter
	}

	if err := validateV1(header); err != nil {
		return nil, "", err
	}

	return header, rest, nil
}

// validateV1 checks the mandatory OFXv1 header entries
func validateV1(header *Header) error {
	if header.Get("OFXHEADER") != "100" {
		return mofxerror.Newf("unsupported OFXHEADER value %q", header.Get("OFXHEADER")).
			WithCode(mofxerror.CodeHeaderUnsupported).
			WithOperation("header.Strip")
	}
	if data := header.Get("DATA"); data != "" && data != "OFXSGML" {
		return mofxerror.Newf("unsupported DATA value %q", data).
			WithCode(mofxerror.CodeHeaderUnsupported).
			WithOperation("header.Strip")
	}
	if !supportedSecurity[header.Get("SECURITY")] {
		return mofxerror.Newf("unsupported SECURITY value %q", header.Get("SECURITY")).
			WithCode(mofxerror.CodeHeaderUnsupported).
			WithOperation("header.Strip")
	}
	return nil
}

// stripV2 parses the OFXv2 XML declaration and OFX processing instruction
func stripV2(text string) (*Header, string, error) {
	header := &Header{Version: V2, Fields: make(map[string]string)}

	rest := text
	sawOFXPI := false
	for strings.HasPrefix(strings.TrimLeft(rest, " \t\r\n"), "<?") {
		rest = strings.TrimLeft(rest, " \t\r\n")
		end := strings.Index(rest, "?>")
		if end < 0 {
			return nil, "", mofxerror.New("unterminated processing instruction in header").
				WithCode(mofxerror.CodeHeaderInvalid).
				WithOperation("header.Strip")
		}

		pi := rest[2:end]
		rest = rest[end+2:]

		if strings.HasPrefix(pi, "OFX") {
			sawOFXPI = true
			if err := parsePIAttributes(pi[len("OFX"):], header.Fields); err != nil {
				return nil, "", err
			}
		}
	}

	if !sawOFXPI {
		return nil, "", mofxerror.New("missing OFX processing instruction").
			WithCode(mofxerror.CodeHeaderInvalid).
			WithOperation("header.Strip")
	}
	if v := header.Get("OFXHEADER"); v != "200" {
		return nil, "", mofxerror.Newf("unsupported OFXHEADER value %q", v).
			WithCode(mofxerror.CodeHeaderUnsupported).
			WithOperation("header.Strip")
	}
	if !supportedSecurity[header.Get("SECURITY")] {
		return nil, "", mofxerror.Newf("unsupported SECURITY value %q", header.Get("SECURITY")).
			WithCode(mofxerror.CodeHeaderUnsupported).
			WithOperation("header.Strip")
	}

	return header, rest, nil
}

// parsePIAttributes reads KEY="VALUE" pairs from a processing instruction
func parsePIAttributes(body string, fields map[string]string) error {
	rest := strings.TrimSpace(body)

	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq < 0 {
			return mofxerror.Newf("malformed header attribute near %q", rest).
				WithCode(mofxerror.CodeHeaderInvalid).
				WithOperation("header.Strip")
		}

		key := strings.ToUpper(strings.TrimSpace(rest[:eq]))
		rest = strings.TrimLeft(rest[eq+1:], " \t")

		if !strings.HasPrefix(rest, `"`) {
			return mofxerror.Newf("header attribute %s is not quoted", key).
				WithCode(mofxerror.CodeHeaderInvalid).
				WithOperation("header.Strip")
		}
		rest = rest[1:]

		closing := strings.IndexByte(rest, '"')
		if closing < 0 {
			return mofxerror.Newf("header attribute %s is not terminated", key).
				WithCode(mofxerror.CodeHeaderInvalid).
				WithOperation("header.Strip")
		}

		fields[key] = rest[:closing]
		rest = strings.TrimSpace(rest[closing+1:])
	}

	return nil
}
