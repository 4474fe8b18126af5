package session

import "strings"

// translation maps a known backend error fragment to user-presentable text
type translation struct {
	fragment string
	friendly string
}

// Known backend error fragments, checked in order. The raw message is the
// fallback for anything unknown.
var translations = []translation{
	{"file too large", "The file is too large for the conversion service."},
	{"payload too large", "The file is too large for the conversion service."},
	{"unsupported format", "This output format is not supported for the selected file."},
	{"unsupported media type", "This output format is not supported for the selected file."},
	{"could not read input", "The service could not read the uploaded file. It may be corrupt."},
	{"corrupt", "The service could not read the uploaded file. It may be corrupt."},
	{"quota", "You have reached your conversion quota. Please try again later."},
	{"rate limit", "Too many conversions at once. Please try again in a moment."},
	{"deadline exceeded", "The conversion service took too long to respond."},
	{"timeout", "The conversion service took too long to respond."},
	{"connection refused", "Could not reach the conversion service. Check your connection."},
	{"no such host", "Could not reach the conversion service. Check your connection."},
	{"dial tcp", "Could not reach the conversion service. Check your connection."},
}

// Translate maps a raw backend error message to a user-presentable one,
// falling back to the raw message when it matches nothing known.
func Translate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "The conversion failed for an unknown reason."
	}

	lowered := strings.ToLower(raw)
	for _, t := range translations {
		if strings.Contains(lowered, t.fragment) {
			return t.friendly
		}
	}
	return raw
}

// TranslateError is Translate for error values
func TranslateError(err error) string {
	if err == nil {
		return ""
	}
	return Translate(err.Error())
}
