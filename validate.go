package main

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// validateItem checks an untyped write payload against the item rules.
// For creation, title is required; for updates no single field is, but the
// allow-list, enum, and range rules apply the same way. The returned error
// message is sent verbatim to the client. Pure function, no side effects.
func validateItem(payload map[string]interface{}, forUpdate bool) error {
	if payload == nil {
		return errValidation("Request body must be JSON object")
	}

	if !forUpdate {
		if v, ok := payload["title"]; !ok || v == nil {
			return errValidation("Missing required field: title")
		}
	}
	if v, ok := payload["title"]; ok {
		if v == nil || strings.TrimSpace(stringify(v)) == "" {
			return errValidation("title is required and cannot be empty")
		}
	}

	for key := range payload {
		if _, ok := itemFields[key]; !ok {
			return errValidation("Unknown field: " + key)
		}
	}

	if v, ok := payload["type"]; ok && v != nil {
		s, isString := v.(string)
		if !isString {
			return errValidation("type must be one of: Movie, TV Show")
		}
		if _, ok := validTypes[s]; !ok {
			return errValidation("type must be one of: Movie, TV Show")
		}
	}
	if v, ok := payload["status"]; ok && v != nil {
		s, isString := v.(string)
		if !isString {
			return errValidation("status must be one of: Planned, Watching, Completed, Dropped")
		}
		if _, ok := validStatuses[s]; !ok {
			return errValidation("status must be one of: Planned, Watching, Completed, Dropped")
		}
	}

	if v, ok := payload["rating"]; ok && v != nil {
		r, ok := coerceInt(v)
		if !ok {
			return errValidation("rating must be an integer")
		}
		if r < ratingMin || r > ratingMax {
			return errValidation(fmt.Sprintf("rating must be between %d and %d", ratingMin, ratingMax))
		}
	}

	for _, field := range []string{"current_episode", "total_episodes"} {
		if v, ok := payload[field]; ok && v != nil {
			n, ok := coerceInt(v)
			if !ok {
				return errValidation(field + " must be a number")
			}
			if n < 0 {
				return errValidation(field + " must be non-negative")
			}
		}
	}

	return nil
}

// normalizeItem filters the payload to allow-listed non-null keys and coerces
// each value to its storage type. date_added is dropped: it is stamped by the
// server on creation and never changes afterwards. Callers validate first, so
// coercion here cannot fail.
func normalizeItem(payload map[string]interface{}) fieldPatch {
	var patch fieldPatch
	for key, v := range payload {
		if v == nil {
			continue
		}
		if _, ok := itemFields[key]; !ok {
			continue
		}
		switch key {
		case "title":
			title := strings.TrimSpace(stringify(v))
			patch.Title = &title
		case "type":
			if s, ok := v.(string); ok {
				patch.Type = &s
			}
		case "status":
			if s, ok := v.(string); ok {
				patch.Status = &s
			}
		case "rating":
			if n, ok := coerceInt(v); ok {
				patch.Rating = &n
			}
		case "current_episode":
			if n, ok := coerceInt(v); ok {
				patch.CurrentEpisode = &n
			}
		case "total_episodes":
			if n, ok := coerceInt(v); ok {
				patch.TotalEpisodes = &n
			}
		case "notes":
			notes := stringify(v)
			patch.Notes = &notes
		}
	}
	return patch
}

// coerceInt converts a decoded JSON value to an int. JSON numbers are
// accepted with fractional parts truncated; strings are accepted only when
// they spell a plain decimal integer.
func coerceInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		if f, err := n.Float64(); err == nil {
			return int(f), true
		}
	case float64:
		return int(n), true
	case int:
		return n, true
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return int(i), true
		}
	}
	return 0, false
}

// stringify renders a decoded JSON scalar as text, for fields the API coerces
// to strings (title, notes).
func stringify(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
