package recommend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrMalformedItems is returned when wardrobe items are not a list of records.
	ErrMalformedItems = errors.New("items must be a list of objects")
	// ErrMalformedPreferences is returned when preferences are not a record.
	ErrMalformedPreferences = errors.New("user preferences must be an object")
	// ErrMalformedRecommendation is returned when an echoed outfit is not a record.
	ErrMalformedRecommendation = errors.New("outfit must be an object")
)

// DecodeItems reads loosely shaped wardrobe records. Missing or null fields
// become empty strings; comfort may be a number or numeric string and falls
// back to 5 when absent or unparseable.
func DecodeItems(raw []byte) ([]Item, error) {
	if isNull(raw) {
		return []Item{}, nil
	}
	var records []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedItems, err)
	}
	items := make([]Item, 0, len(records))
	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("%w: element %d is null", ErrMalformedItems, i)
		}
		id := looseString(rec["id"])
		if id == "" {
			id = looseString(rec["_id"])
		}
		items = append(items, Item{
			ID:       id,
			Category: looseString(rec["category"]),
			Color:    looseString(rec["color"]),
			Occasion: looseString(rec["occasion"]),
			Comfort:  looseComfort(rec["comfort"]),
			Tags:     looseString(rec["tags"]),
		})
	}
	return items, nil
}

// DecodePreferences reads a user record. favorite_colors may be a list or a
// single string; anything missing degrades to a neutral value.
func DecodePreferences(raw []byte) (Preferences, error) {
	if isNull(raw) {
		return Preferences{}, nil
	}
	var rec map[string]json.RawMessage
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Preferences{}, fmt.Errorf("%w: %v", ErrMalformedPreferences, err)
	}
	return Preferences{
		FavoriteColors: looseStrings(rec["favorite_colors"]),
		Style:          looseString(rec["style"]),
		BodyType:       looseString(rec["body_type"]),
	}, nil
}

// DecodeRecommendation reads a recommendation echoed back by a client, with
// the same leniency as DecodeItems. Score may be a number or numeric string.
func DecodeRecommendation(raw []byte) (Recommendation, error) {
	if isNull(raw) {
		return Recommendation{}, nil
	}
	var rec map[string]json.RawMessage
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Recommendation{}, fmt.Errorf("%w: %v", ErrMalformedRecommendation, err)
	}
	id := looseString(rec["id"])
	if id == "" {
		id = looseString(rec["_id"])
	}
	return Recommendation{
		ID:          id,
		Category:    looseString(rec["category"]),
		Color:       looseString(rec["color"]),
		Occasion:    looseString(rec["occasion"]),
		Comfort:     float64(looseComfort(rec["comfort"])),
		Score:       looseFloat(rec["score"]),
		Explanation: looseString(rec["explanation"]),
	}, nil
}

func isNull(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func looseString(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}
	return ""
}

func looseStrings(raw json.RawMessage) []string {
	if isNull(raw) {
		return nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		out := make([]string, 0, len(list))
		for _, el := range list {
			if s := looseString(el); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	if s := looseString(raw); s != "" {
		return []string{s}
	}
	return nil
}

func looseComfort(raw json.RawMessage) int {
	text := strings.TrimSpace(looseString(raw))
	if text == "" {
		return defaultComfort
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return defaultComfort
	}
	f = math.Round(f)
	if f < minComfort || f > maxComfort {
		return defaultComfort
	}
	return int(f)
}

func looseFloat(raw json.RawMessage) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(looseString(raw)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
