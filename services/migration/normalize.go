package migration

import (
	"fmt"
	"strings"

	"kympulse/models"
)

// CategorySeparator splits "Category|Name" service strings.
const CategorySeparator = "|"

// EntryKind classifies one raw item of a professional's "servicios" list.
type EntryKind int

const (
	// Unrecognized is anything that is neither a usable object nor a string.
	Unrecognized EntryKind = iota
	// StructuredEntry is an object that already carries name and category.
	StructuredEntry
	// PipeDelimitedString is a "Category|Name" string.
	PipeDelimitedString
	// PlainString is a bare service name.
	PlainString
)

func (k EntryKind) String() string {
	switch k {
	case StructuredEntry:
		return "structured"
	case PipeDelimitedString:
		return "pipe-delimited"
	case PlainString:
		return "plain"
	default:
		return "unrecognized"
	}
}

// Classify decides which variant a raw item belongs to. Objects need truthy
// (non-empty string) name and category to count as structured.
func Classify(raw interface{}) EntryKind {
	switch v := raw.(type) {
	case map[string]interface{}:
		if nonEmptyString(v["name"]) && nonEmptyString(v["category"]) {
			return StructuredEntry
		}
		return Unrecognized
	case string:
		if strings.Contains(v, CategorySeparator) {
			return PipeDelimitedString
		}
		return PlainString
	default:
		return Unrecognized
	}
}

// NormalizeEntry maps a raw item to the canonical service shape.
func NormalizeEntry(raw interface{}) models.ServiceEntry {
	switch Classify(raw) {
	case StructuredEntry:
		m := raw.(map[string]interface{})
		return models.ServiceEntry{
			Category:  m["category"].(string),
			Name:      m["name"].(string),
			ServiceID: stringField(m["serviceId"]),
			Fields:    m,
		}
	case PipeDelimitedString:
		s := raw.(string)
		category, name := splitCategory(s)
		return models.ServiceEntry{Category: category, Name: name, ServiceID: s}
	case PlainString:
		s := raw.(string)
		return models.ServiceEntry{Category: models.DefaultCategory, Name: strings.TrimSpace(s), ServiceID: s}
	default:
		return models.ServiceEntry{Category: models.DefaultCategory}
	}
}

// NormalizeServices normalizes a whole "servicios" list, keeping its order.
func NormalizeServices(raw []interface{}) []models.ServiceEntry {
	entries := make([]models.ServiceEntry, 0, len(raw))
	for _, item := range raw {
		entries = append(entries, NormalizeEntry(item))
	}
	return entries
}

// splitCategory takes the first two "|" separated parts. An empty category falls
// back to DefaultCategory and an empty name to the whole trimmed string, so both
// are always non-empty.
func splitCategory(s string) (category, name string) {
	parts := strings.Split(s, CategorySeparator)
	category = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])
	if category == "" {
		category = models.DefaultCategory
	}
	if name == "" {
		name = strings.TrimSpace(s)
	}
	return category, name
}

// MapSpecialties replaces each specialty ID with its name, keeping unknown IDs.
func MapSpecialties(raw []interface{}, names map[string]string) []string {
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		id, ok := item.(string)
		if !ok {
			id = fmt.Sprint(item)
		}
		if name, found := names[id]; found {
			out = append(out, name)
			continue
		}
		out = append(out, id)
	}
	return out
}

func nonEmptyString(v interface{}) bool {
	s, ok := v.(string)
	return ok && s != ""
}

func stringField(v interface{}) string {
	s, _ := v.(string)
	return s
}
