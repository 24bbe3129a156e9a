package database

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned by repositories when a document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrNotList is returned when an array field holds some other value.
	ErrNotList = errors.New("field is not a list")
)

// ListField reads the array field key of a raw document. A missing or null
// field is an empty list; any other non-array value is ErrNotList.
func ListField(data map[string]interface{}, key string) ([]interface{}, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return []interface{}{}, nil
	}
	if list := ListValue(v); list != nil {
		return list, nil
	}
	return nil, fmt.Errorf("%s: %w", key, ErrNotList)
}

// ListValue returns v as a list, or nil when the field is missing or not an array.
func ListValue(v interface{}) []interface{} {
	switch list := PlainValue(v).(type) {
	case []interface{}:
		return list
	case []string:
		out := make([]interface{}, 0, len(list))
		for _, s := range list {
			out = append(out, s)
		}
		return out
	default:
		return nil
	}
}

// StringList returns the items of an array field as strings.
func StringList(v interface{}) []string {
	list := ListValue(v)
	if list == nil {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprint(item))
	}
	return out
}

// StringValue returns v when it is a string and "" otherwise.
func StringValue(v interface{}) string {
	s, _ := v.(string)
	return s
}

// PlainValue converts values decoded by the Mongo driver (primitive.M,
// primitive.D, primitive.A) into plain maps and slices, recursively.
// Values from Firestore are already plain and pass through.
func PlainValue(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.M:
		return plainMap(val)
	case map[string]interface{}:
		return plainMap(val)
	case primitive.D:
		m := make(map[string]interface{}, len(val))
		for _, e := range val {
			m[e.Key] = PlainValue(e.Value)
		}
		return m
	case primitive.A:
		return plainSlice(val)
	case []interface{}:
		return plainSlice(val)
	default:
		return v
	}
}

func plainMap(in map[string]interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(in))
	for k, v := range in {
		m[k] = PlainValue(v)
	}
	return m
}

func plainSlice(in []interface{}) []interface{} {
	out := make([]interface{}, 0, len(in))
	for _, v := range in {
		out = append(out, PlainValue(v))
	}
	return out
}
