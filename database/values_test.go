package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPlainValue_ConvertsMongoTypes(t *testing.T) {
	in := primitive.A{
		"Masajes|Relajante",
		primitive.D{{Key: "category", Value: "Masajes"}, {Key: "name", Value: "Relajante"}},
		primitive.M{"tags": primitive.A{"a", "b"}},
	}

	assert.Equal(t, []interface{}{
		"Masajes|Relajante",
		map[string]interface{}{"category": "Masajes", "name": "Relajante"},
		map[string]interface{}{"tags": []interface{}{"a", "b"}},
	}, PlainValue(in))
}

func TestListValue(t *testing.T) {
	assert.Nil(t, ListValue(nil))
	assert.Nil(t, ListValue("Masajes"))
	assert.Equal(t, []interface{}{"a", "b"}, ListValue([]string{"a", "b"}))
	assert.Equal(t, []interface{}{1, "x"}, ListValue([]interface{}{1, "x"}))
}

func TestStringList(t *testing.T) {
	assert.Nil(t, StringList(nil))
	assert.Equal(t, []string{"esp1", "42"}, StringList(primitive.A{"esp1", int32(42)}))
}

func TestValidDocID(t *testing.T) {
	assert.True(t, ValidDocID("Masajes|Relajante"))
	assert.False(t, ValidDocID(""))
	assert.False(t, ValidDocID("a/b"))
}
