// File: models/professional.go
package models

// DefaultCategory is assigned to services stored without a category.
const DefaultCategory = "Sin categoría"

// Professional is a provider record as stored in "profesionales".
// Both lists are kept raw: before migration they may hold strings,
// objects or anything else a client wrote.
type Professional struct {
	ID             string        `bson:"id" json:"id"`
	RawServices    []interface{} `bson:"servicios" json:"servicios"`
	RawSpecialties []interface{} `bson:"especialidades" json:"especialidades"`
}

// ServiceEntry is the canonical shape of one item of "servicios".
type ServiceEntry struct {
	Category  string `bson:"category" json:"category"`
	Name      string `bson:"name" json:"name"`
	ServiceID string `bson:"serviceId" json:"serviceId"`

	// Fields is the stored object when the entry was already structured;
	// writing it back keeps fields this service does not know about.
	Fields map[string]interface{} `bson:"-" json:"-"`
}

// Document returns the map written back to the store.
func (e ServiceEntry) Document() map[string]interface{} {
	if e.Fields != nil {
		return e.Fields
	}
	return map[string]interface{}{
		"category":  e.Category,
		"name":      e.Name,
		"serviceId": e.ServiceID,
	}
}

// CatalogueUpdate carries the migrated fields of one professional.
type CatalogueUpdate struct {
	Services    []ServiceEntry
	Specialties []string
}

// ServiceDocuments converts the services into store documents.
func (u CatalogueUpdate) ServiceDocuments() []map[string]interface{} {
	docs := make([]map[string]interface{}, 0, len(u.Services))
	for _, s := range u.Services {
		docs = append(docs, s.Document())
	}
	return docs
}
