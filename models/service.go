// File: models/service.go
package models

// Service is a bookable offering stored in "services".
type Service struct {
	ID              string   `bson:"id" json:"id"`
	ProfessionalIDs []string `bson:"professionalIds" json:"professionalIds"`
}

// HasProfessional reports whether the professional is already linked.
func (s *Service) HasProfessional(professionalID string) bool {
	for _, id := range s.ProfessionalIDs {
		if id == professionalID {
			return true
		}
	}
	return false
}

// Specialty is a read-only lookup entry of "especialidades".
type Specialty struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"nombre" json:"nombre"`
}
