// File: models/massage.go
package models

import "time"

// ServiceEvent records one massage, created when the client opens the capture page.
type ServiceEvent struct {
	ID             string    `firestore:"-" bson:"id" json:"id"`
	ProfessionalID string    `firestore:"profesionalId" bson:"profesionalId" json:"profesionalId"`
	Timestamp      time.Time `firestore:"timestamp" bson:"timestamp" json:"timestamp"`
	EventID        *string   `firestore:"eventoId" bson:"eventoId" json:"eventoId"` // null when the link had no idEvento
	UserAgent      string    `firestore:"userAgent" bson:"userAgent" json:"userAgent"`
	Platform       string    `firestore:"plataforma" bson:"plataforma" json:"plataforma"`
	Survey         *Survey   `firestore:"encuesta,omitempty" bson:"encuesta,omitempty" json:"encuesta,omitempty"`
}

// Survey holds the client's answers. Scores the client left unparsable are nil.
type Survey struct {
	Satisfaction *int `firestore:"satisfaccion" bson:"satisfaccion" json:"satisfaccion"`
	Comfort      *int `firestore:"comodidad" bson:"comodidad" json:"comodidad"`
	DurationOK   bool `firestore:"duracionOk" bson:"duracionOk" json:"duracionOk"`
}
