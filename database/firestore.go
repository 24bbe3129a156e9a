package database

import (
	"context"
	"log"
	"strings"
	"time"

	"kympulse/config"
	"kympulse/utils"

	"cloud.google.com/go/firestore"
)

// FirestoreClient is the global Firestore client instance.
var FirestoreClient *firestore.Client

// InitFirestore initializes the Firestore client through the Firebase Admin SDK.
func InitFirestore() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	app, err := utils.FirebaseApp(ctx)
	if err != nil {
		log.Fatalf("failed to initialize Firebase: %v", err)
	}
	// The client outlives the init timeout.
	client, err := app.Firestore(context.Background())
	if err != nil {
		log.Fatalf("failed to open Firestore: %v", err)
	}
	FirestoreClient = client
	log.Println("Connected to Firestore successfully!")
}

// PingFirestore reads at most one specialty document; Firestore has no ping call.
func PingFirestore(ctx context.Context) error {
	_, err := FirestoreClient.Collection(config.CollectionSpecialties).Limit(1).Documents(ctx).GetAll()
	return err
}

// ValidDocID reports whether id can address a document directly under a
// collection. Firestore treats "/" as a path separator.
func ValidDocID(id string) bool {
	return id != "" && !strings.Contains(id, "/")
}
