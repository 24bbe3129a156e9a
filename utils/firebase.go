// utils/firebase.go
package utils

import (
	"context"
	"fmt"

	"kympulse/config"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// FirebaseApp initializes the Firebase Admin app. Without FIREBASE_CREDENTIALS_FILE
// the SDK falls back to Application Default Credentials (and the emulator when
// FIRESTORE_EMULATOR_HOST is set).
func FirebaseApp(ctx context.Context) (*firebase.App, error) {
	var opts []option.ClientOption
	if path := config.AppConfig.FirebaseCredentialsFile; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	var fbConfig *firebase.Config
	if projectID := config.AppConfig.FirebaseProjectID; projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}
	return app, nil
}
