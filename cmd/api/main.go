package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"webcarros/internal/adapter/api"
	"webcarros/internal/adapter/api/handler"
	apimiddleware "webcarros/internal/adapter/api/middleware"
	"webcarros/internal/adapter/api/router"
	"webcarros/internal/adapter/repository"
	"webcarros/internal/infrastructure/firebase"
	"webcarros/internal/infrastructure/ratelimit"
	"webcarros/internal/infrastructure/storage"
	"webcarros/internal/usecase"
	"webcarros/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
		serviceAccountPath = ""
	} else {
		if serviceAccountPath == "" {
			serviceAccountPath = "./serviceAccountKey.json"
		}
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	assetStore, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer assetStore.Close()

	listingRepo := repository.NewFirestoreListingRepository(firestoreClient)

	listingUseCase := usecase.NewListingUseCase(listingRepo, assetStore)
	draftUseCase := usecase.NewDraftUseCase(assetStore, listingRepo)

	handler.Setup(listingUseCase, draftUseCase)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(limiter)

	router.Setup(e, authMiddleware, rateLimitMiddleware)

	log.Fatal(e.Start(":" + cfg.ServerPort))
}
