package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sheepshead/backend/internal/directory"
	"github.com/sheepshead/backend/internal/httpapi"
	"github.com/sheepshead/backend/internal/hub"
)

func main() {
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := directory.Connect()
	if err != nil {
		log.Fatal("connect room directory", zap.Error(err))
	}
	dir := directory.NewPostgres(db)

	ctx := context.Background()
	h := hub.NewHub(ctx, log)

	handler := httpapi.SetupRoutes(h, dir, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("listening", zap.String("addr", ":"+port))
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
