package server

import (
	"fmt"
	"net/http"
	"time"

	"datadrop-backend/internal/config"
	"datadrop-backend/internal/database"
	"datadrop-backend/internal/storage"
)

// Server wires configuration, database and object storage into the HTTP
// handler tree.
type Server struct {
	Config  *config.Config
	DB      *database.Instance
	Storage storage.ObjectStorage
}

// New connects the collaborators and constructs the http.Server.
func New(cfg *config.Config) (*http.Server, error) {
	db, err := database.New(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database failed to initialize: %w", err)
	}

	store, err := storage.NewS3Storage(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("object storage failed to initialize: %w", err)
	}

	s := &Server{
		Config:  cfg,
		DB:      db,
		Storage: store,
	}

	// Declare Server config
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return srv, nil
}
