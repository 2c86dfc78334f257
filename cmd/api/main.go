package main

import (
	"os"

	"github.com/emre/schoolhub/internal/pkg/logger"
	"github.com/emre/schoolhub/internal/server"
)

// @title SchoolHub API
// @version 1.0
// @description Multi-tenant school management backend

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token issued at login

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
