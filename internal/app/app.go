package app

import (
	"go.uber.org/zap"

	"github.com/zpeteman/content-repurposer/internal/app/pipeline"
	"github.com/zpeteman/content-repurposer/internal/app/repository"
	"github.com/zpeteman/content-repurposer/internal/config"
)

// App bundles the wired application components.
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Pipeline *pipeline.Pipeline
	Runs     repository.RunDAO
}

// NewApp assembles the App from its wired parts.
func NewApp(cfg *config.Config, logger *zap.Logger, p *pipeline.Pipeline, runs repository.RunDAO) *App {
	return &App{
		Config:   cfg,
		Logger:   logger,
		Pipeline: p,
		Runs:     runs,
	}
}

// NewLogger builds the process logger. Development mode gets human-readable
// output, production gets JSON.
func NewLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
