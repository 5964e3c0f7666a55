//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/zpeteman/content-repurposer/internal/app/api"
	"github.com/zpeteman/content-repurposer/internal/app/api/openai"
	"github.com/zpeteman/content-repurposer/internal/app/api/openai/whisper"
	"github.com/zpeteman/content-repurposer/internal/app/api/whisper_cpp"
	"github.com/zpeteman/content-repurposer/internal/app/generator"
	"github.com/zpeteman/content-repurposer/internal/app/pipeline"
	"github.com/zpeteman/content-repurposer/internal/app/repository"
	"github.com/zpeteman/content-repurposer/internal/app/repository/sqlite"
	"github.com/zpeteman/content-repurposer/internal/app/source"
	"github.com/zpeteman/content-repurposer/internal/config"
)

// provideTranscriber picks the speech-to-text backend from configuration.
func provideTranscriber(cfg *config.Config) api.Transcriber {
	if cfg.Whisper.Provider == "openai" {
		return whisper.NewRemoteTranscriber(openai.GetClient())
	}
	return whisper_cpp.NewLocalTranscriber(cfg.Whisper.BinaryPath, cfg.Whisper.ModelsDir, cfg.Whisper.Model)
}

func provideAcquirer(cfg *config.Config, logger *zap.Logger) source.Acquirer {
	return source.NewService(source.NewYtDlpDownloader(), source.NewPageExtractor(), cfg.Paths.DownloadDir, logger)
}

func provideGenerator(cfg *config.Config, logger *zap.Logger) *generator.Service {
	client := generator.NewChatClient(cfg.Generation, cfg.Credential)
	return generator.NewService(client, cfg.Generation.Timeout(), logger)
}

func provideRunDAO(cfg *config.Config) (repository.RunDAO, func(), error) {
	dao, err := sqlite.NewSQLiteRunDAO(cfg.Paths.HistoryDB)
	if err != nil {
		return nil, nil, err
	}
	return dao, func() { dao.Close() }, nil
}

func providePipeline(acquirer source.Acquirer, transcriber api.Transcriber, gen *generator.Service, runs repository.RunDAO, logger *zap.Logger) *pipeline.Pipeline {
	return pipeline.New(acquirer, transcriber, gen, runs, logger)
}

// InitializeApp wires the full application. The returned cleanup closes the
// run history database.
func InitializeApp(cfg *config.Config, logger *zap.Logger) (*App, func(), error) {
	wire.Build(
		provideTranscriber,
		provideAcquirer,
		provideGenerator,
		provideRunDAO,
		providePipeline,
		NewApp,
	)
	return nil, nil, nil
}
