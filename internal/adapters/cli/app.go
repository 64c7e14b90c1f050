package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/devbush/aai-transcribe/internal/adapters/assemblyai"
	"github.com/devbush/aai-transcribe/internal/adapters/openai"
	"github.com/devbush/aai-transcribe/internal/application"
	"github.com/devbush/aai-transcribe/internal/config"
	"github.com/devbush/aai-transcribe/internal/domain"
	"github.com/devbush/aai-transcribe/internal/ports"
)

// App holds all application dependencies
type App struct {
	Config      *config.Config
	Logger      *zap.Logger
	Fs          afero.Fs
	Provider    string
	Transcriber ports.Transcriber
	Selector    *application.FileSelector
}

// newTranscriber builds the adapter for a provider. Tests replace it.
var newTranscriber = func(provider, apiKey string, logger *zap.Logger) (ports.Transcriber, error) {
	switch provider {
	case config.ProviderAssemblyAI:
		return assemblyai.NewTranscriber(apiKey, logger), nil
	case config.ProviderOpenAI:
		return openai.NewTranscriber(apiKey, logger), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, provider)
	}
}

// NewApp creates and wires up all dependencies
func NewApp(cfg *config.Config, provider, apiKey string, logger *zap.Logger) (*App, error) {
	transcriber, err := newTranscriber(provider, apiKey, logger.Named(provider))
	if err != nil {
		return nil, err
	}

	fs := afero.NewOsFs()

	return &App{
		Config:      cfg,
		Logger:      logger,
		Fs:          fs,
		Provider:    provider,
		Transcriber: transcriber,
		Selector:    application.NewFileSelector(fs),
	}, nil
}

// NewBatchService creates a batch service reporting to observer
func (a *App) NewBatchService(observer ports.BatchObserver) *application.BatchService {
	return application.NewBatchService(a.Transcriber, a.Fs, a.Logger.Named("batch"), observer)
}
