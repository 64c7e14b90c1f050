package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/devbush/aai-transcribe/internal/adapters/cli/tui"
	"github.com/devbush/aai-transcribe/internal/application"
	"github.com/devbush/aai-transcribe/internal/config"
	"github.com/devbush/aai-transcribe/internal/domain"
	"github.com/devbush/aai-transcribe/internal/logging"
	"github.com/devbush/aai-transcribe/internal/ports"
)

// runSettings are the effective options after merging flags and config
type runSettings struct {
	Provider      string
	OutputDir     string
	Language      string
	SpeechModel   string
	Punctuate     bool
	SpeakerLabels bool
}

// resolveSettings applies flag, then config file, then built-in default.
// An empty config value counts as unset.
func resolveSettings(cfg *config.Config) runSettings {
	builtin := config.DefaultConfig().Defaults

	s := runSettings{
		Provider:      lo.CoalesceOrEmpty(providerFlag, cfg.Defaults.Provider, builtin.Provider),
		OutputDir:     lo.CoalesceOrEmpty(outputFlag, cfg.Defaults.OutputDir, builtin.OutputDir),
		Language:      lo.CoalesceOrEmpty(languageFlag, cfg.Defaults.Language, builtin.Language),
		Punctuate:     cfg.Defaults.Punctuate,
		SpeakerLabels: speakerLabelsFlag,
	}

	switch {
	case modelFlag != "":
		s.SpeechModel = modelFlag
	case s.Provider == cfg.Defaults.Provider && cfg.Defaults.SpeechModel != "":
		s.SpeechModel = cfg.Defaults.SpeechModel
	default:
		s.SpeechModel = config.DefaultModel(s.Provider)
	}

	return s
}

func runBatch(ctx context.Context, out io.Writer, args []string) error {
	if _, err := config.LoadDefaultEnv(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	settings := resolveSettings(cfg)

	// The credential is checked before any input is touched
	apiKey, err := config.Credential(settings.Provider)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(verboseFlag)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	app, err := NewApp(cfg, settings.Provider, apiKey, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	files, err := resolveInputs(app, args)
	if err != nil {
		return err
	}
	if dirFlag != "" && !quietFlag {
		fmt.Fprintf(out, "Found %d file(s) in %s\n", len(files), dirFlag)
	}

	if selectFlag {
		files, err = pickFiles(app.Fs, files)
		if err != nil {
			return err
		}
	}

	progress := tui.NewBatchProgress(out, len(files), quietFlag)
	svc := app.NewBatchService(progress)

	if err := svc.EnsureOutputDir(settings.OutputDir); err != nil {
		return err
	}

	progress.Header(settings.Language, settings.OutputDir)

	summary := svc.Run(ctx, files, application.BatchOptions{
		OutputDir:     settings.OutputDir,
		SpeakerLabels: settings.SpeakerLabels,
		Transcribe: ports.TranscribeOpts{
			LanguageCode:  settings.Language,
			Punctuate:     settings.Punctuate,
			SpeakerLabels: settings.SpeakerLabels,
			SpeechModel:   settings.SpeechModel,
		},
	})

	progress.Complete()

	if summary.ExitCode() != 0 {
		logger.Error("batch finished with failures",
			zap.String("run_id", summary.RunID),
			zap.Int("failed", summary.Failed),
			zap.Int("total", summary.Total),
		)
		return fmt.Errorf("%d of %d files failed", summary.Failed, summary.Total)
	}

	return nil
}

func resolveInputs(app *App, args []string) ([]domain.MediaFile, error) {
	if dirFlag != "" {
		return app.Selector.Resolve(application.InputSource{Dir: dirFlag})
	}

	paths, err := CollectInputs(app.Fs, append(append([]string{}, filesFlag...), args...), filesFromFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to collect inputs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: the input list is empty", domain.ErrNoMediaFiles)
	}

	return app.Selector.Resolve(application.InputSource{Files: paths})
}

func pickFiles(fs afero.Fs, files []domain.MediaFile) ([]domain.MediaFile, error) {
	items := lo.Map(files, func(f domain.MediaFile, _ int) tui.PickerItem {
		item := tui.PickerItem{Label: f.Name(), Value: f.Path}
		if info, err := fs.Stat(f.Path); err == nil {
			item.Detail = tui.FormatBytes(info.Size())
		}
		return item
	})

	selected, err := tui.RunFilePicker("Select files to transcribe:", items)
	if err != nil {
		return nil, err
	}
	if selected == nil {
		return nil, domain.ErrSelectionCancelled
	}

	return lo.Filter(files, func(f domain.MediaFile, _ int) bool {
		return lo.Contains(selected, f.Path)
	}), nil
}
