package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/devbush/aai-transcribe/internal/config"
)

var (
	// Input flags
	filesFlag     []string
	filesFromFlag string
	dirFlag       string

	// Transcription flags
	outputFlag        string
	languageFlag      string
	speakerLabelsFlag bool
	providerFlag      string
	modelFlag         string

	// Behaviour flags
	selectFlag  bool
	quietFlag   bool
	verboseFlag bool
	configFlag  string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aai-transcribe (--files FILE... | --dir DIR) [flags]",
		Short: "Transcribe audio/video files into timestamped text",
		Long: `aai-transcribe submits audio and video files to a speech-to-text
service and writes one timestamped transcript per file.

Give the files explicitly with --files (extra positional arguments are
treated as more files) or --files-from, or scan a directory with --dir.
The API key is read from AAI_API_KEY (or OPENAI_API_KEY with
--provider openai); .env files in the working directory and in
~/.aai-transcribe are loaded first.

Example:
  aai-transcribe --files talk.mp3 interview.m4a
  aai-transcribe --dir ./recordings --output ./transcripts --lang en
  aai-transcribe --dir ./meetings --speaker-labels --select`,
		Args: cobra.ArbitraryArgs,
		RunE: runRoot,
	}

	flags := rootCmd.Flags()
	flags.StringArrayVar(&filesFlag, "files", nil, "Audio/video file to transcribe (repeatable; paths may contain commas)")
	flags.StringVar(&filesFromFlag, "files-from", "", "File listing audio/video paths (one per line)")
	flags.StringVarP(&dirFlag, "dir", "d", "", "Directory containing audio/video files")
	flags.StringVarP(&outputFlag, "output", "o", "", "Output directory (default from config: out)")
	flags.StringVarP(&languageFlag, "lang", "l", "", "Language code (default from config: ru)")
	flags.BoolVar(&speakerLabelsFlag, "speaker-labels", false, "Enable speaker diarization labels")
	flags.StringVar(&providerFlag, "provider", "", "Transcription provider: assemblyai, openai")
	flags.StringVar(&modelFlag, "model", "", "Speech model identifier (default: universal / whisper-1)")
	flags.BoolVar(&selectFlag, "select", false, "Interactively choose which files to transcribe")
	flags.BoolVarP(&quietFlag, "quiet", "q", false, "Suppress progress output")

	rootCmd.MarkFlagsMutuallyExclusive("files", "dir")
	rootCmd.MarkFlagsMutuallyExclusive("files-from", "dir")

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose structured logging")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default ~/.aai-transcribe/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	if err := validateInputFlags(args); err != nil {
		return err
	}

	// Past flag validation, errors are about the run, not about usage
	cmd.SilenceUsage = true

	return runBatch(cmd.Context(), cmd.OutOrStdout(), args)
}

func validateInputFlags(args []string) error {
	explicit := len(filesFlag) > 0 || filesFromFlag != "" || len(args) > 0
	if dirFlag != "" && explicit {
		return errors.New("--dir cannot be combined with --files, --files-from or positional files")
	}
	if dirFlag == "" && !explicit {
		return errors.New("one of --files, --files-from or --dir is required")
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if configFlag != "" {
		return config.Load(configFlag)
	}
	return config.LoadDefault()
}

func configPath() string {
	if configFlag != "" {
		return configFlag
	}
	return config.ConfigPath()
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
