package main

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/coregx/streamlex"
)

type options struct {
	configPath string
	debug      bool
	lenient    bool
	transcode  bool
	follow     bool

	reader streamlex.Config
	logger *slog.Logger
}

func NewCLI() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "streamlex",
		Short: "Streaming UTF-8 tokenizer",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
			return opts.init(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Reader config file (.toml, .yaml)")
	flags.BoolVar(&opts.debug, "debug", false, "Log buffer activity and dump reader stats")
	flags.BoolVar(&opts.lenient, "lenient", false, "Replace invalid UTF-8 instead of failing; honor BOMs")
	flags.BoolVar(&opts.transcode, "transcode", false, "Detect the input charset and convert it to UTF-8")
	flags.BoolVarP(&opts.follow, "follow", "f", false, "Keep reading the file as it grows")

	cobra.EnableCommandSorting = false

	rootCmd.AddCommand(
		newWordsCmd(opts),
		newLinesCmd(opts),
		newTokensCmd(opts),
		newStampCmd(),
	)
	return rootCmd
}

func (o *options) init(logOut io.Writer) error {
	level := slog.LevelInfo
	if o.debug {
		level = slog.LevelDebug
	}
	o.logger = newLogger(logOut, level)

	o.reader = streamlex.DefaultConfig()
	if o.configPath != "" {
		if err := loadConfig(o.configPath, &o.reader); err != nil {
			return err
		}
	}
	if o.debug {
		o.reader.Logger = o.logger
	}
	return o.reader.Validate()
}

// dumpStats logs the reader counters in debug mode.
func (o *options) dumpStats(r *streamlex.Reader) {
	if !o.debug {
		return
	}
	o.logger.Debug("reader stats", "consumed", r.Consumed(), "stats", spew.Sdump(r.Stats()))
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	}))
}
