package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	gonmea "github.com/reoring/gonmea"
	"github.com/reoring/gonmea/catalog"
	"github.com/reoring/gonmea/i18n"
	"github.com/reoring/gonmea/internal/config"
	"github.com/reoring/gonmea/internal/logging"
	"github.com/reoring/gonmea/report"
)

// ErrLinesFailed is returned by check and watch when at least one line did
// not validate. The command exits with status 1 without printing it.
var ErrLinesFailed = errors.New("one or more lines failed validation")

// app holds flag values and the state shared by all sub-commands.
type app struct {
	configPath     string
	language       string
	format         string
	onlyErrors     bool
	strictChecksum bool
	catalogs       []string
	logLevel       string

	cfg config.Config
	cat *catalog.Catalog
	log zerolog.Logger
}

// Execute runs the command line.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the full command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gonmea",
		Short: "NMEA 0183 line validator",
		Long: `gonmea validates NMEA 0183 lines: tag blocks, sentence framing,
checksums, character classes, talker ids, formatters and field grammars.

The first violation of every line is reported with its error code
(E001..E033) and, where known, a caret under the offending byte.

Examples:
  gonmea check capture.nmea         # validate a file
  cat capture.nmea | gonmea check   # validate stdin
  gonmea check --format json a b    # NDJSON diagnostics
  gonmea watch --device /dev/ttyUSB0
  gonmea describe E004`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (TOML, default $"+config.EnvConfig+")")
	pf.StringVar(&a.language, "lang", "", "message language: en or ja")
	pf.StringVar(&a.format, "format", "", "output format: text or json")
	pf.BoolVar(&a.onlyErrors, "only-errors", false, "print failing lines only")
	pf.BoolVar(&a.strictChecksum, "strict-checksum", false, "reject checksums with one wrong digit")
	pf.StringSliceVar(&a.catalogs, "catalog", nil, "additional sentence catalog (YAML), repeatable")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	root.AddCommand(
		newCheckCommand(a),
		newWatchCommand(a),
		newSummarizeCommand(a),
		newDescribeCommand(),
		newCodesCommand(),
		newFormattersCommand(a),
		newTalkersCommand(),
		newVersionCommand(),
	)
	return root
}

// setup merges config file and flags, then builds logger and catalog.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	fl := cmd.Flags()
	if fl.Changed("lang") {
		cfg.Language = a.language
	}
	if fl.Changed("format") {
		cfg.Format = a.format
	}
	if fl.Changed("only-errors") {
		cfg.OnlyErrors = a.onlyErrors
	}
	if fl.Changed("strict-checksum") {
		cfg.StrictChecksum = a.strictChecksum
	}
	if fl.Changed("catalog") {
		cfg.Catalogs = append(cfg.Catalogs, a.catalogs...)
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	i18n.SetLanguage(cfg.Language)
	a.log = logging.Init("gonmea", cmd.ErrOrStderr(), cfg.LogLevel)

	cat := catalog.Default()
	for _, path := range cfg.Catalogs {
		entries, err := catalog.LoadFile(path)
		if err != nil {
			return err
		}
		if cat, err = cat.With(entries...); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		a.log.Debug().Str("catalog", path).Int("sentences", len(entries)).Msg("catalog loaded")
	}
	a.cfg = cfg
	a.cat = cat
	return nil
}

func (a *app) options() gonmea.Options {
	return gonmea.Options{StrictChecksum: a.cfg.StrictChecksum}
}

func (a *app) writer(w io.Writer) report.Writer {
	if a.cfg.Format == "json" {
		return report.NewJSONWriter(w, a.cfg.OnlyErrors)
	}
	return report.NewTextWriter(w, a.cfg.OnlyErrors)
}
