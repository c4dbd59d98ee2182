package main

import (
	"context"
	"strings"

	l10n "github.com/freecad/homepage-l10n"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ubuntu/decorate"
)

const cmdName = "updatefromcrowdin"

const longHelp = `Update the translation files of the FreeCAD homepage.

This command must be run from the homepage source tree so it can find the
lang directory and translation.php. With a directory (-d) or a zip file (-z)
the translations are taken from there; otherwise the latest build is
downloaded from Crowdin and extracted to a temporary folder, which is kept.

Crowdin only serves "builds" (zipped archives) which must be built before
downloading, so a build may not reflect the latest state of the translations.
Better always make a build before using this command.

Without LANGCODE arguments, a curated list of languages is installed: some
languages in the archive are not translated enough.

To generate the .pot file to be uploaded on Crowdin:

  xgettext --from-code=UTF-8 -o lang/homepage.pot *.php`

// App wires the command line to a sync run.
type App struct {
	rootCmd cobra.Command

	source     archiveSource
	configPath string
	verbosity  int

	opts   []l10n.Option
	report *l10n.Report
}

// New registers the command and its flags. opts are passed on to every run.
func New(opts ...l10n.Option) *App {
	a := App{opts: opts}
	a.rootCmd = cobra.Command{
		Use:     cmdName + " [options] [LANGCODE...]",
		Short:   "Update the homepage translations from Crowdin",
		Long:    longHelp,
		Example: "  " + cmdName + " -d ./freecad fr nl pt_BR",
		Version: version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// command parsing has been successful. Returns to not print usage anymore.
			a.rootCmd.SilenceUsage = true
			setVerboseMode(a.verbosity)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().NFlag() == 0 && len(args) == 0 {
				return cmd.Help()
			}
			return a.sync(cmd.Context(), args)
		},
		// We display errors ourselves
		SilenceErrors: true,
	}

	flags := a.rootCmd.Flags()
	flags.VarP(sourceFlag{src: &a.source}, "directory", "d", "directory containing unzipped translation folders")
	flags.VarP(sourceFlag{src: &a.source, zip: true}, "zipfile", "z", "path to the freecad.zip file")
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	flags.CountVarP(&a.verbosity, "verbosity", "v", "issue DEBUG (-v) or DEBUG with caller (-vv) output")

	return &a
}

// Run executes the command. It returns an error on syntax/usage error too.
func (a *App) Run(ctx context.Context) error {
	return a.rootCmd.ExecuteContext(ctx)
}

// UsageError returns if the error is a command parsing or runtime one.
func (a App) UsageError() bool {
	return !a.rootCmd.SilenceUsage
}

// SetArgs changes the root command args. Shouldn't be in general necessary apart for tests.
func (a *App) SetArgs(args ...string) {
	if args == nil {
		args = []string{}
	}
	a.rootCmd.SetArgs(args)
}

// Report returns the outcome of the last run, if any.
func (a App) Report() *l10n.Report {
	return a.report
}

func (a *App) sync(ctx context.Context, args []string) (err error) {
	defer decorate.OnError(&err, "translation update failed")

	cfg := l10n.DefaultConfig()
	if a.configPath != "" {
		if cfg, err = l10n.LoadConfig(a.configPath); err != nil {
			return err
		}
	}
	a.source.apply(&cfg)
	if len(args) > 0 {
		if cfg.Languages, err = l10n.ParseLanguageList(args); err != nil {
			return err
		}
	}

	report, err := l10n.Run(ctx, cfg, a.opts...)
	a.report = report
	if report != nil && report.Workspace.Temporary {
		log.Infof("translations left in %s", report.Workspace.Dir)
	}
	if err != nil {
		return err
	}

	done := make([]string, len(report.Processed))
	for i, c := range report.Processed {
		done[i] = string(c)
	}
	log.Infof("installed %d language(s): %s", len(done), strings.Join(done, " "))
	if report.Errors != nil {
		log.Warnf("%d language(s) skipped", len(report.Errors.Errors))
	}
	log.Infof("wrote %s", report.Output)
	return nil
}

// setVerboseMode changes the log level: INFO by default, DEBUG from -v on.
func setVerboseMode(level int) {
	var reportCaller bool
	switch level {
	case 0:
		log.SetLevel(log.InfoLevel)
	case 1:
		log.SetLevel(log.DebugLevel)
	default:
		reportCaller = true
		log.SetLevel(log.DebugLevel)
	}
	log.SetReportCaller(reportCaller)
}
