package l10n

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

type options struct {
	fetcher  Fetcher
	compiler Compiler
	namer    LocaleNamer
	log      logrus.FieldLogger
	progress io.Writer
}

// Option customizes the collaborators of a run.
type Option func(*options)

// WithFetcher replaces the HTTP fetcher used for the archive and flag icons.
func WithFetcher(f Fetcher) Option {
	return func(o *options) {
		o.fetcher = f
	}
}

// WithCompiler replaces the msgfmt subprocess.
func WithCompiler(c Compiler) Option {
	return func(o *options) {
		o.compiler = c
	}
}

// WithNamer replaces the locale database used by the emitter.
func WithNamer(n LocaleNamer) Option {
	return func(o *options) {
		o.namer = n
	}
}

// WithLogger sets the logger. Defaults to the logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithProgress sets where progress bars are drawn. Defaults to stderr.
func WithProgress(w io.Writer) Option {
	return func(o *options) {
		o.progress = w
	}
}

func buildOptions(opts []Option) options {
	o := options{
		fetcher:  NewHTTPFetcher(),
		log:      logrus.StandardLogger(),
		progress: os.Stderr,
	}
	for _, f := range opts {
		f(&o)
	}
	return o
}

// Run acquires the translation build, installs every language of cfg.Languages in order and
// writes cfg.Output for the ones that succeeded.
//
// A language missing from the build is logged, recorded in Report.Errors and skipped.
// Fatal errors stop the run at once and are returned together with the partial report;
// nothing written before is rolled back.
func Run(ctx context.Context, cfg Config, opts ...Option) (*Report, error) {
	o := buildOptions(opts)
	report := &Report{}

	if err := cfg.Validate(); err != nil {
		return report, newSetupError(err)
	}

	ws, err := NewAcquirer(cfg, opts...).Acquire(ctx)
	report.Workspace = ws
	if err != nil {
		return report, err
	}

	proc := NewProcessor(cfg, ws, opts...)
	for _, code := range cfg.Languages {
		done, err := proc.Process(ctx, code)
		if err != nil {
			var lerr Error
			if errors.As(err, &lerr) && !lerr.Fatal() {
				o.log.WithField("lang", code).Errorf("ERROR: %v", err)
				report.Errors = multierror.Append(report.Errors, err)
				continue
			}
			return report, err
		}
		if done == "" {
			continue
		}
		report.Processed = append(report.Processed, done)
	}

	out, err := NewEmitter(cfg, opts...).WriteFile(report.Processed)
	report.Output = out
	if err != nil {
		return report, err
	}
	return report, nil
}
