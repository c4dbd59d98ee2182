package l10n

// Error is the error type returned by a run. Lang() is empty for setup errors (missing input,
// failed download, broken archive). Fatal() tells whether the run was aborted or only the
// language was skipped.
type Error interface {
	Error() string
	Unwrap() error
	Lang() string
	Fatal() bool
}

type DefaultError struct {
	err   error
	lang  string
	fatal bool
}

func (e DefaultError) Error() string {
	if e.lang == "" {
		return e.err.Error()
	}
	return e.lang + ": " + e.err.Error()
}

func (e *DefaultError) Unwrap() error {
	return e.err
}

func (e *DefaultError) Lang() string {
	return e.lang
}

func (e *DefaultError) Fatal() bool {
	return e.fatal
}

func newSetupError(err error) error {
	return &DefaultError{err: err, fatal: true}
}

func newLanguageError(lang LangCode, fatal bool, err error) error {
	return &DefaultError{err: err, lang: string(lang), fatal: fatal}
}
