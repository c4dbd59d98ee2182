package l10n

import (
	"github.com/hashicorp/go-multierror"
)

// FlagFailure selects what happens when a flag icon cannot be fetched.
type FlagFailure string

const (
	// FlagFailureAbort stops the whole run. Output already written for earlier languages stays.
	FlagFailureAbort FlagFailure = "abort"
	// FlagFailureSkip reports the language as failed and carries on with the next one.
	FlagFailureSkip FlagFailure = "skip"
)

// Config describes one sync run.
type Config struct {
	// Directory is an already extracted translation build. Takes precedence over Zipfile.
	Directory string `yaml:"directory"`
	// Zipfile is a downloaded translation build.
	Zipfile string `yaml:"zipfile"`

	ArchiveURL  string `yaml:"archive_url"`
	ArchiveName string `yaml:"archive_name"`
	// FlagURL is a format string receiving the two-letter language prefix.
	FlagURL string `yaml:"flag_url"`

	// Domain is the gettext text domain; it names the .po/.mo files.
	Domain  string `yaml:"domain"`
	LangDir string `yaml:"lang_dir"`
	Output  string `yaml:"output"`

	BaseLanguage LangCode `yaml:"base_language"`
	BaseLocale   string   `yaml:"base_locale"`

	Compiler    string                    `yaml:"compiler"`
	Languages   LanguageList              `yaml:"languages"`
	Overrides   map[string]LocaleOverride `yaml:"overrides"`
	FlagFailure FlagFailure               `yaml:"flag_failure"`
}

// LocaleOverride pins the locale identifier and display name of a code that the
// locale database resolves wrongly.
type LocaleOverride struct {
	Locale string `yaml:"locale"`
	Name   string `yaml:"name"`
}

// Workspace is the directory holding one folder per language.
type Workspace struct {
	Dir string
	// Temporary is set when the directory was created by the run. It is left on disk.
	Temporary bool
}

// Report summarizes a run.
type Report struct {
	Workspace Workspace
	Processed []LangCode
	Output    string
	Errors    *multierror.Error
}

// Err returns the accumulated per-language errors, or nil.
func (r *Report) Err() error {
	return r.Errors.ErrorOrNil()
}
