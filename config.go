package l10n

import (
	"fmt"
	"os"
	"strings"

	"github.com/ubuntu/decorate"
	"gopkg.in/yaml.v2"
)

// DefaultLanguages is the curated list installed when none is given. Some languages in the
// Crowdin build are not translated enough to be listed.
const DefaultLanguages = "af ar be ca cs de el es-AR es-ES eu fi fil fr gl hr hu id it ja kab ko lt nl no pl pt-BR pt-PT ro ru sk sl sr sv-SE tr uk val-ES vi zh-CN zh-TW"

// DefaultConfig returns the settings used for the FreeCAD homepage.
func DefaultConfig() Config {
	langs, err := ParseLanguageList(strings.Fields(DefaultLanguages))
	if err != nil {
		panic(err)
	}
	return Config{
		ArchiveURL:   "https://crowdin.com/backend/download/project/freecad.zip",
		ArchiveName:  "freecad.zip",
		FlagURL:      "http://www.unilang.org/images/langicons/%s.png",
		Domain:       "homepage",
		LangDir:      "lang",
		Output:       "translation.php",
		BaseLanguage: "en",
		BaseLocale:   "en_US",
		Compiler:     "msgfmt",
		Languages:    langs,
		Overrides: map[string]LocaleOverride{
			"val_ES": {Locale: "val_ES", Name: "Valencian"},
		},
		FlagFailure: FlagFailureAbort,
	}
}

// LoadConfig reads a YAML run configuration on top of DefaultConfig.
func LoadConfig(path string) (cfg Config, err error) {
	defer decorate.OnError(&err, "can't load configuration %s", path)

	cfg = DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the settings every run depends on.
func (c Config) Validate() error {
	switch {
	case c.Domain == "":
		return fmt.Errorf("domain is empty")
	case c.LangDir == "":
		return fmt.Errorf("lang_dir is empty")
	case c.Output == "":
		return fmt.Errorf("output is empty")
	case c.Compiler == "":
		return fmt.Errorf("compiler is empty")
	case c.Directory == "" && c.Zipfile == "" && (c.ArchiveURL == "" || c.ArchiveName == ""):
		return fmt.Errorf("archive_url and archive_name are required to download the translations")
	case !strings.Contains(c.FlagURL, "%s"):
		return fmt.Errorf("flag_url %q has no %%s placeholder", c.FlagURL)
	}
	switch c.FlagFailure {
	case FlagFailureAbort, FlagFailureSkip:
	default:
		return fmt.Errorf("flag_failure must be %q or %q, got %q", FlagFailureAbort, FlagFailureSkip, c.FlagFailure)
	}
	return nil
}
