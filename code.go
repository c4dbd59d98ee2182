package l10n

import (
	"fmt"
	"strings"
	"unicode"
)

// LangCode is a translation language code as Crowdin names its folders (e.g. "fr", "pt-BR").
// The installed form uses underscores instead of hyphens (see Normalize). YAML accepts a plain
// scalar; surrounding whitespace is trimmed.
type LangCode string

// UnmarshalYAML validates the code while decoding it.
func (c *LangCode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("language code must be a string, got %T", v)
	}
	code, err := ParseLangCode(s)
	if err != nil {
		return err
	}
	*c = code
	return nil
}

// ParseLangCode trims s and rejects values that cannot name a folder inside the archive.
func ParseLangCode(s string) (LangCode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty language code")
	}
	if s == "." || s == ".." {
		return "", fmt.Errorf("invalid language code %q", s)
	}
	for _, r := range s {
		if r == '/' || r == '\\' || unicode.IsSpace(r) {
			return "", fmt.Errorf("invalid language code %q", s)
		}
	}
	return LangCode(s), nil
}

// Normalize replaces hyphens with underscores ("pt-BR" -> "pt_BR"), the form used for
// directory names and locale identifiers.
func (c LangCode) Normalize() LangCode {
	return LangCode(strings.ReplaceAll(string(c), "-", "_"))
}

// Prefix returns the language part of the normalized code ("pt_BR" -> "pt").
// It keys both the locale map and the flag icon.
func (c LangCode) Prefix() string {
	n := string(c.Normalize())
	if idx := strings.Index(n, "_"); idx >= 0 {
		return n[:idx]
	}
	return n
}

func (c LangCode) String() string {
	return string(c)
}
