// Package locale names languages for the homepage: the POSIX locale identifier passed to
// setlocale ("pt_BR") and the English language name shown in the language menu ("Portuguese").
// Codes are accepted with hyphens or underscores. Overrides win over the CLDR data for codes
// it resolves wrongly.
package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Override pins the locale and/or name of a normalized code. Empty fields are resolved.
type Override struct {
	Locale string
	Name   string
}

// Namer resolves codes against the CLDR database.
type Namer struct {
	overrides map[string]Override
}

// New returns a Namer. overrides is keyed by normalized code ("val_ES").
func New(overrides map[string]Override) *Namer {
	o := make(map[string]Override, len(overrides))
	for code, v := range overrides {
		o[normalize(code)] = v
	}
	return &Namer{overrides: o}
}

// Locale returns the language and most likely region of code as "ll_RR". Without a known
// region only the language is returned; unparsable codes come back normalized.
func (n *Namer) Locale(code string) string {
	norm := normalize(code)
	if o, ok := n.overrides[norm]; ok && o.Locale != "" {
		return o.Locale
	}
	tag, err := language.Raw.Parse(strings.ReplaceAll(norm, "_", "-"))
	if err != nil {
		return norm
	}
	base, _ := tag.Base()
	region, conf := tag.Region()
	if conf == language.No || region.String() == "ZZ" {
		return base.String()
	}
	return base.String() + "_" + region.String()
}

// Name returns the English name of the language of code, without region ("pt_BR" -> "Portuguese").
func (n *Namer) Name(code string) string {
	norm := normalize(code)
	if o, ok := n.overrides[norm]; ok && o.Name != "" {
		return o.Name
	}
	tag, err := language.Raw.Parse(strings.ReplaceAll(norm, "_", "-"))
	if err != nil {
		return norm
	}
	base, _ := tag.Base()
	if name := display.English.Languages().Name(base); name != "" {
		return name
	}
	return norm
}

func normalize(code string) string {
	return strings.ReplaceAll(strings.TrimSpace(code), "-", "_")
}
