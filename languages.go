package l10n

import (
	"fmt"
	"strings"
)

// LanguageList is an ordered set of language codes. In YAML it can be given as a sequence
// or as one space-separated string (languages: "af ar be ca"). Duplicates keep their first
// position.
type LanguageList []LangCode

// UnmarshalYAML accepts either a string or a sequence of strings.
func (l *LanguageList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	var raw []string
	switch t := v.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		raw = strings.Fields(t)
	case []interface{}:
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("languages entries must be strings, got %T", item)
			}
			raw = append(raw, s)
		}
	default:
		return fmt.Errorf("languages must be a string or a list, got %T", v)
	}
	list, err := ParseLanguageList(raw)
	if err != nil {
		return err
	}
	*l = list
	return nil
}

// MarshalYAML emits a plain sequence.
func (l LanguageList) MarshalYAML() (interface{}, error) {
	out := make([]string, len(l))
	for i, c := range l {
		out[i] = string(c)
	}
	return out, nil
}

// ParseLanguageList validates every code and drops repeated ones.
func ParseLanguageList(codes []string) (LanguageList, error) {
	seen := make(map[LangCode]struct{}, len(codes))
	out := make(LanguageList, 0, len(codes))
	for _, s := range codes {
		code, err := ParseLangCode(s)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out, nil
}
