package locale

import "testing"

func TestNamer(t *testing.T) {
	n := New(map[string]Override{
		"val-ES": {Locale: "val_ES", Name: "Valencian"},
		"es_AR":  {Name: "Spanish (Argentina)"},
	})

	tests := []struct {
		code   string
		locale string
		name   string
	}{
		{"fr", "fr_FR", "French"},
		{"de", "de_DE", "German"},
		{"ja", "ja_JP", "Japanese"},
		{"pt_BR", "pt_BR", "Portuguese"},
		{"pt-PT", "pt_PT", "Portuguese"},
		{"zh-TW", "zh_TW", "Chinese"},
		{"val_ES", "val_ES", "Valencian"},
		{"es_AR", "es_AR", "Spanish (Argentina)"},
		{"!!", "!!", "!!"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := n.Locale(tt.code); got != tt.locale {
				t.Errorf("Locale(%q) = %q, want %q", tt.code, got, tt.locale)
			}
			if got := n.Name(tt.code); got != tt.name {
				t.Errorf("Name(%q) = %q, want %q", tt.code, got, tt.name)
			}
		})
	}
}
