package l10n

import (
	"bufio"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/freecad/homepage-l10n/internal/locale"
	"github.com/ubuntu/decorate"
)

// LocaleNamer resolves a language code to its locale identifier and English name.
type LocaleNamer interface {
	Locale(code string) string
	Name(code string) string
}

// dropdownIndent keeps the generated menu aligned with the homepage header markup.
const dropdownIndent = "\t\t\t\t\t\t"

const translationTemplate = `<?php

$localeMap = array(
    '{{php .Base.Key}}' => '{{php .Base.Locale}}',
{{- range .Langs}}
    '{{php .Key}}' => '{{php .Locale}}',
{{- end}}
);

$lang = '{{php .Base.Key}}';
if (isset($_GET["lang"])) $lang = $_GET["lang"];
$locale = isset($localeMap[$lang]) ? $localeMap[$lang] : $lang;
putenv("LC_ALL=$locale");
setlocale(LC_ALL, $locale);
bindtextdomain('{{php .Domain}}', '{{php .LangDir}}');
textdomain('{{php .Domain}}');
bind_textdomain_codeset('{{php .Domain}}', 'UTF-8');

$flagcode = $lang;

if (!file_exists('{{php .LangDir}}/'.$flagcode."/flag.jpg")) {
    if (strpos($flagcode, '_') !== false) {
        $flagcode = explode("_", $flagcode)[0];
    }
}
$langattrib = "";
$langStr = "";
if (isset($_GET["lang"]) && $_GET["lang"] != "") {
    $langStr = "?lang=".$_GET["lang"];
    $langattrib = "&lang=".$_GET["lang"];
}

function getFlags($href='/') {
    echo('{{.Indent}}<a class="dropdown-item" href="'.$href.'"><img src="{{php .LangDir}}/{{php .Base.Code}}/flag.jpg" alt="" />'._('{{php .Base.Name}}').'</a>');
{{- range .Langs}}
    echo('{{$.Indent}}<a class="dropdown-item" href="'.$href.'?lang={{php .Code}}"><img src="{{php $.LangDir}}/{{php .Code}}/flag.jpg" alt="" />'._('{{php .Name}}').'</a>');
{{- end}}
}

function getTranslatedDownloadLink() {
    $tr = "";
    if (isset($_GET["lang"])) {
        $tr = "?lang=".$_GET["lang"];
    }
    echo("downloads.php".$tr);
}
?>
`

var (
	phpEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

	translationTmpl = template.Must(template.New("translation.php").
			Funcs(template.FuncMap{"php": phpEscaper.Replace}).
			Parse(translationTemplate))
)

type menuEntry struct {
	Code   string
	Key    string
	Locale string
	Name   string
}

type translationData struct {
	Domain  string
	LangDir string
	Indent  string
	Base    menuEntry
	Langs   []menuEntry
}

// Emitter generates the PHP file selecting the homepage locale and rendering the language menu.
type Emitter struct {
	cfg   Config
	namer LocaleNamer
}

// NewEmitter returns an emitter. Without WithNamer, codes are resolved from CLDR with the
// overrides of cfg.
func NewEmitter(cfg Config, opts ...Option) *Emitter {
	o := buildOptions(opts)
	namer := o.namer
	if namer == nil {
		overrides := make(map[string]locale.Override, len(cfg.Overrides))
		for code, v := range cfg.Overrides {
			overrides[code] = locale.Override{Locale: v.Locale, Name: v.Name}
		}
		namer = locale.New(overrides)
	}
	return &Emitter{cfg: cfg, namer: namer}
}

// Emit writes the file for codes, which must be normalized and in menu order. The base
// language always comes first.
func (e *Emitter) Emit(w io.Writer, codes []LangCode) error {
	base := e.cfg.BaseLanguage.Normalize()
	data := translationData{
		Domain:  e.cfg.Domain,
		LangDir: e.cfg.LangDir,
		Indent:  dropdownIndent,
		Base: menuEntry{
			Code:   string(base),
			Key:    base.Prefix(),
			Locale: e.cfg.BaseLocale,
			Name:   e.namer.Name(string(base)),
		},
		Langs: make([]menuEntry, 0, len(codes)),
	}
	for _, c := range codes {
		data.Langs = append(data.Langs, menuEntry{
			Code:   string(c),
			Key:    c.Prefix(),
			Locale: e.namer.Locale(string(c)),
			Name:   e.namer.Name(string(c)),
		})
	}
	return translationTmpl.Execute(w, data)
}

// WriteFile replaces cfg.Output with the file for codes and returns its path.
func (e *Emitter) WriteFile(codes []LangCode) (path string, err error) {
	path = e.cfg.Output
	defer decorate.OnError(&err, "can't write %s", path)

	f, err := os.Create(path)
	if err != nil {
		return path, err
	}
	w := bufio.NewWriter(f)
	if err := e.Emit(w, codes); err != nil {
		f.Close()
		return path, err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return path, err
	}
	return path, f.Close()
}
