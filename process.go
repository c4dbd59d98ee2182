package l10n

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ubuntu/decorate"
)

const (
	messagesDir  = "LC_MESSAGES"
	flagFileName = "flag.jpg"
)

// Processor installs single languages from a workspace into the localization tree.
type Processor struct {
	cfg  Config
	ws   Workspace
	opts options
}

// NewProcessor returns a processor reading from ws. The compiler defaults to cfg.Compiler
// run as msgfmt.
func NewProcessor(cfg Config, ws Workspace, opts ...Option) *Processor {
	o := buildOptions(opts)
	if o.compiler == nil {
		o.compiler = MsgfmtCompiler{Path: cfg.Compiler}
	}
	return &Processor{cfg: cfg, ws: ws, opts: o}
}

// Process copies, compiles and flags one language. It returns the normalized code on success
// and an empty code with a nil error for the base language, which has nothing to install.
//
// A code without a folder (or message file) in the workspace yields a non-fatal Error and
// creates nothing. Failing to fetch the flag icon yields a fatal Error unless the config
// asks to skip.
func (p *Processor) Process(ctx context.Context, code LangCode) (LangCode, error) {
	if code.Normalize() == p.cfg.BaseLanguage.Normalize() {
		p.opts.log.WithField("lang", code).Debug("skipping base language")
		return "", nil
	}

	srcDir := filepath.Join(p.ws.Dir, string(code))
	if info, err := os.Stat(srcDir); err != nil || !info.IsDir() {
		return "", newLanguageError(code, false, fmt.Errorf("language path for %s not found", code))
	}
	src := filepath.Join(srcDir, p.cfg.Domain+".po")
	if _, err := os.Stat(src); err != nil {
		return "", newLanguageError(code, false, fmt.Errorf("language file %s not found", src))
	}

	norm := code.Normalize()
	langPath := filepath.Join(p.cfg.LangDir, string(norm))
	log := p.opts.log.WithField("lang", norm)
	log.WithFields(logrus.Fields{"source": src, "target": langPath}).Info("processing language")

	po, err := p.install(src, langPath)
	if err != nil {
		return "", newLanguageError(code, true, err)
	}
	p.compile(ctx, log, po)

	flag := filepath.Join(langPath, flagFileName)
	if fileExists(flag) {
		log.WithField("path", flag).Debug("flag already present")
		return norm, nil
	}
	url := fmt.Sprintf(p.cfg.FlagURL, norm.Prefix())
	log.WithField("url", url).Info("downloading flag")
	if err := p.fetchFlag(ctx, url, flag); err != nil {
		fatal := p.cfg.FlagFailure != FlagFailureSkip
		return "", newLanguageError(code, fatal,
			fmt.Errorf("unable to download flag from %s, please save it manually to %s: %w", url, flag, err))
	}
	log.WithField("path", flag).Info("flag saved")
	return norm, nil
}

// install creates langPath/LC_MESSAGES and copies src into it. A directory created here is
// removed again when the copy fails.
func (p *Processor) install(src, langPath string) (dst string, err error) {
	defer decorate.OnError(&err, "can't install %s", filepath.Base(src))

	created := !fileExists(langPath)
	msgPath := filepath.Join(langPath, messagesDir)
	if err := os.MkdirAll(msgPath, 0o755); err != nil {
		return "", err
	}
	dst = filepath.Join(msgPath, p.cfg.Domain+".po")
	if err := copyFile(src, dst); err != nil {
		if created {
			_ = os.RemoveAll(langPath)
		}
		return "", err
	}
	return dst, nil
}

// compile builds the .mo next to po. Diagnostics and failures are only reported.
func (p *Processor) compile(ctx context.Context, log logrus.FieldLogger, po string) {
	mo := po[:len(po)-len(".po")] + ".mo"
	log.WithField("path", mo).Debug("compiling translation file")
	out, err := p.opts.compiler.Compile(ctx, po, mo)
	if len(out) > 0 {
		log.Warnf("%s", out)
	}
	if err != nil {
		log.WithError(err).Warn("compiling translation file failed")
	}
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
