package l10n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zip"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/ubuntu/decorate"
)

const tempDirPattern = "homepage-l10n-"

// Acquirer produces the Workspace a run reads translations from.
type Acquirer struct {
	cfg  Config
	opts options
}

// NewAcquirer picks the source from cfg: Directory, then Zipfile, else a download of ArchiveURL.
func NewAcquirer(cfg Config, opts ...Option) *Acquirer {
	return &Acquirer{cfg: cfg, opts: buildOptions(opts)}
}

// Acquire returns the workspace. Every error is fatal for the run. Temporary directories
// created here are not removed.
func (a *Acquirer) Acquire(ctx context.Context) (ws Workspace, err error) {
	defer decorate.OnError(&err, "can't acquire translations")

	switch {
	case a.cfg.Directory != "":
		ws, err = a.fromDirectory(a.cfg.Directory)
	case a.cfg.Zipfile != "":
		ws, err = a.fromZipfile(a.cfg.Zipfile)
	default:
		ws, err = a.download(ctx)
	}
	if err != nil {
		return ws, newSetupError(err)
	}
	return ws, nil
}

func (a *Acquirer) fromDirectory(dir string) (Workspace, error) {
	path, err := filepath.Abs(dir)
	if err != nil {
		return Workspace{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return Workspace{}, fmt.Errorf("%s not found", path)
	}
	if !info.IsDir() {
		return Workspace{}, fmt.Errorf("%s is not a directory", path)
	}
	a.opts.log.WithField("path", path).Info("using extracted translations")
	return Workspace{Dir: path}, nil
}

func (a *Acquirer) fromZipfile(zipfile string) (Workspace, error) {
	src, err := filepath.Abs(zipfile)
	if err != nil {
		return Workspace{}, err
	}
	if _, err := os.Stat(src); err != nil {
		return Workspace{}, fmt.Errorf("%s not found", src)
	}
	ws, err := a.tempWorkspace()
	if err != nil {
		return ws, err
	}
	dst := filepath.Join(ws.Dir, filepath.Base(src))
	if err := copyFile(src, dst); err != nil {
		return ws, err
	}
	return ws, a.extract(dst, ws.Dir)
}

func (a *Acquirer) download(ctx context.Context) (Workspace, error) {
	ws, err := a.tempWorkspace()
	if err != nil {
		return ws, err
	}
	dst := filepath.Join(ws.Dir, a.cfg.ArchiveName)
	log := a.opts.log.WithField("url", a.cfg.ArchiveURL)
	log.Info("downloading translations")

	body, size, err := a.opts.fetcher.Get(ctx, a.cfg.ArchiveURL)
	if err != nil {
		return ws, fmt.Errorf("download failed: %w", err)
	}
	defer body.Close()

	f, err := os.Create(dst)
	if err != nil {
		return ws, err
	}
	bar := progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(a.opts.progress),
		progressbar.OptionSetDescription("downloading "+a.cfg.ArchiveName),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)
	n, err := io.Copy(io.MultiWriter(f, bar), body)
	_ = bar.Finish()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return ws, fmt.Errorf("download failed: %w", err)
	}
	if n == 0 {
		return ws, errors.New("download failed: empty archive")
	}
	log.WithField("path", dst).Infof("downloaded %s", humanize.Bytes(uint64(n)))
	return ws, a.extract(dst, ws.Dir)
}

func (a *Acquirer) tempWorkspace() (Workspace, error) {
	dir, err := os.MkdirTemp("", tempDirPattern)
	if err != nil {
		return Workspace{}, err
	}
	a.opts.log.WithField("path", dir).Info("creating temp folder")
	return Workspace{Dir: dir, Temporary: true}, nil
}

// extract unpacks archive into dest, refusing entries that would land outside of it.
func (a *Acquirer) extract(archive, dest string) (err error) {
	defer decorate.OnError(&err, "can't extract %s", filepath.Base(archive))

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	a.opts.log.WithField("path", archive).Infof("extracting %s...", filepath.Base(archive))

	files := 0
	for _, f := range r.File {
		if !f.FileInfo().IsDir() {
			files++
		}
	}
	bar := progressbar.NewOptions(files,
		progressbar.OptionSetWriter(a.opts.progress),
		progressbar.OptionSetDescription("extracting"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)
	defer func() { _ = bar.Finish() }()

	root := filepath.Clean(dest) + string(os.PathSeparator)
	for _, f := range r.File {
		if strings.Contains(f.Name, "__MACOSX") {
			continue
		}
		target := filepath.Join(dest, f.Name)
		if target == filepath.Clean(dest) {
			continue
		}
		if !strings.HasPrefix(target, root) {
			return fmt.Errorf("illegal path in archive: %q", f.Name)
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := extractFile(f, target); err != nil {
			return err
		}
		_ = bar.Add(1)
	}
	a.opts.log.WithFields(logrus.Fields{"path": dest, "files": files}).Debug("archive extracted")
	return nil
}

func extractFile(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
