package l10n

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
)

const testFlagURL = "http://flags.test/%s.png"

// fakeFetcher serves fixed bodies by URL and 404s everything else.
type fakeFetcher struct {
	mu     sync.Mutex
	bodies map[string][]byte
	calls  []string
}

func (f *fakeFetcher) Get(_ context.Context, url string) (io.ReadCloser, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, url)
	b, ok := f.bodies[url]
	if !ok {
		return nil, 0, fmt.Errorf("GET %s: unexpected status 404 Not Found", url)
	}
	return io.NopCloser(bytes.NewReader(b)), int64(len(b)), nil
}

func (f *fakeFetcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// fakeCompiler writes a placeholder .mo unless err is set.
type fakeCompiler struct {
	out   []byte
	err   error
	calls int
}

func (c *fakeCompiler) Compile(_ context.Context, src, dst string) ([]byte, error) {
	c.calls++
	if c.err != nil {
		return c.out, c.err
	}
	return c.out, os.WriteFile(dst, []byte{0xde, 0x12, 0x04, 0x95}, 0o644)
}

func quietOptions(opts ...Option) []Option {
	logger := logrus.New()
	logger.Out = io.Discard
	return append([]Option{WithLogger(logger), WithProgress(io.Discard)}, opts...)
}

// testConfig points every output of DefaultConfig into a temporary directory.
func testConfig(t *testing.T) Config {
	t.Helper()
	tmp := t.TempDir()
	cfg := DefaultConfig()
	cfg.LangDir = filepath.Join(tmp, "lang")
	cfg.Output = filepath.Join(tmp, "translation.php")
	cfg.FlagURL = testFlagURL
	return cfg
}
