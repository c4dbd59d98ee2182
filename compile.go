package l10n

import (
	"context"
	"os/exec"
)

//go:generate mockgen -source=$GOFILE -package mock_l10n -destination=test/mock/$GOFILE

// Compiler turns a gettext .po file into a binary .mo catalog.
type Compiler interface {
	// Compile writes dst from src. The returned output holds the compiler diagnostics,
	// also when err is not nil.
	Compile(ctx context.Context, src, dst string) (output []byte, err error)
}

// MsgfmtCompiler runs GNU msgfmt with format checks enabled.
type MsgfmtCompiler struct {
	// Path is the msgfmt executable, looked up in PATH when not absolute.
	Path string
}

func (m MsgfmtCompiler) Compile(ctx context.Context, src, dst string) ([]byte, error) {
	bin := m.Path
	if bin == "" {
		bin = "msgfmt"
	}
	return exec.CommandContext(ctx, bin, "-c", "-o", dst, src).CombinedOutput()
}
