package test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
)

// PO is a minimal, valid gettext catalog.
const PO = `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"

msgid "Download"
msgstr "Télécharger"
`

// WriteBuild lays out an extracted translation build under dir: one folder per code,
// each holding <domain>.po.
func WriteBuild(dir, domain string, codes ...string) error {
	for _, code := range codes {
		langDir := filepath.Join(dir, code)
		if err := os.MkdirAll(langDir, 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(langDir, domain+".po"), []byte(PO), 0o600); err != nil {
			return err
		}
	}
	return nil
}

// ZipBuild returns the zipped form of WriteBuild, as served by Crowdin. extra entries are
// added verbatim with empty content.
func ZipBuild(domain string, codes []string, extra ...string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, code := range codes {
		if _, err := zw.Create(code + "/"); err != nil {
			return nil, err
		}
		w, err := zw.Create(code + "/" + domain + ".po")
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(PO)); err != nil {
			return nil, err
		}
	}
	for _, name := range extra {
		if _, err := zw.Create(name); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FlagPNG returns a small paletted PNG with a transparent stripe, like the icons of the
// flag server.
func FlagPNG() ([]byte, error) {
	pal := color.Palette{color.Transparent, color.RGBA{R: 0, G: 85, B: 164, A: 255}, color.RGBA{R: 239, G: 65, B: 53, A: 255}}
	img := image.NewPaletted(image.Rect(0, 0, 48, 32), pal)
	for y := 0; y < 32; y++ {
		for x := 0; x < 48; x++ {
			switch {
			case x < 16:
				img.SetColorIndex(x, y, 1)
			case x >= 32:
				img.SetColorIndex(x, y, 2)
			}
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
