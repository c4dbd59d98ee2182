package l10n

import (
	"context"
	"image"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/ubuntu/decorate"
)

const flagQuality = 90

func (p *Processor) fetchFlag(ctx context.Context, url, dst string) (err error) {
	defer decorate.OnError(&err, "can't fetch flag icon")

	body, _, err := p.opts.fetcher.Get(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()
	return saveFlag(body, dst)
}

// saveFlag decodes a PNG, GIF or JPEG image and stores it as an RGB JPEG. The file appears
// only once fully written, so an interrupted run never leaves a truncated flag behind.
func saveFlag(r io.Reader, dst string) error {
	img, _, err := image.Decode(r)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".flag-*.jpg")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := jpeg.Encode(tmp, toRGB(img), &jpeg.Options{Quality: flagQuality}); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

// toRGB flattens img on a white background, dropping transparency.
func toRGB(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, image.White, image.Point{}, draw.Src)
	draw.Draw(dst, b, img, b.Min, draw.Over)
	return dst
}
