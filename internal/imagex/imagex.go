// Package imagex converts uploaded images into the compressed data-URL
// payloads the image store persists: decode, rescale into a bounding box
// preserving aspect ratio, re-encode as lossy JPEG.
package imagex

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"math"

	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/png"
)

// Options bounds the output size and sets the JPEG quality factor in
// (0, 1].
type Options struct {
	MaxWidth  int
	MaxHeight int
	Quality   float64
}

// DefaultOptions matches the original upload pipeline: 800x600 at 0.8.
func DefaultOptions() Options {
	return Options{MaxWidth: 800, MaxHeight: 600, Quality: 0.8}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MaxWidth <= 0 {
		o.MaxWidth = d.MaxWidth
	}
	if o.MaxHeight <= 0 {
		o.MaxHeight = d.MaxHeight
	}
	if o.Quality <= 0 || o.Quality > 1 {
		o.Quality = d.Quality
	}
	return o
}

var ErrNoData = errors.New("no image data")

// Compress decodes data (JPEG, PNG, or GIF), scales it down when either
// dimension exceeds its bound, and returns a "data:image/jpeg;base64,..."
// payload. The scale factor comes from whichever dimension is
// proportionally more over its limit, so aspect ratio is preserved and the
// longer relative dimension lands exactly on its bound. Images already
// inside the box are re-encoded without resampling.
func Compress(data []byte, opts Options) (string, error) {
	if len(data) == 0 {
		return "", ErrNoData
	}
	opts = opts.withDefaults()

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > opts.MaxWidth || h > opts.MaxHeight {
		factor := math.Max(
			float64(w)/float64(opts.MaxWidth),
			float64(h)/float64(opts.MaxHeight),
		)
		nw := int(math.Round(float64(w) / factor))
		nh := int(math.Round(float64(h) / factor))

		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	q := int(math.Round(opts.Quality * 100))
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: q}); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// AsyncResult is the outcome of one CompressAsync task.
type AsyncResult struct {
	Payload string
	Err     error
}

// CompressAsync runs Compress off the calling goroutine and delivers
// exactly one result on the returned channel before closing it. There is no cancellation
// beyond abandoning the channel; a context already done when the task
// starts rejects immediately.
func CompressAsync(ctx context.Context, data []byte, opts Options) <-chan AsyncResult {
	ch := make(chan AsyncResult, 1)
	go func() {
		defer close(ch)
		if err := ctx.Err(); err != nil {
			ch <- AsyncResult{Err: err}
			return
		}
		payload, err := Compress(data, opts)
		ch <- AsyncResult{Payload: payload, Err: err}
	}()
	return ch
}
