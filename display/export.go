package display

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/matt-g-everett/reeftx/stream"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/image/draw"
)

// Exporter writes frames to disk: one PNG per frame, or a single looping GIF
// written on Close.
type Exporter struct {
	dir    string
	format string
	delay  int
	count  int

	anim *gif.GIF
	bar  *progressbar.ProgressBar
}

// NewExporter creates dir and prepares an export. When total is non-zero a
// progress bar is written to progress.
func NewExporter(dir, format string, interval time.Duration, total uint64, progress io.Writer) (*Exporter, error) {
	if format != "png" && format != "gif" {
		return nil, fmt.Errorf("export format %q", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export dir: %w", err)
	}

	e := new(Exporter)
	e.dir = dir
	e.format = format
	// GIF delays are in hundredths of a second.
	e.delay = int(interval / (10 * time.Millisecond))
	if e.delay < 1 {
		e.delay = 1
	}
	if format == "gif" {
		e.anim = &gif.GIF{LoopCount: 0}
	}
	if total > 0 && progress != nil {
		e.bar = progressbar.NewOptions64(int64(total),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("rendering"),
			progressbar.OptionShowCount(),
		)
	}
	return e, nil
}

// Count returns the number of frames presented so far.
func (e *Exporter) Count() int { return e.count }

// Present writes or buffers f.
func (e *Exporter) Present(f *stream.Frame) error {
	e.count++
	if e.bar != nil {
		e.bar.Add(1)
	}

	if e.anim != nil {
		img := f.Image()
		p := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(p, p.Bounds(), img, image.Point{})
		e.anim.Image = append(e.anim.Image, p)
		e.anim.Delay = append(e.anim.Delay, e.delay)
		return nil
	}

	name := filepath.Join(e.dir, fmt.Sprintf("frame_%05d.png", e.count))
	out, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("export frame: %w", err)
	}
	if err := png.Encode(out, f.Image()); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return out.Close()
}

// Close finishes the progress bar and writes the GIF, if any.
func (e *Exporter) Close() error {
	if e.bar != nil {
		e.bar.Finish()
	}
	if e.anim == nil || len(e.anim.Image) == 0 {
		return nil
	}

	name := filepath.Join(e.dir, "reef.gif")
	out, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("export gif: %w", err)
	}
	if err := gif.EncodeAll(out, e.anim); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return out.Close()
}
