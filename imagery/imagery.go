// Package imagery is the imaging collaborator: it loads, transforms, compares
// and saves pictures for the evaluator. Files go through an afero.Fs so that
// tests can run entirely in memory.
package imagery

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"

	"pix/errwrap"
	"pix/eval"
)

// HeightMismatchError is returned when combining images of different
// heights.
type HeightMismatchError struct {
	Left, Right int
}

func (e *HeightMismatchError) Error() string {
	return fmt.Sprintf("images must have equal height (%d != %d)", e.Left, e.Right)
}

func (e *HeightMismatchError) ShapeMismatch() bool { return true }

// Imager implements eval.Imager. It is safe for concurrent use.
type Imager struct {
	Fs     afero.Fs
	Config *Config

	Debug bool
	Logf  func(format string, v ...interface{})

	mutex sync.Mutex
	count int // number of materialized images
}

var _ eval.Imager = (*Imager)(nil)

// Evaluator returns an evaluator wired to this collaborator.
func (obj *Imager) Evaluator() *eval.Evaluator {
	config := obj.config()
	return &eval.Evaluator{
		Imager:        obj,
		LightenFactor: config.Lighten,
		DarkenFactor:  config.Darken,
		Debug:         obj.Debug,
		Logf:          obj.Logf,
	}
}

func (obj *Imager) Open(path string) (image.Image, error) {
	full := path
	if dir := obj.config().Dir; dir != "" && !filepath.IsAbs(path) {
		full = filepath.Join(dir, path)
	}
	f, err := obj.Fs.Open(full)
	if err != nil {
		return nil, errwrap.Wrapf(err, "could not open image")
	}
	defer f.Close()
	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errwrap.Wrapf(err, "could not decode image %s", path)
	}
	if obj.Debug {
		obj.logf("opened %s (%dx%d)", full, img.Bounds().Dx(), img.Bounds().Dy())
	}
	return img, nil
}

func (obj *Imager) Rotate(img image.Image) (image.Image, error) {
	return imaging.Rotate90(img), nil
}

func (obj *Imager) Combine(a, b image.Image) (image.Image, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dy() != bb.Dy() {
		return nil, &HeightMismatchError{Left: ab.Dy(), Right: bb.Dy()}
	}
	dst := imaging.New(ab.Dx()+bb.Dx(), ab.Dy(), color.NRGBA{})
	dst = imaging.Paste(dst, a, image.Pt(0, 0))
	dst = imaging.Paste(dst, b, image.Pt(ab.Dx(), 0))
	return dst, nil
}

// Brightness converts factor into the percentage change that imaging wants:
// 1.5 is +50%, 0.5 is -50%.
func (obj *Imager) Brightness(img image.Image, factor float64) (image.Image, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("brightness factor must be positive, got %g", factor)
	}
	pct := (factor - 1) * 100
	if pct > 100 {
		pct = 100
	}
	return imaging.AdjustBrightness(img, pct), nil
}

func (obj *Imager) Blur(img image.Image) (image.Image, error) {
	return imaging.Blur(img, obj.config().BlurSigma), nil
}

func (obj *Imager) Invert(img image.Image) (image.Image, error) {
	return imaging.Invert(img), nil
}

// Equal compares size and pixels after normalizing both images to NRGBA.
func (obj *Imager) Equal(a, b image.Image) (bool, error) {
	if a.Bounds().Size() != b.Bounds().Size() {
		return false, nil
	}
	return bytes.Equal(imaging.Clone(a).Pix, imaging.Clone(b).Pix), nil
}

// Materialize saves img under the configured output name, numbering later
// saves. A failed save does not use up a number and leaves no file behind.
func (obj *Imager) Materialize(img image.Image) (string, error) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()

	name := obj.outputName(obj.count)
	if err := obj.save(name, img); err != nil {
		return "", err
	}
	obj.count++
	obj.logf("saved %dx%d image to %s", img.Bounds().Dx(), img.Bounds().Dy(), name)
	return name, nil
}

func (obj *Imager) save(name string, img image.Image) error {
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return errwrap.Wrapf(err, "cannot save %s", name)
	}
	f, err := obj.Fs.Create(name)
	if err != nil {
		return errwrap.Wrapf(err, "cannot save %s", name)
	}
	if err := imaging.Encode(f, img, format); err != nil {
		f.Close()
		obj.remove(name)
		return errwrap.Wrapf(err, "cannot encode %s", name)
	}
	if err := f.Close(); err != nil {
		obj.remove(name)
		return errwrap.Wrapf(err, "cannot save %s", name)
	}
	return nil
}

func (obj *Imager) remove(name string) {
	if err := obj.Fs.Remove(name); err != nil {
		obj.logf("could not remove partial output %s: %v", name, err)
	}
}

// outputName numbers the configured output: answer.png, answer-1.png, ...
func (obj *Imager) outputName(n int) string {
	output := obj.config().Output
	if n == 0 {
		return output
	}
	ext := filepath.Ext(output)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(output, ext), n, ext)
}

func (obj *Imager) config() *Config {
	if obj.Config == nil {
		return DefaultConfig()
	}
	return obj.Config
}

func (obj *Imager) logf(format string, v ...interface{}) {
	if obj.Logf == nil {
		return
	}
	obj.Logf(format, v...)
}
