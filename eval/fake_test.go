package eval_test

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"sync"
)

// fakeImager is an in-memory Imager that counts the calls made to it.
type fakeImager struct {
	mutex sync.Mutex
	calls map[string]int
	files map[string]image.Image
	saved []image.Image
}

func newFakeImager() *fakeImager {
	return &fakeImager{
		calls: map[string]int{},
		files: map[string]image.Image{},
	}
}

type heightError struct{ a, b int }

func (e heightError) Error() string {
	return fmt.Sprintf("images must have equal height (%d != %d)", e.a, e.b)
}
func (e heightError) ShapeMismatch() bool { return true }

var errNotFound = fmt.Errorf("file not found")

func picture(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func (f *fakeImager) record(op string) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.calls[op]++
}

func (f *fakeImager) count(op string) int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.calls[op]
}

func (f *fakeImager) total() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeImager) Open(path string) (image.Image, error) {
	f.record("open")
	img, ok := f.files[path]
	if !ok {
		return nil, errNotFound
	}
	return img, nil
}

func (f *fakeImager) Rotate(img image.Image) (image.Image, error) {
	f.record("rotate")
	b := img.Bounds()
	return image.NewNRGBA(image.Rect(0, 0, b.Dy(), b.Dx())), nil
}

func (f *fakeImager) Combine(a, b image.Image) (image.Image, error) {
	f.record("combine")
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dy() != bb.Dy() {
		return nil, heightError{ab.Dy(), bb.Dy()}
	}
	return image.NewNRGBA(image.Rect(0, 0, ab.Dx()+bb.Dx(), ab.Dy())), nil
}

func (f *fakeImager) Brightness(img image.Image, factor float64) (image.Image, error) {
	f.record(fmt.Sprintf("brightness %g", factor))
	return img, nil
}

func (f *fakeImager) Blur(img image.Image) (image.Image, error) {
	f.record("blur")
	return img, nil
}

func (f *fakeImager) Invert(img image.Image) (image.Image, error) {
	f.record("invert")
	return img, nil
}

func (f *fakeImager) Equal(a, b image.Image) (bool, error) {
	f.record("equal")
	na, aok := a.(*image.NRGBA)
	nb, bok := b.(*image.NRGBA)
	if !aok || !bok {
		return false, fmt.Errorf("unsupported image")
	}
	return na.Rect.Size() == nb.Rect.Size() && bytes.Equal(na.Pix, nb.Pix), nil
}

func (f *fakeImager) Materialize(img image.Image) (string, error) {
	f.record("materialize")
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.saved = append(f.saved, img)
	return fmt.Sprintf("out-%d.png", len(f.saved)), nil
}
