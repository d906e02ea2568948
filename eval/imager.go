package eval

import (
	"image"

	"github.com/pkg/errors"
)

// Imager is the imaging collaborator. The evaluator hands it picture data
// and never looks at pixels itself. Any I/O it does is the only blocking the
// evaluator ever performs, and nothing is retried.
type Imager interface {
	// Open loads a picture from path.
	Open(path string) (image.Image, error)

	// Rotate turns img 90 degrees counter-clockwise.
	Rotate(img image.Image) (image.Image, error)

	// Combine places b to the right of a. The heights must match; a
	// mismatch is reported with an error that has a ShapeMismatch method
	// returning true.
	Combine(a, b image.Image) (image.Image, error)

	// Brightness scales the brightness of img. A factor of 1.0 leaves it
	// unchanged.
	Brightness(img image.Image, factor float64) (image.Image, error)

	Blur(img image.Image) (image.Image, error)
	Invert(img image.Image) (image.Image, error)

	// Equal compares two pictures by content.
	Equal(a, b image.Image) (bool, error)

	// Materialize persists img and returns where it went.
	Materialize(img image.Image) (string, error)
}

type shapeMismatch interface {
	ShapeMismatch() bool
}

// imagingError converts a collaborator error into an EvalError, keeping its
// message verbatim.
func imagingError(err error) *EvalError {
	kind := KindImaging
	var sm shapeMismatch
	if errors.As(err, &sm) && sm.ShapeMismatch() {
		kind = KindShape
	}
	return &EvalError{Kind: kind, Reason: err.Error(), Err: err}
}
