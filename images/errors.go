package images

import "github.com/pkg/errors"

// Error kinds surfaced by the processing pipeline. Callers wrap these
// with context via errors.Wrapf so errors.Is still matches the kind.
var (
	// ErrDecode indicates the file could not be decoded as an image.
	ErrDecode = errors.New("image cannot be decoded")
	// ErrShape indicates a decoded image with degenerate dimensions.
	ErrShape = errors.New("unexpected image shape")
	// ErrLayout indicates an unsupported channel layout reached the
	// trimmer. This is a caller contract violation, not a data error.
	ErrLayout = errors.New("unsupported channel layout")
	// ErrMaskBounds indicates a mask/image dimension mismatch.
	ErrMaskBounds = errors.New("mask dimensions do not match image")
)
