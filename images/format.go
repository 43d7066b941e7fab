package images

// ImageFormat represents supported image formats
type ImageFormat string

const (
	FormatJPEG ImageFormat = "jpeg"
	FormatPNG  ImageFormat = "png"
)

// FormatFromExtension maps a file extension to its image format.
// The match is case-sensitive: the batch consumes exactly ".jpg",
// ".jpeg" and ".png" and silently skips everything else.
//
// Arguments:
// - ext: The file extension including the leading dot.
//
// Returns:
// - ImageFormat: The matching format.
// - bool: False if the extension is not a recognized image extension.
func FormatFromExtension(ext string) (ImageFormat, bool) {
	switch ext {
	case ".jpg", ".jpeg":
		return FormatJPEG, true
	case ".png":
		return FormatPNG, true
	default:
		return "", false
	}
}
