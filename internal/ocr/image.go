package ocr

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedImage is returned for files no registered decoder accepts.
var ErrUnsupportedImage = errors.New("unsupported image format")

// Image is an encoded image ready to hand to an engine.
type Image struct {
	Path   string
	Format string
	Width  int
	Height int
	Data   []byte
}

// LoadImage reads path and checks that it decodes as png, jpeg, gif, bmp,
// tiff or webp.
func LoadImage(path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, errors.Wrap(err, "load image")
	}
	img, err := DecodeImage(data)
	if err != nil {
		return Image{}, errors.Wrapf(err, "load image %s", path)
	}
	img.Path = path
	return img, nil
}

// DecodeImage sniffs the format and dimensions of encoded image bytes.
func DecodeImage(data []byte) (Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return Image{}, ErrUnsupportedImage
		}
		return Image{}, errors.Wrap(err, "decode image header")
	}
	return Image{Format: format, Width: cfg.Width, Height: cfg.Height, Data: data}, nil
}
