package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// PreviewResult contains a zoomed crop around a pixel.
type PreviewResult struct {
	// X1,Y1 (inclusive) to X2,Y2 (exclusive) is the cropped area in image
	// coordinates, clipped to the image.
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`

	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// MatchPreview crops the square of the given radius centred on (x, y) and
// enlarges it by scale with nearest-neighbour sampling, so single pixels
// stay sharp. The square is clipped at the image edges.
func MatchPreview(img image.Image, x, y, radius int, scale float64) (*PreviewResult, error) {
	bounds := img.Bounds()
	pt := image.Pt(bounds.Min.X+x, bounds.Min.Y+y)
	if !pt.In(bounds) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, bounds.Dx(), bounds.Dy())
	}
	if radius < 0 {
		return nil, fmt.Errorf("invalid radius %d", radius)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("invalid scale %g", scale)
	}

	rect := image.Rect(pt.X-radius, pt.Y-radius, pt.X+radius+1, pt.Y+radius+1).Intersect(bounds)
	cropped := imaging.Crop(img, rect)

	if scale != 1.0 {
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		if newWidth < 1 {
			newWidth = 1
		}
		if newHeight < 1 {
			newHeight = 1
		}
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		X1:          rect.Min.X - bounds.Min.X,
		Y1:          rect.Min.Y - bounds.Min.Y,
		X2:          rect.Max.X - bounds.Min.X,
		Y2:          rect.Max.Y - bounds.Min.Y,
		Width:       cropped.Bounds().Dx(),
		Height:      cropped.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
