package photo

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"
	"log/slog"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/employee"
	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	maxDimension  = 1280
	maxPixels     = 40_000_000
	maxOutputSize = 1 << 20
	startQuality  = 90
	minQuality    = 60
)

// NormalizerImpl turns uploaded face photos into JPEGs the recognition
// backend accepts: bounded dimensions, no alpha channel, bounded size.
type NormalizerImpl struct{}

func NewNormalizer() employee.PhotoNormalizer {
	return &NormalizerImpl{}
}

func (n *NormalizerImpl) Normalize(photo employee.Photo) (employee.Photo, error) {
	if len(photo.Data) == 0 {
		return employee.Photo{}, employee.ErrPhotoRequired
	}
	if len(photo.Data) > employee.MaxPhotoBytes {
		return employee.Photo{}, employee.ErrPhotoTooLarge
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(photo.Data))
	if err != nil {
		return employee.Photo{}, fmt.Errorf("%w: %v", employee.ErrUnsupportedPhoto, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return employee.Photo{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", employee.ErrUnsupportedPhoto, cfg.Width, cfg.Height, maxPixels)
	}

	img, format, err := image.Decode(bytes.NewReader(photo.Data))
	if err != nil {
		return employee.Photo{}, fmt.Errorf("%w: %v", employee.ErrUnsupportedPhoto, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		img = resize.Thumbnail(maxDimension, maxDimension, img, resize.Lanczos3)
	}

	data, err := encodeJPEG(flatten(img))
	if err != nil {
		return employee.Photo{}, err
	}

	slog.Debug("Photo normalized",
		"original_format", format,
		"original_size", len(photo.Data),
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy(),
		"size", len(data),
	)

	return employee.Photo{
		Filename:    uuid.NewString() + ".jpg",
		ContentType: "image/jpeg",
		Data:        data,
	}, nil
}

// flatten composites img over white; JPEG has no alpha channel.
func flatten(img image.Image) image.Image {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Over)
	return dst
}

// encodeJPEG lowers quality in steps until the output fits maxOutputSize.
func encodeJPEG(img image.Image) ([]byte, error) {
	var out []byte
	for quality := startQuality; quality >= minQuality; quality -= 10 {
		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
		out = buf.Bytes()
		if len(out) <= maxOutputSize {
			break
		}
	}
	return out, nil
}
