package photo

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// pngHeader returns a PNG holding only a signature and an IHDR chunk for an
// 8-bit grayscale image of the given size.
func pngHeader(w, h uint32) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], w)
	binary.BigEndian.PutUint32(ihdr[4:8], h)
	ihdr[8] = 8

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	chunk := append([]byte("IHDR"), ihdr...)
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestNormalize_RejectsHugePixelCount(t *testing.T) {
	n := NewNormalizer()

	_, err := n.Normalize(employee.Photo{Data: pngHeader(12000, 12000)})

	assert.ErrorIs(t, err, employee.ErrUnsupportedPhoto)
}

func TestNormalize_ConvertsToJPEG(t *testing.T) {
	n := NewNormalizer()

	out, err := n.Normalize(employee.Photo{Filename: "face.png", ContentType: "image/png", Data: pngBytes(t, 64, 48, color.NRGBA{R: 200, A: 255})})

	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", out.ContentType)
	assert.Regexp(t, `^[0-9a-f-]{36}\.jpg$`, out.Filename)

	img, err := jpeg.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestNormalize_DownscalesKeepingAspect(t *testing.T) {
	n := NewNormalizer()

	out, err := n.Normalize(employee.Photo{Data: pngBytes(t, 2000, 1000, color.NRGBA{G: 120, A: 255})})

	require.NoError(t, err)
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 640, cfg.Height)
}

func TestNormalize_TransparentBecomesWhite(t *testing.T) {
	n := NewNormalizer()

	out, err := n.Normalize(employee.Photo{Data: pngBytes(t, 8, 8, color.NRGBA{})})

	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	r, g, b, _ := img.At(4, 4).RGBA()
	assert.Greater(t, r>>8, uint32(240))
	assert.Greater(t, g>>8, uint32(240))
	assert.Greater(t, b>>8, uint32(240))
}

func TestNormalize_Rejects(t *testing.T) {
	n := NewNormalizer()

	_, err := n.Normalize(employee.Photo{})
	assert.ErrorIs(t, err, employee.ErrPhotoRequired)

	_, err = n.Normalize(employee.Photo{Data: []byte("not an image")})
	assert.ErrorIs(t, err, employee.ErrUnsupportedPhoto)

	_, err = n.Normalize(employee.Photo{Data: make([]byte, employee.MaxPhotoBytes+1)})
	assert.ErrorIs(t, err, employee.ErrPhotoTooLarge)
}
