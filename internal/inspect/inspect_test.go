package inspect

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, path string, encode func(f *os.File) error) string {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, encode(f))
	require.NoError(t, f.Close())
	return path
}

func TestInspectPNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 320, 200))
	img.Set(10, 10, color.NRGBA{R: 255, A: 255})
	img.Set(11, 10, color.NRGBA{G: 255, A: 40})
	path := writeImage(t, filepath.Join(t.TempDir(), "shot.png"), func(f *os.File) error {
		return png.Encode(f, img)
	})
	mtime := time.Date(2024, 6, 1, 9, 0, 0, 0, time.Local)
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	stat, err := os.Stat(path)
	require.NoError(t, err)

	info := Inspect(path)
	require.True(t, info.OK(), info.Error)
	assert.Equal(t, path, info.Path)
	assert.Equal(t, 320, info.Width)
	assert.Equal(t, 200, info.Height)
	assert.Equal(t, "320x200", info.Dimensions)
	assert.Equal(t, "PNG", info.Format)
	assert.Equal(t, "RGBA", info.Mode)
	assert.Equal(t, stat.Size(), info.SizeBytes)
	assert.Regexp(t, `^\d+\.\d KB$`, info.Size)
	assert.Equal(t, "2024-06-01 09:00:00", info.Modified)
	assert.Empty(t, info.Created)
}

func TestInspectPNGModes(t *testing.T) {
	opaque := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range opaque.Pix {
		opaque.Pix[i] = 0xff
	}
	colorAlpha := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	colorAlpha.Set(1, 1, color.NRGBA{R: 255, A: 128})

	tests := []struct {
		name string
		img  image.Image
		want string
	}{
		{"opaque truecolor", opaque, "RGB"},
		{"truecolor with alpha", colorAlpha, "RGBA"},
		{"gray", image.NewGray(image.Rect(0, 0, 4, 4)), "L"},
		{"paletted", image.NewPaletted(image.Rect(0, 0, 4, 4), palette.Plan9), "P"},
	}
	dir := t.TempDir()
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeImage(t, filepath.Join(dir, fmt.Sprintf("%d.png", i)), func(f *os.File) error {
				return png.Encode(f, tt.img)
			})
			info := Inspect(path)
			require.True(t, info.OK(), info.Error)
			assert.Equal(t, tt.want, info.Mode)
		})
	}
}

// grayAlphaPNG encodes a w x h 8-bit gray+alpha PNG, a color type
// image/png can decode but never writes.
func grayAlphaPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	chunk := func(buf *bytes.Buffer, typ string, data []byte) {
		_ = binary.Write(buf, binary.BigEndian, uint32(len(data)))
		body := append([]byte(typ), data...)
		buf.Write(body)
		_ = binary.Write(buf, binary.BigEndian, crc32.ChecksumIEEE(body))
	}

	var ihdr bytes.Buffer
	_ = binary.Write(&ihdr, binary.BigEndian, uint32(w))
	_ = binary.Write(&ihdr, binary.BigEndian, uint32(h))
	ihdr.Write([]byte{8, 4, 0, 0, 0}) // depth, gray+alpha, deflate, no filter, no interlace

	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	row := make([]byte, 1+2*w)
	for y := 0; y < h; y++ {
		_, err := zw.Write(row)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	var out bytes.Buffer
	out.WriteString("\x89PNG\r\n\x1a\n")
	chunk(&out, "IHDR", ihdr.Bytes())
	chunk(&out, "IDAT", idat.Bytes())
	chunk(&out, "IEND", nil)
	return out.Bytes()
}

func TestInspectPNGGrayAlpha(t *testing.T) {
	path := filepath.Join(t.TempDir(), "la.png")
	require.NoError(t, os.WriteFile(path, grayAlphaPNG(t, 6, 3), 0o644))

	info := Inspect(path)
	require.True(t, info.OK(), info.Error)
	assert.Equal(t, "PNG", info.Format)
	assert.Equal(t, "6x3", info.Dimensions)
	assert.Equal(t, "LA", info.Mode)
}

func TestInspectJPEGColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(2, 2, color.RGBA{R: 200, G: 40, B: 40, A: 255})
	path := writeImage(t, filepath.Join(t.TempDir(), "color.jpg"), func(f *os.File) error {
		return jpeg.Encode(f, img, nil)
	})

	info := Inspect(path)
	require.True(t, info.OK(), info.Error)
	assert.Equal(t, "RGB", info.Mode)
	assert.Empty(t, info.Created)
}

// exifJPEG returns a JPEG whose APP1 segment carries an IFD0 DateTime tag.
func exifJPEG(t *testing.T, dateTime string) []byte {
	t.Helper()
	var img bytes.Buffer
	require.NoError(t, jpeg.Encode(&img, image.NewGray(image.Rect(0, 0, 8, 8)), nil))

	value := append([]byte(dateTime), 0)
	var tiff bytes.Buffer
	be := binary.BigEndian
	tiff.WriteString("MM")
	_ = binary.Write(&tiff, be, uint16(42))
	_ = binary.Write(&tiff, be, uint32(8))
	_ = binary.Write(&tiff, be, uint16(1))      // entries
	_ = binary.Write(&tiff, be, uint16(0x0132)) // DateTime
	_ = binary.Write(&tiff, be, uint16(2))      // ASCII
	_ = binary.Write(&tiff, be, uint32(len(value)))
	_ = binary.Write(&tiff, be, uint32(8+2+12+4))
	_ = binary.Write(&tiff, be, uint32(0)) // no next IFD
	tiff.Write(value)

	payload := append([]byte("Exif\x00\x00"), tiff.Bytes()...)
	var app1 bytes.Buffer
	app1.Write([]byte{0xff, 0xe1})
	_ = binary.Write(&app1, be, uint16(len(payload)+2))
	app1.Write(payload)

	raw := img.Bytes()
	out := append([]byte{}, raw[:2]...)
	out = append(out, app1.Bytes()...)
	return append(out, raw[2:]...)
}

func TestInspectEXIFDateTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.jpg")
	require.NoError(t, os.WriteFile(path, exifJPEG(t, "2024:01:02 03:04:05"), 0o644))

	info := Inspect(path)
	require.True(t, info.OK(), info.Error)
	assert.Equal(t, "JPEG", info.Format)
	assert.Equal(t, "8x8", info.Dimensions)
	assert.Equal(t, "2024:01:02 03:04:05", info.Created)
}

func TestInspectJPEGGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 16, 9))
	path := writeImage(t, filepath.Join(t.TempDir(), "gray.jpg"), func(f *os.File) error {
		return jpeg.Encode(f, img, nil)
	})

	info := Inspect(path)
	require.True(t, info.OK(), info.Error)
	assert.Equal(t, "JPEG", info.Format)
	assert.Equal(t, "L", info.Mode)
	assert.Equal(t, "16x9", info.Dimensions)
}

func TestInspectPalettedGIF(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 4, 4), palette.Plan9)
	path := writeImage(t, filepath.Join(t.TempDir(), "anim.gif"), func(f *os.File) error {
		return gif.Encode(f, img, nil)
	})

	info := Inspect(path)
	require.True(t, info.OK(), info.Error)
	assert.Equal(t, "GIF", info.Format)
	assert.Equal(t, "P", info.Mode)
}

func TestInspectMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "file.png")

	info := Inspect(path)
	assert.False(t, info.OK())
	assert.NotEmpty(t, info.Error)
	assert.Equal(t, path, info.Path)
	assert.Empty(t, info.Dimensions)
	assert.Empty(t, info.Format)
}

func TestInspectCorruptImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\nnot really"), 0o644))

	info := Inspect(path)
	assert.False(t, info.OK())
	assert.Contains(t, info.Error, "cannot identify image file")
	assert.Empty(t, info.Dimensions)
	assert.Empty(t, info.Format)
	assert.Empty(t, info.Size)
}

func TestInspectDirectory(t *testing.T) {
	info := Inspect(t.TempDir())
	assert.False(t, info.OK())
	assert.Contains(t, info.Error, "is a directory")
}

func TestColorMode(t *testing.T) {
	assert.Equal(t, "RGB", colorMode(color.RGBAModel, "png"))
	assert.Equal(t, "RGBA", colorMode(color.NRGBAModel, "png"))
	assert.Equal(t, "L", colorMode(color.GrayModel, "png"))
	assert.Equal(t, "I;16", colorMode(color.Gray16Model, "png"))
	assert.Equal(t, "CMYK", colorMode(color.CMYKModel, "jpeg"))
	assert.Equal(t, "RGB", colorMode(color.YCbCrModel, "jpeg"))
	assert.Equal(t, "YCbCr", colorMode(color.YCbCrModel, "webp"))
	assert.Equal(t, "P", colorMode(color.Palette{color.Black, color.White}, "gif"))
}
