package inspect

import (
	"image/color"
	"io"
)

// colorMode names a color model the way image tools usually label modes.
// JPEG stores color as YCbCr but is reported as RGB.
func colorMode(m color.Model, format string) string {
	if _, ok := m.(color.Palette); ok {
		return "P"
	}
	switch m {
	case color.RGBAModel, color.RGBA64Model:
		return "RGB"
	case color.NRGBAModel, color.NRGBA64Model:
		return "RGBA"
	case color.GrayModel:
		return "L"
	case color.Gray16Model:
		return "I;16"
	case color.YCbCrModel:
		if format == "jpeg" {
			return "RGB"
		}
		return "YCbCr"
	case color.NYCbCrAModel:
		return "RGBA"
	case color.CMYKModel:
		return "CMYK"
	case color.AlphaModel, color.Alpha16Model:
		return "A"
	}
	return "unknown"
}

// PNG IHDR color types.
const (
	pngGray      = 0
	pngTrueColor = 2
	pngPaletted  = 3
	pngGrayAlpha = 4
	pngTrueAlpha = 6
)

// pngMode reads the IHDR color type. image/png decodes gray+alpha to NRGBA,
// which is indistinguishable from truecolor+alpha by model alone.
func pngMode(r io.ReaderAt) (string, bool) {
	var hdr [26]byte
	if _, err := r.ReadAt(hdr[:], 0); err != nil {
		return "", false
	}
	if string(hdr[12:16]) != "IHDR" {
		return "", false
	}
	depth := hdr[24]
	switch hdr[25] {
	case pngGray:
		if depth == 16 {
			return "I;16", true
		}
		return "L", true
	case pngTrueColor:
		return "RGB", true
	case pngPaletted:
		return "P", true
	case pngGrayAlpha:
		return "LA", true
	case pngTrueAlpha:
		return "RGBA", true
	}
	return "", false
}
