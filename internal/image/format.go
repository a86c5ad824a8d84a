// Package image loads and saves image files for radmix.
//
// Decoding supports PNG, JPEG, GIF, BMP, TIFF and WebP; encoding supports
// every format except WebP.
package image

import (
	"path/filepath"
	"strings"
)

// Format is an image file encoding.
type Format uint8

const (
	// FormatUnknown is returned when a format cannot be determined.
	FormatUnknown Format = iota

	// FormatPNG is lossless PNG. Default output format.
	FormatPNG

	// FormatJPEG is baseline JPEG.
	FormatJPEG

	// FormatGIF is paletted GIF (first frame only).
	FormatGIF

	// FormatBMP is Windows bitmap.
	FormatBMP

	// FormatTIFF is TIFF.
	FormatTIFF

	// FormatWebP is WebP. Decode only.
	FormatWebP

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a file format.
type FormatInfo struct {
	// Name is the format name as reported by image.Decode.
	Name string

	// Extensions lists lowercase file extensions, including the dot.
	Extensions []string

	// CanEncode indicates whether Encode supports this format.
	CanEncode bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatUnknown: {},
	FormatPNG: {
		Name:       "png",
		Extensions: []string{".png"},
		CanEncode:  true,
	},
	FormatJPEG: {
		Name:       "jpeg",
		Extensions: []string{".jpg", ".jpeg", ".jpe"},
		CanEncode:  true,
	},
	FormatGIF: {
		Name:       "gif",
		Extensions: []string{".gif"},
		CanEncode:  true,
	},
	FormatBMP: {
		Name:       "bmp",
		Extensions: []string{".bmp"},
		CanEncode:  true,
	},
	FormatTIFF: {
		Name:       "tiff",
		Extensions: []string{".tif", ".tiff"},
		CanEncode:  true,
	},
	FormatWebP: {
		Name:       "webp",
		Extensions: []string{".webp"},
		CanEncode:  false,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// CanEncode returns true if the format can be written.
func (f Format) CanEncode() bool {
	return f.Info().CanEncode
}

// IsValid returns true if the format is a known format.
func (f Format) IsValid() bool {
	return f > FormatUnknown && f < formatCount
}

// String returns the format name.
func (f Format) String() string {
	if !f.IsValid() {
		return "unknown"
	}
	return f.Info().Name
}

// FormatFromName maps a name reported by image.Decode to a Format.
func FormatFromName(name string) Format {
	for f := FormatPNG; f < formatCount; f++ {
		if formatInfoTable[f].Name == name {
			return f
		}
	}
	return FormatUnknown
}

// FormatFromPath returns the format implied by the file extension of path.
func FormatFromPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return FormatUnknown
	}
	for f := FormatPNG; f < formatCount; f++ {
		for _, e := range formatInfoTable[f].Extensions {
			if e == ext {
				return f
			}
		}
	}
	return FormatUnknown
}
