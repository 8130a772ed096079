package assimp

/*
#include <assimp/texture.h>
*/
import "C"

import (
	"strings"
	"unsafe"

	"github.com/wippyai/assimp/geom"
)

// Texture is a view over one embedded aiTexture. A texture with Height 0
// is compressed: Width is its byte length and Data holds the file bytes.
type Texture struct {
	raw *C.struct_aiTexture
}

func newTexture(p *C.struct_aiTexture) *Texture {
	return &Texture{raw: p}
}

func (t *Texture) Width() int  { return int(t.raw.mWidth) }
func (t *Texture) Height() int { return int(t.raw.mHeight) }

// Compressed reports whether the texture holds an encoded image file.
func (t *Texture) Compressed() bool { return t.raw.mHeight == 0 }

// Filename is the original file name, when the format records one.
func (t *Texture) Filename() string { return goString(&t.raw.mFilename) }

// FormatHint returns the format hint, such as "png" for compressed data
// or "rgba8888" for texels.
func (t *Texture) FormatHint() string {
	return C.GoString(&t.raw.achFormatHint[0])
}

// CheckFormat compares the format hint with format, ignoring case.
func (t *Texture) CheckFormat(format string) bool {
	if len(format) >= len(t.raw.achFormatHint) {
		return false
	}
	return strings.EqualFold(t.FormatHint(), format)
}

// Texels returns the Width*Height pixels of an uncompressed texture.
func (t *Texture) Texels() []geom.Texel {
	if t.Compressed() {
		return nil
	}
	return slice[geom.Texel](t.raw.pcData, t.raw.mWidth*t.raw.mHeight)
}

// Data returns the encoded bytes of a compressed texture.
func (t *Texture) Data() []byte {
	if !t.Compressed() || t.raw.pcData == nil {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(t.raw.pcData)), int(t.raw.mWidth))
}
