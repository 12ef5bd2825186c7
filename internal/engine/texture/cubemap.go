// Package texture decodes images and uploads them as OpenGL textures.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp" // register BMP decoder
)

// CubeFaces is the number of faces of a cubemap, in GL order
// +X, -X, +Y, -Y, +Z, -Z.
const CubeFaces = 6

// ErrFaceSize is returned when cubemap faces are not square or differ in size.
var ErrFaceSize = errors.New("cubemap faces must be square and equally sized")

// DecodeImage decodes a JPEG, PNG or BMP image into RGBA.
func DecodeImage(data []byte) (*image.RGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba, nil
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba, nil
}

// DecodeCubemap decodes six face images, in GL face order.
func DecodeCubemap(faces [][]byte) ([CubeFaces]*image.RGBA, error) {
	var out [CubeFaces]*image.RGBA
	if len(faces) != CubeFaces {
		return out, fmt.Errorf("cubemap needs %d faces, got %d", CubeFaces, len(faces))
	}

	for i, data := range faces {
		img, err := DecodeImage(data)
		if err != nil {
			return out, fmt.Errorf("face %d: %w", i, err)
		}
		out[i] = img
	}

	size := out[0].Rect.Size()
	for i, img := range out {
		s := img.Rect.Size()
		if s.X != s.Y || s != size {
			return out, fmt.Errorf("face %d is %dx%d, want %dx%d: %w", i, s.X, s.Y, size.X, size.X, ErrFaceSize)
		}
	}

	return out, nil
}

// UploadCubemap creates a GL cubemap texture from decoded faces.
// Requires a current GL context.
func UploadCubemap(faces [CubeFaces]*image.RGBA) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, id)

	for i, img := range faces {
		gl.TexImage2D(
			gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i),
			0,
			gl.RGBA,
			int32(img.Rect.Dx()),
			int32(img.Rect.Dy()),
			0,
			gl.RGBA,
			gl.UNSIGNED_BYTE,
			gl.Ptr(img.Pix),
		)
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	return id
}

// Delete releases a texture created by UploadCubemap.
func Delete(id uint32) {
	if id != 0 {
		gl.DeleteTextures(1, &id)
	}
}
