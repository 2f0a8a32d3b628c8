// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl2d

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/gl2d/driver"
)

// TextureOption configures a Texture2D during creation.
type TextureOption func(*textureOptions)

type textureOptions struct {
	wrapS, wrapT         driver.Enum
	minFilter, magFilter driver.Enum
	mipmap               bool
}

func defaultTextureOptions() textureOptions {
	return textureOptions{
		wrapS:     driver.Repeat,
		wrapT:     driver.Repeat,
		minFilter: driver.Linear,
		magFilter: driver.Linear,
		mipmap:    true,
	}
}

// WithWrap sets the horizontal and vertical wrap modes (Repeat by default).
func WithWrap(s, t driver.Enum) TextureOption {
	return func(o *textureOptions) {
		o.wrapS, o.wrapT = s, t
	}
}

// WithFilter sets the minification and magnification filters (Linear by
// default).
func WithFilter(minFilter, magFilter driver.Enum) TextureOption {
	return func(o *textureOptions) {
		o.minFilter, o.magFilter = minFilter, magFilter
	}
}

// WithMipmap controls mipmap generation (enabled by default).
func WithMipmap(enabled bool) TextureOption {
	return func(o *textureOptions) {
		o.mipmap = enabled
	}
}

// Texture2D owns a 2D RGBA texture.
type Texture2D struct {
	d      driver.Driver
	id     uint32
	width  int
	height int
}

// NewTexture2D uploads img as an RGBA texture. Rows are flipped so that
// texture coordinate (0, 0) is the bottom-left corner of the image, matching
// the OpenGL convention.
func NewTexture2D(d driver.Driver, img image.Image, opts ...TextureOption) *Texture2D {
	o := defaultTextureOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	flipRows(rgba)

	t := &Texture2D{d: d, id: d.GenTexture(), width: b.Dx(), height: b.Dy()}
	t.Bind(0)
	d.TexParameteri(driver.Texture2D, driver.TextureWrapS, int32(o.wrapS))
	d.TexParameteri(driver.Texture2D, driver.TextureWrapT, int32(o.wrapT))
	d.TexParameteri(driver.Texture2D, driver.TextureMinFilter, int32(o.minFilter))
	d.TexParameteri(driver.Texture2D, driver.TextureMagFilter, int32(o.magFilter))
	d.TexImage2D(driver.Texture2D, int32(t.width), int32(t.height), rgba.Pix)
	if o.mipmap {
		d.GenerateMipmap(driver.Texture2D)
	}
	return t
}

// LoadTexture2D decodes an image file (PNG, JPEG, BMP or WebP) and uploads
// it with NewTexture2D.
func LoadTexture2D(d driver.Driver, path string, opts ...TextureOption) (*Texture2D, error) {
	f, err := os.Open(path)
	if err != nil {
		Logger().Error("gl2d: can't open texture file", "path", path, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrTextureLoad, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		Logger().Error("gl2d: can't decode texture file", "path", path, "err", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrTextureLoad, path, err)
	}
	Logger().Debug("gl2d: texture decoded", "path", path, "format", format, "size", img.Bounds().Size())
	return NewTexture2D(d, img, opts...), nil
}

// ID returns the driver handle, 0 after Close.
func (t *Texture2D) ID() uint32 { return t.id }

// Size returns the texture size in pixels.
func (t *Texture2D) Size() (width, height int) { return t.width, t.height }

// Bind activates texture unit slot and binds the texture to it.
func (t *Texture2D) Bind(slot uint32) {
	t.d.ActiveTexture(driver.Texture0 + slot)
	t.d.BindTexture(driver.Texture2D, t.id)
}

// Close deletes the texture.
func (t *Texture2D) Close() {
	if t.id == 0 {
		return
	}
	t.d.DeleteTexture(t.id)
	t.id = 0
}

// flipRows mirrors the image vertically in place.
func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	tmp := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
