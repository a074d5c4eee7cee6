package quantize

import (
	"fmt"
	"image"
	"io"
	"math"

	// Wallpaper decoders. GIF decoding yields the first frame only.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/gen2brain/avif"

	"github.com/AvengeMedia/dankwall/internal/hct"
)

// DecodePixels decodes an image and returns its pixel list, scaled so
// the total pixel area does not exceed size*size. Palette and
// grayscale images come out as plain RGB; alpha is dropped.
func DecodePixels(r io.Reader, size int) ([]hct.ARGB, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return PixelsScaled(img, size), nil
}

// PixelsScaled extracts pixels after an aspect-preserving downscale.
// Images already within the target area are used as-is; upscaling
// never happens.
func PixelsScaled(img image.Image, size int) []hct.ARGB {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	nw, nh := optimalSize(w, h, size)
	if nw >= w && nh >= h {
		return pixels(img)
	}
	return downscaledPixels(img, nw, nh)
}

// optimalSize scales (w, h) so w*h <= size*size, preserving aspect
// ratio and never going below 1x1 or above the original.
func optimalSize(w, h, size int) (int, int) {
	area := float64(w) * float64(h)
	target := float64(size) * float64(size)
	if area <= target {
		return w, h
	}
	scale := math.Sqrt(target / area)
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}

func pixels(img image.Image) []hct.ARGB {
	b := img.Bounds()
	out := make([]hct.ARGB, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, _ := img.At(x, y).RGBA()
			out = append(out, hct.ARGBFromRGB(uint8(r>>8), uint8(g>>8), uint8(bb>>8)))
		}
	}
	return out
}

// downscaledPixels box-averages source pixels into an nw x nh grid.
func downscaledPixels(img image.Image, nw, nh int) []hct.ARGB {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]hct.ARGB, 0, nw*nh)
	for ty := 0; ty < nh; ty++ {
		sy0 := b.Min.Y + ty*h/nh
		sy1 := b.Min.Y + (ty+1)*h/nh
		if sy1 <= sy0 {
			sy1 = sy0 + 1
		}
		for tx := 0; tx < nw; tx++ {
			sx0 := b.Min.X + tx*w/nw
			sx1 := b.Min.X + (tx+1)*w/nw
			if sx1 <= sx0 {
				sx1 = sx0 + 1
			}
			var rSum, gSum, bSum, n uint64
			for sy := sy0; sy < sy1; sy++ {
				for sx := sx0; sx < sx1; sx++ {
					r, g, bb, _ := img.At(sx, sy).RGBA()
					rSum += uint64(r >> 8)
					gSum += uint64(g >> 8)
					bSum += uint64(bb >> 8)
					n++
				}
			}
			out = append(out, hct.ARGBFromRGB(
				uint8((rSum+n/2)/n),
				uint8((gSum+n/2)/n),
				uint8((bSum+n/2)/n),
			))
		}
	}
	return out
}
