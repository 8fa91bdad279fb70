package shape

import (
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"github.com/matt-g-everett/partx/geom"
	"github.com/matt-g-everett/partx/render"
)

type pixel struct {
	offset geom.Vec3
	color  colorful.Color
}

// Image draws a raster image as a grid of colored particles. The source
// is rescaled once at construction; the sampled pixels are immutable
// afterwards and shared between clones.
type Image struct {
	Base
	PixelSize float64

	pixels []pixel
}

// NewImage samples src rescaled to width x height cells, one particle
// per opaque pixel, pixelSize world units apart.
func NewImage(p render.Particle, src image.Image, width, height int, pixelSize float64) (*Image, error) {
	if err := positiveCount("width", width); err != nil {
		return nil, err
	}
	if err := positiveCount("height", height); err != nil {
		return nil, err
	}
	if err := positive("pixel size", pixelSize); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("shape: image source must not be nil")
	}

	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	pixels := make([]pixel, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := scaled.RGBAAt(x, y)
			if c.A < 128 {
				continue
			}
			col, ok := colorful.MakeColor(c)
			if !ok {
				continue
			}
			pixels = append(pixels, pixel{
				offset: geom.V(
					(float64(x)-float64(width)/2)*pixelSize,
					(float64(height)/2-float64(y))*pixelSize,
					0,
				),
				color: col,
			})
		}
	}

	img := &Image{Base: newBase(p, 1), PixelSize: pixelSize, pixels: pixels}
	return img, nil
}

func (s *Image) Evaluate(r render.Renderer, step, totalSteps int, pos geom.Vec3) error {
	ctx, cur := applyStack(s.Before, NewContext(step, totalSteps, pos), s)
	self, ok := cur.(*Image)
	if !ok {
		return cur.Evaluate(r, step, totalSteps, pos)
	}
	f, err := self.resolve(step, totalSteps, pos)
	if err != nil {
		return err
	}
	for _, px := range self.pixels {
		particle := render.Particle{ID: self.Particle.ID, Color: px.color}
		r.DrawParticle(particle, step, px.offset.Rotate(f.Rotation).Add(f.Origin))
	}
	applyStack(self.After, ctx, self)
	return nil
}

func (s *Image) Clone() Shape {
	out := *s
	out.Base = s.cloneBase()
	return &out
}
