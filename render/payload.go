package render

import (
	"encoding/binary"
	"math"

	"github.com/matt-g-everett/partx/geom"
)

// An Instruction is one tagged entry of a frame payload.
type Instruction interface {
	appendTo(data []byte) []byte
}

// Payload is the ordered instruction list for one animation frame.
type Payload struct {
	Instructions []Instruction
}

// MarshalBinary encodes the payload as a big-endian tagged instruction
// stream for a remote rendering device.
func (p *Payload) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 0, 32*len(p.Instructions))
	for _, ins := range p.Instructions {
		data = ins.appendTo(data)
	}
	return data, nil
}

func appendFloat(data []byte, v float64) []byte {
	return binary.BigEndian.AppendUint32(data, math.Float32bits(float32(v)))
}

func appendVec(data []byte, v geom.Vec3) []byte {
	data = appendFloat(data, v.X)
	data = appendFloat(data, v.Y)
	return appendFloat(data, v.Z)
}

// appendAmount clamps to the wire format's uint16 range rather than
// letting the conversion wrap.
func appendAmount(data []byte, amount int) []byte {
	if amount < 0 {
		amount = 0
	}
	if amount > math.MaxUint16 {
		amount = math.MaxUint16
	}
	return binary.BigEndian.AppendUint16(data, uint16(amount))
}

// FrameIns marks the start of a frame at an origin.
type FrameIns struct {
	Origin geom.Vec3
}

func (f FrameIns) appendTo(data []byte) []byte {
	return appendVec(append(data, 'F'), f.Origin)
}

// TypeIns switches the active particle type.
type TypeIns struct {
	ID uint8
}

func (t TypeIns) appendTo(data []byte) []byte {
	return append(data, 'T', t.ID)
}

// PointIns draws a single particle.
type PointIns struct {
	Pos geom.Vec3
}

func (p PointIns) appendTo(data []byte) []byte {
	return appendVec(append(data, 'P'), p.Pos)
}

// LineIns draws amount particles from Start to End.
type LineIns struct {
	Start, End geom.Vec3
	Amount     int
}

func (l LineIns) appendTo(data []byte) []byte {
	data = appendVec(append(data, 'L'), l.Start)
	data = appendVec(data, l.End)
	return appendAmount(data, l.Amount)
}

// EllipseIns draws an ellipse outline.
type EllipseIns struct {
	Center          geom.Vec3
	Radius, Stretch float64
	Rotation        geom.Vec3
	Amount          int
}

func (e EllipseIns) appendTo(data []byte) []byte {
	data = appendVec(append(data, 'E'), e.Center)
	data = appendFloat(data, e.Radius)
	data = appendFloat(data, e.Stretch)
	data = appendVec(data, e.Rotation)
	return appendAmount(data, e.Amount)
}

// EllipsoidIns draws an ellipsoid surface.
type EllipsoidIns struct {
	Center, Radii, Rotation geom.Vec3
	Amount                  int
}

func (e EllipsoidIns) appendTo(data []byte) []byte {
	data = appendVec(append(data, 'S'), e.Center)
	data = appendVec(data, e.Radii)
	data = appendVec(data, e.Rotation)
	return appendAmount(data, e.Amount)
}

// BezierIns draws along a curve; the point count byte covers start,
// end, and controls.
type BezierIns struct {
	Start, End geom.Vec3
	Controls   []geom.Vec3
	Rotation   geom.Vec3
	Amount     int
}

func (b BezierIns) appendTo(data []byte) []byte {
	data = append(data, 'B', uint8(len(b.Controls)+2))
	data = appendVec(data, b.Start)
	data = appendVec(data, b.End)
	for _, c := range b.Controls {
		data = appendVec(data, c)
	}
	data = appendVec(data, b.Rotation)
	return appendAmount(data, b.Amount)
}

// ConeIns draws a cone shell.
type ConeIns struct {
	Center         geom.Vec3
	Height, Radius float64
	Rotation       geom.Vec3
	Amount         int
}

func (c ConeIns) appendTo(data []byte) []byte {
	data = appendVec(append(data, 'C'), c.Center)
	data = appendFloat(data, c.Height)
	data = appendFloat(data, c.Radius)
	data = appendVec(data, c.Rotation)
	return appendAmount(data, c.Amount)
}

// CylinderIns draws a cylinder shell.
type CylinderIns struct {
	Center         geom.Vec3
	Radius, Height float64
	Rotation       geom.Vec3
	Amount         int
}

func (c CylinderIns) appendTo(data []byte) []byte {
	data = appendVec(append(data, 'Y'), c.Center)
	data = appendFloat(data, c.Radius)
	data = appendFloat(data, c.Height)
	data = appendVec(data, c.Rotation)
	return appendAmount(data, c.Amount)
}
