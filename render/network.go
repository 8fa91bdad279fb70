package render

import (
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/partx/bezier"
	"github.com/matt-g-everett/partx/geom"
)

// NetworkRenderer buffers draw instructions during a frame and
// publishes them as one binary payload over MQTT on AfterFrame. The
// active particle type is only re-sent when it changes.
type NetworkRenderer struct {
	client mqtt.Client
	topic  string

	instructions []Instruction
	prevType     uint8
	hasType      bool
}

// NewNetworkRenderer creates a NetworkRenderer publishing frames on the
// given topic.
func NewNetworkRenderer(client mqtt.Client, topic string) *NetworkRenderer {
	n := new(NetworkRenderer)
	n.client = client
	n.topic = topic
	return n
}

func (n *NetworkRenderer) switchType(p Particle) {
	if n.hasType && n.prevType == p.ID {
		return
	}
	n.instructions = append(n.instructions, TypeIns{ID: p.ID})
	n.prevType = p.ID
	n.hasType = true
}

func (n *NetworkRenderer) DrawParticle(p Particle, step int, pos geom.Vec3) {
	n.switchType(p)
	n.instructions = append(n.instructions, PointIns{Pos: pos})
}

func (n *NetworkRenderer) DrawLine(p Particle, step int, start, end geom.Vec3, amount int) {
	n.switchType(p)
	n.instructions = append(n.instructions, LineIns{Start: start, End: end, Amount: amount})
}

func (n *NetworkRenderer) DrawEllipse(p Particle, step int, center geom.Vec3, radius, stretch float64, rotation geom.Vec3, amount int) {
	n.switchType(p)
	n.instructions = append(n.instructions, EllipseIns{
		Center: center, Radius: radius, Stretch: stretch, Rotation: rotation, Amount: amount,
	})
}

func (n *NetworkRenderer) DrawEllipsoid(p Particle, step int, center, radii, rotation geom.Vec3, amount int) {
	n.switchType(p)
	n.instructions = append(n.instructions, EllipsoidIns{
		Center: center, Radii: radii, Rotation: rotation, Amount: amount,
	})
}

func (n *NetworkRenderer) DrawBezier(p Particle, step int, origin geom.Vec3, curve bezier.Curve, rotation geom.Vec3, amount int) {
	n.switchType(p)
	n.instructions = append(n.instructions, BezierIns{
		Start:    curve.Start().Add(origin),
		End:      curve.End().Add(origin),
		Controls: translate(curve.ControlPoints(), origin),
		Rotation: rotation,
		Amount:   amount,
	})
}

func (n *NetworkRenderer) DrawCone(p Particle, step int, center geom.Vec3, height, radius float64, rotation geom.Vec3, amount int) {
	n.switchType(p)
	n.instructions = append(n.instructions, ConeIns{
		Center: center, Height: height, Radius: radius, Rotation: rotation, Amount: amount,
	})
}

func (n *NetworkRenderer) DrawCylinder(p Particle, step int, center geom.Vec3, radius, height float64, rotation geom.Vec3, amount int) {
	n.switchType(p)
	n.instructions = append(n.instructions, CylinderIns{
		Center: center, Radius: radius, Height: height, Rotation: rotation, Amount: amount,
	})
}

func (n *NetworkRenderer) BeforeFrame(step int, origin geom.Vec3) {
	n.instructions = append(n.instructions, FrameIns{Origin: origin})
}

// AfterFrame publishes the buffered frame and resets the buffer. The
// particle type is cleared so the next frame re-sends it.
func (n *NetworkRenderer) AfterFrame(step int, origin geom.Vec3) {
	payload := Payload{Instructions: n.instructions}
	data, err := payload.MarshalBinary()
	if err != nil {
		log.Printf("frame %d: %v", step, err)
		return
	}
	token := n.client.Publish(n.topic, 2, false, data)
	token.Wait()

	n.instructions = make([]Instruction, 0, len(n.instructions))
	n.hasType = false
}

func translate(points []geom.Vec3, offset geom.Vec3) []geom.Vec3 {
	out := make([]geom.Vec3, len(points))
	for i, p := range points {
		out[i] = p.Add(offset)
	}
	return out
}
