package render

import (
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/partx/geom"
)

type fakeToken struct{}

func (fakeToken) Wait() bool                     { return true }
func (fakeToken) WaitTimeout(time.Duration) bool { return true }
func (fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (fakeToken) Error() error { return nil }

type publishedFrame struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

type fakeClient struct {
	frames []publishedFrame
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.frames = append(c.frames, publishedFrame{topic, qos, retained, payload.([]byte)})
	return fakeToken{}
}

func (c *fakeClient) IsConnected() bool       { return true }
func (c *fakeClient) IsConnectionOpen() bool  { return true }
func (c *fakeClient) Connect() mqtt.Token     { return fakeToken{} }
func (c *fakeClient) Disconnect(quiesce uint) {}
func (c *fakeClient) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token {
	return fakeToken{}
}
func (c *fakeClient) SubscribeMultiple(filters map[string]byte, callback mqtt.MessageHandler) mqtt.Token {
	return fakeToken{}
}
func (c *fakeClient) Unsubscribe(topics ...string) mqtt.Token          { return fakeToken{} }
func (c *fakeClient) AddRoute(topic string, callback mqtt.MessageHandler) {}
func (c *fakeClient) OptionsReader() mqtt.ClientOptionsReader          { return mqtt.ClientOptionsReader{} }

func TestNetworkRendererPublishesPerFrame(t *testing.T) {
	client := new(fakeClient)
	r := NewNetworkRenderer(client, "partx/frames")

	origin := geom.V(0, 64, 0)
	r.BeforeFrame(0, origin)
	r.DrawParticle(Particle{ID: 2}, 0, geom.V(1, 0, 0))
	r.AfterFrame(0, origin)

	r.BeforeFrame(1, origin)
	r.DrawParticle(Particle{ID: 2}, 1, geom.V(2, 0, 0))
	r.AfterFrame(1, origin)

	if len(client.frames) != 2 {
		t.Fatalf("published %d frames, want 2", len(client.frames))
	}
	for i, f := range client.frames {
		if f.topic != "partx/frames" {
			t.Errorf("frame %d topic = %q", i, f.topic)
		}
		if f.qos != 2 || f.retained {
			t.Errorf("frame %d qos/retained = %d/%v", i, f.qos, f.retained)
		}
		if f.payload[0] != 'F' {
			t.Errorf("frame %d does not start with a frame marker", i)
		}
	}

	// The type is cleared between frames, so the second frame re-sends
	// it even though the particle did not change.
	if client.frames[1].payload[13] != 'T' {
		t.Errorf("second frame byte 13 = %c, want T", client.frames[1].payload[13])
	}
}

func TestNetworkRendererElidesRepeatedType(t *testing.T) {
	client := new(fakeClient)
	r := NewNetworkRenderer(client, "partx/frames")

	r.BeforeFrame(0, geom.V(0, 0, 0))
	r.DrawParticle(Particle{ID: 5}, 0, geom.V(1, 0, 0))
	r.DrawParticle(Particle{ID: 5}, 0, geom.V(2, 0, 0))
	r.DrawParticle(Particle{ID: 6}, 0, geom.V(3, 0, 0))
	r.AfterFrame(0, geom.V(0, 0, 0))

	payload := client.frames[0].payload
	typeSwitches := 0
	for i := 0; i < len(payload); {
		switch payload[i] {
		case 'F':
			i += 13
		case 'T':
			typeSwitches++
			i += 2
		case 'P':
			i += 13
		default:
			t.Fatalf("unexpected tag %c at %d", payload[i], i)
		}
	}
	if typeSwitches != 2 {
		t.Errorf("type switches = %d, want 2", typeSwitches)
	}
}
