package render

import (
	"strings"
	"testing"

	yaml "gopkg.in/yaml.v2"
)

func TestConfigDecode(t *testing.T) {
	doc := `
mqtt:
  url: tcp://broker.local:1883
  username: partx
  password: secret
  topics:
    frames: partx/frames
animation:
  tickMs: 40
`
	var c Config
	if err := yaml.NewDecoder(strings.NewReader(doc)).Decode(&c); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if c.Mqtt.URL != "tcp://broker.local:1883" {
		t.Errorf("url = %q", c.Mqtt.URL)
	}
	if c.Mqtt.Topics.Frames != "partx/frames" {
		t.Errorf("frames topic = %q", c.Mqtt.Topics.Frames)
	}
	if c.Animation.TickMs != 40 {
		t.Errorf("tickMs = %d", c.Animation.TickMs)
	}
}
