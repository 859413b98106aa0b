package stream

import (
	"fmt"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

const publishTimeout = 5 * time.Second

// Streamer streams RGB frames over MQTT to an LED matrix.
type Streamer struct {
	client mqtt.Client
	topic  string
	width  int
	height int
}

// NewStreamer creates an instance of a Streamer. A zero width or height
// publishes frames at their rendered size.
func NewStreamer(client mqtt.Client, topic string, width, height int) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topic = topic
	s.width = width
	s.height = height
	return s
}

// Payload encodes f at the streamer's matrix size.
func (s *Streamer) Payload(f *Frame) []byte {
	w, h := s.width, s.height
	if w == 0 || h == 0 {
		w, h = f.Width(), f.Height()
	}
	return marshalImage(f.Scaled(w, h))
}

// Present sends a frame as binary over MQTT.
func (s *Streamer) Present(f *Frame) error {
	token := s.client.Publish(s.topic, 0, false, s.Payload(f))
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish to %s: timed out", s.topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", s.topic, err)
	}
	return nil
}
