package mqtt

import (
	"testing"
	"time"
)

func TestPublishBadBroker(t *testing.T) {
	// Nothing listens on this port.
	err := Publish(Options{
		Broker:   "tcp://127.0.0.1:19999",
		ClientID: "tenx-test",
		Topic:    "tenx/test",
		Timeout:  2 * time.Second,
	}, []byte("hello"))
	if err == nil {
		t.Fatal("expected error for unreachable broker")
	}
}

func TestPublishBadScheme(t *testing.T) {
	err := Publish(Options{Broker: "not-a-url", ClientID: "tenx-test", Topic: "tenx/test"}, []byte("hello"))
	if err == nil {
		t.Fatal("expected error for invalid broker URL")
	}
}

func TestPublishRejectsQoS(t *testing.T) {
	err := Publish(Options{Broker: "tcp://127.0.0.1:19999", Topic: "t", QoS: 3}, nil)
	if err == nil {
		t.Fatal("expected error for qos 3")
	}
}
