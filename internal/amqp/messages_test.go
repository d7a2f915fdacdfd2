package amqp

import (
	"testing"
	"time"
)

func TestNewTrainRequestMessage(t *testing.T) {
	msg := NewTrainRequestMessage("dataset changed")

	if msg.Reason != "dataset changed" {
		t.Errorf("Reason = %q, want %q", msg.Reason, "dataset changed")
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should not be zero")
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Error("Timestamp should be recent")
	}
}

func TestTrainRequestMessage_JSON(t *testing.T) {
	timestamp := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	msg := &TrainRequestMessage{Reason: "manual", Timestamp: timestamp}

	jsonBytes, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := TrainRequestMessageFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("TrainRequestMessageFromJSON() error = %v", err)
	}

	if parsed.Reason != msg.Reason {
		t.Errorf("Parsed Reason = %q, want %q", parsed.Reason, msg.Reason)
	}
	if !parsed.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("Parsed Timestamp = %v, want %v", parsed.Timestamp, msg.Timestamp)
	}
}

func TestModelUpdatedMessage_JSON(t *testing.T) {
	msg := NewModelUpdatedMessage("linear_svm", 0.87, 240, 7)

	jsonBytes, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := ModelUpdatedMessageFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("ModelUpdatedMessageFromJSON() error = %v", err)
	}

	if parsed.ModelKind != "linear_svm" {
		t.Errorf("Parsed ModelKind = %q, want %q", parsed.ModelKind, "linear_svm")
	}
	if parsed.Accuracy != 0.87 || parsed.ExampleCount != 240 || parsed.RunID != 7 {
		t.Errorf("Parsed fields not preserved: %+v", parsed)
	}
}

func TestModelUpdatedMessage_InvalidJSON(t *testing.T) {
	invalidJSON := []byte(`{"accuracy": "not_a_number"}`)

	_, err := ModelUpdatedMessageFromJSON(invalidJSON)
	if err == nil {
		t.Error("ModelUpdatedMessageFromJSON() should fail with invalid JSON")
	}
}
