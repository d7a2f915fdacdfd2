package amqp

import (
	"encoding/json"
	"time"
)

// TrainRequestMessage asks the classifier worker to run a full training
// pass over the current dataset.
type TrainRequestMessage struct {
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

func NewTrainRequestMessage(reason string) *TrainRequestMessage {
	return &TrainRequestMessage{Reason: reason, Timestamp: time.Now()}
}

func (m *TrainRequestMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func TrainRequestMessageFromJSON(data []byte) (*TrainRequestMessage, error) {
	var msg TrainRequestMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ModelUpdatedMessage announces that a new artifact bundle has been
// written; serving processes listen for it to pick up the new model.
type ModelUpdatedMessage struct {
	ModelKind    string    `json:"model_kind"`
	Accuracy     float64   `json:"accuracy"`
	ExampleCount int       `json:"example_count"`
	RunID        int64     `json:"run_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

func NewModelUpdatedMessage(kind string, accuracy float64, exampleCount int, runID int64) *ModelUpdatedMessage {
	return &ModelUpdatedMessage{
		ModelKind:    kind,
		Accuracy:     accuracy,
		ExampleCount: exampleCount,
		RunID:        runID,
		Timestamp:    time.Now(),
	}
}

func (m *ModelUpdatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ModelUpdatedMessageFromJSON(data []byte) (*ModelUpdatedMessage, error) {
	var msg ModelUpdatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
