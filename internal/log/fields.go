package log

// Common field names for structured logging
const (
	FieldComponent    = "component"
	FieldError        = "error"
	FieldOperation    = "operation"
	FieldDuration     = "duration_ms"
	FieldModelKind    = "model_kind"
	FieldAccuracy     = "accuracy"
	FieldExampleCount = "example_count"
	FieldCategory     = "category"
	FieldDescription  = "description"
	FieldArtifactDir  = "artifact_dir"
	FieldBackend      = "backend"
	FieldRunID        = "run_id"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentTrainer   = "trainer"
	ComponentPredictor = "predictor"
	ComponentDataset   = "dataset"
	ComponentArtifact  = "artifact"
	ComponentAMQP      = "amqp"
	ComponentWorker    = "worker"
	ComponentCache     = "cache"
	ComponentBackend   = "backend"
)

// Operations defines standard operation names
const (
	OpTrain    = "train"
	OpPredict  = "predict"
	OpLoad     = "load"
	OpSave     = "save"
	OpValidate = "validate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
