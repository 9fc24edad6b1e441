package models

// SubmissionAnswer is one answered question in a submission payload.
type SubmissionAnswer struct {
	ID    string   `json:"id" bson:"id"`
	Value *float64 `json:"value" bson:"value"`
}

// SubmissionPayload is what the framework hands to the submission collaborator.
// SessionID and Generation identify one completed calculation.
type SubmissionPayload struct {
	SessionID      string                 `json:"session_id" bson:"session_id"`
	Generation     uint64                 `json:"generation" bson:"generation"`
	CalculatorType CalculatorType         `json:"calculator_type" bson:"calculator_type"`
	Name           string                 `json:"name" bson:"name"`
	Age            int                    `json:"age" bson:"age"`
	Gender         *Gender                `json:"gender" bson:"gender"`
	Answers        []SubmissionAnswer     `json:"answers" bson:"answers"`
	Scores         map[string]interface{} `json:"scores" bson:"scores"`
}

// SubmissionEnvelope is the sealed form delivered to the log sinks.
type SubmissionEnvelope struct {
	SubmissionID   string         `json:"submission_id" bson:"_id"`
	CalculatorType CalculatorType `json:"calculator_type" bson:"calculator_type"`
	Sealed         bool           `json:"sealed" bson:"sealed"`
	Digest         string         `json:"digest" bson:"digest"`
	Payload        string         `json:"payload" bson:"payload"`
	CreatedAt      int64          `json:"created_at" bson:"created_at"`
}
