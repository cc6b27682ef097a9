package api

import "encoding/json"

// Envelope is the standard response wrapper used by every backend
// endpoint. Data is a pointer so "data present but null" (204-style
// responses) is distinguishable from "no data field at all".
type Envelope struct {
	Success   bool             `json:"success"`
	Status    int              `json:"status"`
	Message   string           `json:"message"`
	Data      *json.RawMessage `json:"data"`
	Timestamp string           `json:"timestamp"`
}

// unwrap extracts the envelope's data field from a raw response body.
// When the body is not an envelope (or carries no data field) the body is
// returned as-is, so non-conforming endpoints still work. The envelope's
// message is returned alongside for error reporting.
func unwrap(raw []byte) (payload json.RawMessage, message string) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return raw, ""
	}
	if env.Data == nil {
		return raw, env.Message
	}
	return *env.Data, env.Message
}
