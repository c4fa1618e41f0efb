// Package models defines the data shapes exchanged with the blog platform
// backend. JSON field names follow the backend contract exactly.
package models

import "encoding/json"

// EnvelopeCodeOK is the application-level success sentinel. Any other code
// is a failure regardless of the transport status.
const EnvelopeCodeOK = 200

// Envelope is the uniform wrapper the backend puts around every response.
type Envelope struct {
	Code      int             `json:"code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}
