// Package types defines all data structures shared across vault-cli.
package types

type (
	// Envelope is the uniform result wrapper every command returns.
	// Exactly one of Data or Error is populated, and OK tells which:
	// a success carries an arbitrary decoded payload (possibly absent),
	// a failure carries a message and, when known, the HTTP status code.
	Envelope struct {
		OK    bool   `json:"ok"`
		Data  any    `json:"data,omitempty"`
		Error string `json:"error,omitempty"`
		Code  int    `json:"code,omitempty"`
	}
)

// Success wraps a decoded payload in a success envelope. A nil payload is
// valid and means the response body was empty.
func Success(data any) Envelope {
	return Envelope{OK: true, Data: data}
}

// Failure wraps an error message in a failure envelope with no status code,
// used for local validation failures and connection-level errors.
func Failure(msg string) Envelope {
	return Envelope{OK: false, Error: msg}
}

// FailureCode wraps an error message and HTTP status code in a failure
// envelope.
func FailureCode(msg string, code int) Envelope {
	return Envelope{OK: false, Error: msg, Code: code}
}
