// Package response defines the uniform envelope every gateway response
// travels in, for successes and failures alike.
package response

// Envelope is the wire shape {code, message, data}. Data is omitted
// entirely when absent. Code 200 signals success (or a business-rule
// rejection riding a 200 transport status with a non-200 envelope code);
// -1 is the default hard-error code.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success wraps data with code 200 and the default message.
func Success(data any) Envelope {
	return Envelope{Code: 200, Message: "success", Data: data}
}

// ErrWithCode builds an error envelope. Callers without a specific code use
// -1, the default hard-error code.
func ErrWithCode(code int, message string) Envelope {
	return Envelope{Code: code, Message: message}
}
