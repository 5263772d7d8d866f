package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ServiceError is a response that arrived intact but carries an explicit
// error field from the wallet bridge.
type ServiceError struct {
	Action  string
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("bridge %s: %s (%s)", e.Action, e.Message, e.Code)
	}
	return fmt.Sprintf("bridge %s: %s", e.Action, e.Message)
}

// TransportError is a request that failed, timed out, or never produced a
// decodable response. The true outcome of the action is unknown.
type TransportError struct {
	Action string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("bridge %s: %v", e.Action, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsService reports whether err is an explicit bridge error response.
func IsService(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// errorPayload accepts both the string and the structured form of the
// bridge's error field.
type errorPayload struct {
	Code    string
	Message string
}

func (p *errorPayload) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.Message = s
		return nil
	}
	var obj struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	p.Code = obj.Code
	p.Message = obj.Message
	return nil
}
