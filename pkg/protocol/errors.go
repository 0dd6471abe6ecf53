/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error taxonomy for the Concept client. Distinguishes malformed
bracket strings, invalid property values, read-only violations, remote command
failures, transport faults, and protocol invariant violations so callers can
react to each category with errors.As.
*/

package protocol

// ParseError reports a malformed or unmatched bracket token. It is always a
// programming or protocol-version bug, never user-recoverable.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string { return e.Message }

// FormatError reports a structurally invalid top-level bracket string.
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string { return e.Message }

// InvalidValueError reports a value that failed a pre-transmission validation
// rule, such as an embedded delimiter character or an entity reference from
// another model.
type InvalidValueError struct {
	Message string
}

func (e *InvalidValueError) Error() string { return e.Message }

// ReadOnlyError reports a mutation attempted on a read-only entity or
// default-template object.
type ReadOnlyError struct {
	Message string
}

func (e *ReadOnlyError) Error() string { return e.Message }

// RemoteError reports that the Concept process explicitly rejected a
// well-formed command. Message is passed through verbatim from the remote side.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

// TransportError reports a network, timeout or process-level failure reaching
// the remote side.
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TransportError) Unwrap() error { return e.Err }

// InternalError reports a decoded value that violates an invariant the
// protocol is supposed to guarantee (for example a bool property containing
// neither "true" nor "false"). It is treated as a defect, not a normal error.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string { return "internal error: " + e.Message }
