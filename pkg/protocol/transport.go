/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: transport.go
Description: Shared transport contract for the Concept client. Every property
get/set and model operation funnels through a single Command round trip, so
higher layers depend only on this interface and tests can substitute stubs.
*/

package protocol

import "time"

// Transport sends one bracket-format command to the Concept process and
// returns the unwrapped success payload. A timeout of zero means the
// transport's default timeout.
//
// Implementations perform exactly one blocking round trip per call: no
// retries, no reordering. A remote [FAILURE] envelope surfaces as a
// RemoteError, network-level faults as a TransportError, and unrecognizable
// responses as an InternalError.
type Transport interface {
	Command(cmd string, timeout time.Duration) (string, error)
}
