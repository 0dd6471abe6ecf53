/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: stub_test.go
Description: Scripted transport stub shared by the package tests. Commands are
matched by exact string; unscripted commands fail the round trip so a test
cannot silently depend on an unspecified exchange.
*/

package concept

import (
	"time"

	"github.com/kleascm/concept-client/pkg/protocol"
	"github.com/sirupsen/logrus"
)

// stubTransport is a scripted protocol.Transport for tests.
type stubTransport struct {
	responses map[string]string
	failures  map[string]error
	commands  []string
}

func newStubTransport() *stubTransport {
	return &stubTransport{
		responses: make(map[string]string),
		failures:  make(map[string]error),
	}
}

// respond scripts a success payload for the given exact command.
func (s *stubTransport) respond(cmd, payload string) *stubTransport {
	s.responses[cmd] = payload
	return s
}

// fail scripts an error for the given exact command.
func (s *stubTransport) fail(cmd string, err error) *stubTransport {
	s.failures[cmd] = err
	return s
}

func (s *stubTransport) Command(cmd string, timeout time.Duration) (string, error) {
	s.commands = append(s.commands, cmd)
	if err, ok := s.failures[cmd]; ok {
		return "", err
	}
	if payload, ok := s.responses[cmd]; ok {
		return payload, nil
	}
	return "", &protocol.InternalError{Message: "unscripted command: " + cmd}
}

// sent reports whether the given exact command was transmitted.
func (s *stubTransport) sent(cmd string) bool {
	for _, c := range s.commands {
		if c == cmd {
			return true
		}
	}
	return false
}

// newStubModel builds a Concept/Model pair over the given stub without a ping
// handshake, for tests that exercise entity plumbing directly.
func newStubModel(stub *stubTransport) *Model {
	c := &Concept{
		transport: stub,
		log:       logrus.WithField("component", "concept"),
	}
	m := &Model{concept: c}
	c.model = m
	return m
}
