/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: concept.go
Description: Top-level session handle for a running Concept server. A Concept
either attaches to an already-running server or starts one itself, verifies
liveness with a ping, and then hands out Model handles. At most one model is
open per session; opening or creating a model closes any model already open.
*/

package concept

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kleascm/concept-client/pkg/execution"
	"github.com/kleascm/concept-client/pkg/protocol"
	"github.com/kleascm/concept-client/pkg/transport"
)

const pingTimeout = 10 * time.Second

// Concept is a connection to a single Concept server process.
type Concept struct {
	transport protocol.Transport
	model     *Model
	log       *logrus.Entry
}

// NewConcept wraps an existing transport and verifies the server responds to
// a ping before returning.
func NewConcept(t protocol.Transport) (*Concept, error) {
	c := &Concept{
		transport: t,
		log:       logrus.WithField("component", "concept"),
	}

	response, err := c.Ping(pingTimeout)
	if err != nil {
		return nil, err
	}
	if response != "PONG" {
		return nil, &protocol.InternalError{Message: "unexpected [PING] response: " + response}
	}

	return c, nil
}

// Attach connects to a server already listening on the given local port.
func Attach(port int) (*Concept, error) {
	channel := transport.NewChannel(fmt.Sprintf("http://127.0.0.1:%d", port))
	return NewConcept(channel)
}

// Start launches a new server process and connects to it. When no port is
// requested the launch is attempted twice, since an auto-selected port can be
// taken by another process between selection and bind.
func Start(opts execution.Options) (*Concept, error) {
	attempts := 1
	if opts.Port == 0 {
		attempts = 2
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		server, err := execution.Launch(opts)
		if err != nil {
			lastErr = err
			continue
		}

		c, err := Attach(server.Port)
		if err != nil {
			server.Kill()
			lastErr = err
			continue
		}
		return c, nil
	}
	return nil, lastErr
}

// Ping sends a liveness check with the given timeout and returns the raw
// response ("PONG" when healthy).
func (c *Concept) Ping(timeout time.Duration) (string, error) {
	return c.command("[PING]", timeout)
}

// OpenFile opens the model file at the given path and returns a handle to it.
// Any currently open model is closed first.
func (c *Concept) OpenFile(path string) (*Model, error) {
	if err := c.closeAnyOpenModel(); err != nil {
		return nil, err
	}

	if _, err := c.command("[OPEN_FILE]["+path+"]", 0); err != nil {
		return nil, err
	}

	c.model = &Model{concept: c}
	c.log.WithField("path", path).Info("opened model file")
	return c.model, nil
}

// NewModel creates a new (empty) model and returns a handle to it. The model
// is not structurally usable until SetupNewModel has run. Any currently open
// model is closed first.
func (c *Concept) NewModel() (*Model, error) {
	if err := c.closeAnyOpenModel(); err != nil {
		return nil, err
	}

	if _, err := c.command("[NEW_MODEL]", 0); err != nil {
		return nil, err
	}

	c.model = &Model{concept: c}
	c.log.Info("created new model")
	return c.model, nil
}

// ShutDown closes any open model and terminates the server process.
func (c *Concept) ShutDown() error {
	if err := c.closeAnyOpenModel(); err != nil {
		return err
	}

	response, err := c.command("[SHUT_DOWN]", 0)
	if err != nil {
		return err
	}
	if response != "SHUTTING_DOWN" {
		return &protocol.InternalError{Message: "unexpected [SHUT_DOWN] response: " + response}
	}

	c.log.Info("server shutting down")
	return nil
}

// command sends a raw command to the server. A zero timeout uses the
// transport default.
func (c *Concept) command(cmd string, timeout time.Duration) (string, error) {
	return c.transport.Command(cmd, timeout)
}

func (c *Concept) closeAnyOpenModel() error {
	if c.model == nil {
		return nil
	}
	return c.model.CloseModel()
}

// modelClosed records that the given model is no longer open. Called by
// Model.CloseModel.
func (c *Concept) modelClosed(m *Model) {
	if c.model == m {
		c.model = nil
	}
}
