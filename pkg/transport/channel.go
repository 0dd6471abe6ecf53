/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: channel.go
Description: HTTP command channel for the Concept client. Serializes bracket
commands to the Concept process over a local HTTP loopback connection and
decodes the [SUCCESS]/[FAILURE] response envelope, with per-request ids and
structured logging of every round trip.
*/

package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/concept-client/pkg/protocol"
	"github.com/sirupsen/logrus"
)

const (
	successPrefix = "[SUCCESS]["
	failurePrefix = "[FAILURE]["

	// envelopePrefixLen is the fixed width of both envelope markers.
	envelopePrefixLen = len(successPrefix)
)

// DefaultTimeout is generous because some remote operations (calc-all on a
// large model) legitimately take a long time.
const DefaultTimeout = 1 * time.Hour

// Channel is the HTTP command channel to a single Concept process.
// It implements protocol.Transport.
//
// A Channel is intended for sequential use from one logical thread of
// control; concurrent use requires external synchronization.
type Channel struct {
	url            string
	client         *http.Client
	defaultTimeout time.Duration
	nextRequestID  atomic.Int64
	sessionID      string
	log            *logrus.Entry
}

// NewChannel creates a command channel for the given URL, which should be in
// the form "http://localhost:1999/".
func NewChannel(url string) *Channel {
	sessionID := uuid.New().String()
	c := &Channel{
		url:            url,
		client:         &http.Client{},
		defaultTimeout: DefaultTimeout,
		sessionID:      sessionID,
		log: logrus.WithFields(logrus.Fields{
			"component": "transport",
			"session":   sessionID,
			"url":       url,
		}),
	}
	c.nextRequestID.Store(1)
	return c
}

// URL returns the endpoint this channel talks to.
func (c *Channel) URL() string { return c.url }

// SessionID returns the identifier attached to this channel's log entries.
func (c *Channel) SessionID() string { return c.sessionID }

// SetDefaultTimeout overrides the timeout used when Command is called with a
// zero timeout.
func (c *Channel) SetDefaultTimeout(timeout time.Duration) {
	c.defaultTimeout = timeout
}

// Command sends the bracket-format command to the Concept process and returns
// the unwrapped response payload.
//
// Each command is tagged with a monotonically increasing request id for
// traceability; the id has no correctness role. No retries are performed:
// a single failed round trip is surfaced immediately.
func (c *Channel) Command(cmd string, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = c.defaultTimeout
	}

	requestID := c.nextRequestID.Add(1) - 1

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(cmd))
	if err != nil {
		return "", &protocol.TransportError{Message: "building request", Err: err}
	}
	req.Header.Set("Content-Type", "text/plain;charset=UTF-8")
	req.Header.Set("RequestId", strconv.FormatInt(requestID, 10))

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.WithField("request_id", requestID).WithError(err).Debug("Command round trip failed")
		return "", &protocol.TransportError{Message: "command round trip failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &protocol.TransportError{Message: "reading response body", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &protocol.TransportError{
			Message: fmt.Sprintf("unexpected HTTP status %d from Concept process", resp.StatusCode),
		}
	}

	c.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"duration":   time.Since(started),
	}).Debug("Command round trip completed")

	return decodeEnvelope(string(body))
}

// decodeEnvelope unwraps a [SUCCESS][...] or [FAILURE][...] response.
func decodeEnvelope(result string) (string, error) {
	if len(result) >= envelopePrefixLen+1 && strings.HasSuffix(result, "]") {
		switch result[:envelopePrefixLen] {
		case successPrefix:
			return result[envelopePrefixLen : len(result)-1], nil
		case failurePrefix:
			return "", &protocol.RemoteError{Message: result[envelopePrefixLen : len(result)-1]}
		}
	}

	return "", &protocol.InternalError{Message: "invalid result returned from Concept process: " + result}
}
