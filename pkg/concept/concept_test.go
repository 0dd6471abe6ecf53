/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: concept_test.go
Description: Tests for the session handle. Covers the ping handshake, the
single-open-model rule and the shutdown exchange.
*/

package concept

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/kleascm/concept-client/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAttach tests connecting to an already-running server over HTTP
func TestAttach(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Equal(t, "[PING]", string(body))
		fmt.Fprint(w, "[SUCCESS][PONG]")
	}))
	defer server.Close()

	parsed, err := url.Parse(server.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(parsed.Port())
	require.NoError(t, err)

	c, err := Attach(port)
	require.NoError(t, err)
	require.NotNil(t, c)

	response, err := c.Ping(5 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "PONG", response)
}

// TestNewConceptPingHandshake tests that construction verifies liveness
func TestNewConceptPingHandshake(t *testing.T) {
	stub := newStubTransport().respond("[PING]", "PONG")
	c, err := NewConcept(stub)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, []string{"[PING]"}, stub.commands)
}

// TestNewConceptBadPing tests rejection of an unexpected ping payload
func TestNewConceptBadPing(t *testing.T) {
	stub := newStubTransport().respond("[PING]", "HELLO")
	_, err := NewConcept(stub)
	require.Error(t, err)

	var internalErr *protocol.InternalError
	require.ErrorAs(t, err, &internalErr)
	assert.Contains(t, internalErr.Message, "HELLO")
}

// TestPing tests the liveness check round trip
func TestPing(t *testing.T) {
	stub := newStubTransport().respond("[PING]", "PONG")
	c, err := NewConcept(stub)
	require.NoError(t, err)

	response, err := c.Ping(5 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "PONG", response)
}

// TestOpenFileClosesPreviousModel tests the single-open-model rule
func TestOpenFileClosesPreviousModel(t *testing.T) {
	stub := newStubTransport().
		respond("[PING]", "PONG").
		respond("[OPEN_FILE][first.cpt]", "").
		respond("[OPEN_FILE][second.cpt]", "").
		respond("[CLOSE_MODEL]", "")

	c, err := NewConcept(stub)
	require.NoError(t, err)

	first, err := c.OpenFile("first.cpt")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := c.OpenFile("second.cpt")
	require.NoError(t, err)
	require.NotNil(t, second)

	// the first model must have been closed before the second open
	assert.Equal(t, []string{
		"[PING]",
		"[OPEN_FILE][first.cpt]",
		"[CLOSE_MODEL]",
		"[OPEN_FILE][second.cpt]",
	}, stub.commands)
}

// TestNewModel tests creating an empty model
func TestNewModel(t *testing.T) {
	stub := newStubTransport().
		respond("[PING]", "PONG").
		respond("[NEW_MODEL]", "")

	c, err := NewConcept(stub)
	require.NoError(t, err)

	model, err := c.NewModel()
	require.NoError(t, err)
	require.NotNil(t, model)
	assert.True(t, stub.sent("[NEW_MODEL]"))
}

// TestShutDown tests the shutdown exchange including the open-model close
func TestShutDown(t *testing.T) {
	stub := newStubTransport().
		respond("[PING]", "PONG").
		respond("[OPEN_FILE][slab.cpt]", "").
		respond("[CLOSE_MODEL]", "").
		respond("[SHUT_DOWN]", "SHUTTING_DOWN")

	c, err := NewConcept(stub)
	require.NoError(t, err)
	_, err = c.OpenFile("slab.cpt")
	require.NoError(t, err)

	require.NoError(t, c.ShutDown())
	assert.True(t, stub.sent("[CLOSE_MODEL]"))
	assert.True(t, stub.sent("[SHUT_DOWN]"))
}

// TestShutDownBadResponse tests rejection of an unexpected shutdown payload
func TestShutDownBadResponse(t *testing.T) {
	stub := newStubTransport().
		respond("[PING]", "PONG").
		respond("[SHUT_DOWN]", "NOPE")

	c, err := NewConcept(stub)
	require.NoError(t, err)

	err = c.ShutDown()
	require.Error(t, err)
	var internalErr *protocol.InternalError
	assert.ErrorAs(t, err, &internalErr)
}

// TestModelMajorOperations tests the whole-model command wiring
func TestModelMajorOperations(t *testing.T) {
	stub := newStubTransport().
		respond("[PING]", "PONG").
		respond("[OPEN_FILE][slab.cpt]", "").
		respond("[GENERATE_MESH]", "").
		respond("[CALC_ALL]", "").
		respond("[SAVE_FILE][out.cpt]", "")

	c, err := NewConcept(stub)
	require.NoError(t, err)
	model, err := c.OpenFile("slab.cpt")
	require.NoError(t, err)

	require.NoError(t, model.GenerateMesh())
	require.NoError(t, model.CalcAll(time.Minute))
	require.NoError(t, model.SaveFile("out.cpt"))
}
