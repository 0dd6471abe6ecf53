/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: channel_test.go
Description: Tests for the HTTP command channel. Covers envelope decoding,
remote failures, malformed responses, request headers and timeouts.
*/

package transport

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kleascm/concept-client/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCommandSuccess tests a successful command round trip
func TestCommandSuccess(t *testing.T) {
	var gotBody string
	var gotRequestID string
	var gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotRequestID = r.Header.Get("RequestId")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte("[SUCCESS][PONG]"))
	}))
	defer server.Close()

	channel := NewChannel(server.URL)
	result, err := channel.Command("[PING]", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "PONG", result)
	assert.Equal(t, "[PING]", gotBody)
	assert.Equal(t, "1", gotRequestID)
	assert.Equal(t, "text/plain;charset=UTF-8", gotContentType)
}

// TestCommandRequestIDIncrements tests that request ids increase per command
func TestCommandRequestIDIncrements(t *testing.T) {
	var ids []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get("RequestId"))
		w.Write([]byte("[SUCCESS][]"))
	}))
	defer server.Close()

	channel := NewChannel(server.URL)
	for i := 0; i < 3; i++ {
		_, err := channel.Command("[PING]", 5*time.Second)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids)
}

// TestCommandRemoteFailure tests that FAILURE envelopes become RemoteErrors
func TestCommandRemoteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[FAILURE][file not found]"))
	}))
	defer server.Close()

	channel := NewChannel(server.URL)
	_, err := channel.Command("[OPEN_FILE][missing.cpt]", 5*time.Second)
	require.Error(t, err)

	var remoteErr *protocol.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "file not found", remoteErr.Message)
}

// TestCommandMalformedEnvelope tests that garbage responses become InternalErrors
func TestCommandMalformedEnvelope(t *testing.T) {
	for _, garbage := range []string{"", "PONG", "[SUCCESS]", "[WEIRDNESS][x]", "[SUCCESS][x"} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(garbage))
		}))

		channel := NewChannel(server.URL)
		_, err := channel.Command("[PING]", 5*time.Second)
		require.Error(t, err, "expected error for %q", garbage)

		var internalErr *protocol.InternalError
		require.ErrorAs(t, err, &internalErr, "expected InternalError for %q", garbage)
		assert.Contains(t, internalErr.Message, garbage)

		server.Close()
	}
}

// TestCommandHTTPError tests that non-2xx statuses become TransportErrors
func TestCommandHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	channel := NewChannel(server.URL)
	_, err := channel.Command("[PING]", 5*time.Second)
	require.Error(t, err)

	var transportErr *protocol.TransportError
	assert.ErrorAs(t, err, &transportErr)
}

// TestCommandTimeout tests that a slow server trips the command timeout
func TestCommandTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte("[SUCCESS][PONG]"))
	}))
	defer server.Close()

	channel := NewChannel(server.URL)
	_, err := channel.Command("[PING]", 50*time.Millisecond)
	require.Error(t, err)

	var transportErr *protocol.TransportError
	assert.ErrorAs(t, err, &transportErr)
}

// TestSessionIdentity tests channel metadata accessors
func TestSessionIdentity(t *testing.T) {
	channel := NewChannel("http://127.0.0.1:1999/")
	assert.Equal(t, "http://127.0.0.1:1999/", channel.URL())
	assert.NotEmpty(t, channel.SessionID())

	other := NewChannel("http://127.0.0.1:1999/")
	assert.NotEqual(t, channel.SessionID(), other.SessionID())
}
