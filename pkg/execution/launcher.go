/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: launcher.go
Description: Process launcher for the Concept API server. Spawns the Concept
executable with API-server flags, watches its stdout for the startup sentinel
line within a bounded timeout, and hands back a running server handle ready
for a command channel. The startup polling loop is the only place in the
client where waiting/retrying occurs.
*/

package execution

import (
	"bufio"
	"fmt"
	"net"
	"os/exec"
	"strconv"
	"time"

	"github.com/kleascm/concept-client/pkg/bracket"
	"github.com/kleascm/concept-client/pkg/protocol"
	"github.com/sirupsen/logrus"
)

const (
	startSuccessSentinel = "[SERVER_START_SUCCESS]"
	startFailureSentinel = "[SERVER_START_FAILURE]"

	// stdout line cap, protecting against a runaway process flooding the
	// reader (for example when a host script has given up on this process
	// and started another one).
	maxStdoutLines = 100
)

// Options configures a Concept server launch.
type Options struct {
	// Headless runs the server without a GUI. GUI mode is mostly useful for
	// debugging scripts interactively.
	Headless bool

	// Path is the full path to the Concept executable.
	Path string

	// Port for the server to listen on; 0 picks an available port.
	Port int

	// StartTimeout bounds the startup polling loop. Zero means 60s.
	StartTimeout time.Duration

	// InactivityTimeout is how long the server waits for the next API
	// command before shutting itself down. Zero means 1 hour.
	InactivityTimeout time.Duration

	// LogFilePath, if set, is passed to the server for its own log output.
	LogFilePath string
}

// Server is a running Concept process serving the API on Port.
type Server struct {
	Port int

	cmd    *exec.Cmd
	exited chan error
	log    *logrus.Entry
}

// Launch starts the Concept server process and waits until it reports
// readiness on stdout. On any failure the spawned process is killed before
// the error is returned.
func Launch(opts Options) (*Server, error) {
	if opts.Path == "" {
		return nil, &protocol.TransportError{Message: "no Concept executable path provided"}
	}
	if opts.Port == 0 {
		port, err := FindAvailablePort()
		if err != nil {
			return nil, err
		}
		opts.Port = port
	}
	if opts.StartTimeout <= 0 {
		opts.StartTimeout = 60 * time.Second
	}
	if opts.InactivityTimeout <= 0 {
		opts.InactivityTimeout = 1 * time.Hour
	}

	mode := "-apiServerWithGui"
	if opts.Headless {
		mode = "-apiServer"
	}

	args := []string{
		mode,
		"-version", protocol.Version,
		"-port", strconv.Itoa(opts.Port),
		"-inactivityTimeout", strconv.Itoa(int(opts.InactivityTimeout / time.Second)),
	}
	if opts.LogFilePath != "" {
		args = append(args, "-log", opts.LogFilePath)
	}

	log := logrus.WithFields(logrus.Fields{
		"component": "execution",
		"exe":       opts.Path,
		"port":      opts.Port,
	})

	cmd := exec.Command(opts.Path, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &protocol.TransportError{Message: "creating stdout pipe", Err: err}
	}

	if err := cmd.Start(); err != nil {
		return nil, &protocol.TransportError{Message: "starting Concept process", Err: err}
	}
	log.WithField("pid", cmd.Process.Pid).Info("Concept process started, waiting for server readiness")

	server := &Server{
		Port:   opts.Port,
		cmd:    cmd,
		exited: make(chan error, 1),
		log:    log,
	}

	lines := make(chan string, maxStdoutLines)
	go readStdoutLines(stdout, lines)
	go func() { server.exited <- cmd.Wait() }()

	if err := server.awaitStartup(lines, opts.StartTimeout); err != nil {
		server.Kill()
		return nil, err
	}

	log.Info("Concept server is ready")
	return server, nil
}

// awaitStartup polls the stdout line channel for the startup sentinel.
// This is availability waiting, not failure recovery: a failure sentinel or
// process exit aborts immediately.
func (s *Server) awaitStartup(lines <-chan string, timeout time.Duration) error {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		select {
		case line := <-lines:
			if line == startSuccessSentinel {
				return nil
			}
			if len(line) >= len(startFailureSentinel) && line[:len(startFailureSentinel)] == startFailureSentinel {
				tokens, err := bracket.Parse(line)
				if err != nil || len(tokens) < 2 {
					return &protocol.TransportError{Message: "server startup failed: " + line}
				}
				return &protocol.TransportError{Message: "server startup failed: " + tokens[1]}
			}
			// This case has occurred in the field (a series of blank
			// lines) but has never reproduced under debug conditions.
			s.log.WithField("line", line).Warn("Unexpected response from Concept stdout")

		case err := <-s.exited:
			if exitErr, ok := err.(*exec.ExitError); ok {
				return &protocol.TransportError{
					Message: fmt.Sprintf("Concept process exited unexpectedly with return code %d", exitErr.ExitCode()),
				}
			}
			return &protocol.TransportError{Message: "Concept process exited unexpectedly", Err: err}

		case <-deadline.C:
			return &protocol.TransportError{Message: "could not start Concept in timeout period"}
		}
	}
}

// Kill terminates the server process. Safe to call after the process has
// already exited.
func (s *Server) Kill() {
	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
}

// URL returns the loopback endpoint the server listens on.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d/", s.Port)
}

// readStdoutLines feeds process stdout lines to the channel, capped so a
// misbehaving process cannot grow the buffer without bound.
func readStdoutLines(r interface{ Read([]byte) (int, error) }, lines chan<- string) {
	scanner := bufio.NewScanner(r)
	count := 0
	for scanner.Scan() {
		count++
		if count > maxStdoutLines {
			continue
		}
		lines <- scanner.Text()
	}
}

// FindAvailablePort finds a port that is available at the time of the call.
// It could be taken by another process immediately thereafter, so callers
// launching with port 0 should be prepared to retry once.
func FindAvailablePort() (int, error) {
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		return 0, &protocol.TransportError{Message: "finding available port", Err: err}
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port, nil
}
