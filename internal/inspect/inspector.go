package inspect

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"rtspresp/pkg/rtsp"
)

// ErrInspectorStopped is returned by Submit after Stop
var ErrInspectorStopped = errors.New("inspector stopped")

// Input is one raw response waiting to be parsed
type Input struct {
	Name string
	Raw  string
}

// Inspector parses submitted responses on its own goroutine and writes a
// YAML report per input.
type Inspector struct {
	config   *Config
	parser   *rtsp.Parser
	encoder  *yaml.Encoder
	channel  chan Input
	done     chan struct{}
	mu       sync.Mutex
	stopped  bool
	pending  sync.WaitGroup
	wg       sync.WaitGroup
	inputs   atomic.Int64
	failures atomic.Int64
}

func NewInspector(config *Config, out io.Writer) *Inspector {
	return &Inspector{
		config:  config,
		parser:  rtsp.NewParser(),
		encoder: yaml.NewEncoder(out),
		channel: make(chan Input, config.Inspect.QueueSize),
		done:    make(chan struct{}),
	}
}

func (s *Inspector) Start() {
	slog.Debug("Start Inspector", "queueSize", cap(s.channel))

	s.wg.Add(1)
	go s.eventLoop()
}

// Submit queues raw for parsing. It blocks while the queue is full, until
// Stop is called.
func (s *Inspector) Submit(name, raw string) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return ErrInspectorStopped
	}
	s.pending.Add(1)
	s.mu.Unlock()
	defer s.pending.Done()

	select {
	case s.channel <- Input{Name: name, Raw: raw}:
		return nil
	case <-s.done:
		return ErrInspectorStopped
	}
}

// SubmitStream splits r into consecutive responses with rtsp.MessageReader
// and submits each of them as "name#N".
func (s *Inspector) SubmitStream(name string, r io.Reader) error {
	mr := rtsp.NewMessageReader(r)
	for n := 1; ; n++ {
		raw, err := mr.ReadRaw()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s#%d: %w", name, n, err)
		}
		if err := s.Submit(fmt.Sprintf("%s#%d", name, n), raw); err != nil {
			return err
		}
	}
}

// Stop processes every queued input and then stops the event loop. Inputs
// still queued when the inspector was never started are dropped.
func (s *Inspector) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()

	// release blocked submitters, then no one sends on channel anymore
	close(s.done)
	s.pending.Wait()
	close(s.channel)

	s.wg.Wait()

	if err := s.encoder.Close(); err != nil {
		slog.Error("Failed to flush reports", "err", err)
	}
	slog.Debug("Inspector stopped", "inputs", s.inputs.Load(), "failures", s.failures.Load())
}

// Inputs returns how many inputs were processed
func (s *Inspector) Inputs() int64 {
	return s.inputs.Load()
}

// Failures returns how many inputs failed to parse
func (s *Inspector) Failures() int64 {
	return s.failures.Load()
}

func (s *Inspector) eventLoop() {
	defer s.wg.Done()

	for input := range s.channel {
		s.handleInput(input)
	}
}

func (s *Inspector) handleInput(input Input) {
	s.inputs.Add(1)

	resp, err := s.parser.Parse(input.Raw)
	var statusErr *rtsp.StatusError
	switch {
	case errors.As(err, &statusErr):
		s.failures.Add(1)
		slog.Warn("RTSP response rejected", "name", input.Name, "status", statusErr)
	case err != nil:
		s.failures.Add(1)
		slog.Warn("Failed to parse RTSP response", "name", input.Name, "err", err)
	default:
		slog.Info("RTSP response parsed", "name", input.Name, "code", resp.Code(), "contentType", resp.ContentType())
	}

	report := NewReport(input.Name, resp, err, s.config.Inspect.MaxBodyBytes)
	if err := s.encoder.Encode(report); err != nil {
		slog.Error("Failed to write report", "name", input.Name, "err", err)
	}
}
