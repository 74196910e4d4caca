package mocks

import (
	"context"
	"encore/infras/otel"
	"sync"
)

// Recorder is an in-memory otel.Otel. It keeps span names, events and traced errors so
// tests can check what an operation reported.
type Recorder struct {
	mu     sync.Mutex
	Spans  []string
	Events []string
	Errors []error
}

// NewOtel returns a Recorder for tests that do not inspect tracing.
func NewOtel() otel.Otel {
	return NewRecorder()
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) NewScope(ctx context.Context, _, name string) (context.Context, otel.Scope) {
	r.mu.Lock()
	r.Spans = append(r.Spans, name)
	r.mu.Unlock()

	return ctx, &recordedScope{recorder: r}
}

func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

func (r *Recorder) EventList() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.Events...)
}

func (r *Recorder) ErrorList() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.Errors...)
}

type recordedScope struct {
	recorder *Recorder
}

func (s *recordedScope) End() {}

func (s *recordedScope) Finish(err *error) {
	if err != nil {
		s.TraceIfError(*err)
	}
}

func (s *recordedScope) TraceError(err error) {
	s.recorder.mu.Lock()
	s.recorder.Errors = append(s.recorder.Errors, err)
	s.recorder.mu.Unlock()
}

func (s *recordedScope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *recordedScope) AddEvent(name string) {
	s.recorder.mu.Lock()
	s.recorder.Events = append(s.recorder.Events, name)
	s.recorder.mu.Unlock()
}

func (s *recordedScope) SetAttribute(_ string, _ any) {}

func (s *recordedScope) SetAttributes(_ map[string]any) {}
