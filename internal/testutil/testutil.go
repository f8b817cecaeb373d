// Package testutil provides testing utilities and helpers for path layer tests.
package testutil

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/GriffinCanCode/AgentOS/desktop/internal/shared/paths"
	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of paths.Provider. Join and IsAbs are
// pure and delegate to path/filepath; every OS-touching method is mocked so
// tests can assert exactly which calls were made.
type MockProvider struct {
	mock.Mock
}

var _ paths.Provider = (*MockProvider)(nil)

// Exists mocks the Exists method.
func (m *MockProvider) Exists(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

// MkdirAll mocks the MkdirAll method.
func (m *MockProvider) MkdirAll(path string) error {
	return m.Called(path).Error(0)
}

// Getwd mocks the Getwd method.
func (m *MockProvider) Getwd() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// Chdir mocks the Chdir method.
func (m *MockProvider) Chdir(path string) error {
	return m.Called(path).Error(0)
}

// HomeDir mocks the HomeDir method.
func (m *MockProvider) HomeDir() string {
	return m.Called().String(0)
}

// Abs mocks the Abs method.
func (m *MockProvider) Abs(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

// Join joins with filepath.Join.
func (m *MockProvider) Join(base, elem string) string {
	return filepath.Join(base, elem)
}

// IsAbs reports filepath.IsAbs.
func (m *MockProvider) IsAbs(path string) bool {
	return filepath.IsAbs(path)
}

// NewMockProvider creates a mock provider bound to t. An unexpected call
// fails the test instead of panicking, since the Manager would recover the
// panic into an error.
func NewMockProvider(t *testing.T) *MockProvider {
	t.Helper()
	m := new(MockProvider)
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// LoggedError is one entry captured by RecordingSink.
type LoggedError struct {
	Path string
	Err  error
}

// RecordingSink is a paths.ErrorSink that keeps every entry in memory.
type RecordingSink struct {
	mu      sync.Mutex
	entries []LoggedError
}

var _ paths.ErrorSink = (*RecordingSink)(nil)

// LogError records the entry.
func (s *RecordingSink) LogError(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, LoggedError{Path: path, Err: err})
}

// Entries returns a copy of the recorded entries.
func (s *RecordingSink) Entries() []LoggedError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]LoggedError(nil), s.entries...)
}

// Len returns the number of recorded entries.
func (s *RecordingSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// RecordingObserver is a paths.Observer that counts notifications.
type RecordingObserver struct {
	mu         sync.Mutex
	Operations map[string][]error
	Absorbed   map[string]int
}

var _ paths.Observer = (*RecordingObserver)(nil)

// NewRecordingObserver creates an empty observer.
func NewRecordingObserver() *RecordingObserver {
	return &RecordingObserver{
		Operations: make(map[string][]error),
		Absorbed:   make(map[string]int),
	}
}

// ObserveOperation records an operation outcome.
func (o *RecordingObserver) ObserveOperation(op string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Operations[op] = append(o.Operations[op], err)
}

// ObserveAbsorbed records an absorbed failure.
func (o *RecordingObserver) ObserveAbsorbed(op string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Absorbed[op]++
}
