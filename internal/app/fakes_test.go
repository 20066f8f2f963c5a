package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/bft-labs/docship/internal/domain"
)

// fixedClock implements ports.Clock for testing.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// fakeRecognizer returns the registered document for each file name.
type fakeRecognizer struct {
	mu    sync.Mutex
	docs  map[string]domain.Document
	panic map[string]bool
	calls map[string]int
}

func newFakeRecognizer() *fakeRecognizer {
	return &fakeRecognizer{
		docs:  make(map[string]domain.Document),
		panic: make(map[string]bool),
		calls: make(map[string]int),
	}
}

func (r *fakeRecognizer) add(name, format string, created time.Time) domain.File {
	r.docs[name] = domain.Document{
		Name:    name,
		Content: []byte(name),
		Created: created,
		Format:  format,
	}
	return domain.File{Name: name, Content: []byte("raw:" + name)}
}

func (r *fakeRecognizer) Recognize(ctx context.Context, f domain.File) (domain.Document, error) {
	r.mu.Lock()
	r.calls[f.Name]++
	doc, ok := r.docs[f.Name]
	shouldPanic := r.panic[f.Name]
	r.mu.Unlock()

	if shouldPanic {
		panic("recognizer exploded")
	}
	if !ok {
		return domain.Document{}, errors.New("unrecognized layout")
	}
	return doc, nil
}

func (r *fakeRecognizer) count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[name]
}

// fakeSigner prefixes the content with "signed:" and counts calls.
type fakeSigner struct {
	mu    sync.Mutex
	fail  map[string]bool
	calls map[string]int
	certs []string
}

func newFakeSigner() *fakeSigner {
	return &fakeSigner{fail: make(map[string]bool), calls: make(map[string]int)}
}

func (s *fakeSigner) Sign(ctx context.Context, content []byte, cert domain.Certificate) (domain.SignedContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := string(content)
	s.calls[name]++
	s.certs = append(s.certs, cert.ID)
	if s.fail[name] {
		return nil, errors.New("key unavailable")
	}
	return domain.SignedContent("signed:" + name), nil
}

func (s *fakeSigner) count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

// fakeSender records every delivery attempt. Outcomes are decided either by
// the call sequence (results) or by document name (fail).
type fakeSender struct {
	mu      sync.Mutex
	results []bool
	fail    map[string]bool
	panic   map[string]bool
	delay   func(name string) time.Duration
	calls   map[string]int
	total   int
}

func newFakeSender() *fakeSender {
	return &fakeSender{
		fail:  make(map[string]bool),
		panic: make(map[string]bool),
		calls: make(map[string]int),
	}
}

func (s *fakeSender) Send(ctx context.Context, signed domain.SignedContent) error {
	name := strings.TrimPrefix(string(signed), "signed:")

	if s.delay != nil {
		time.Sleep(s.delay(name))
	}

	s.mu.Lock()
	s.calls[name]++
	idx := s.total
	s.total++
	ok := !s.fail[name]
	if idx < len(s.results) {
		ok = s.results[idx]
	}
	shouldPanic := s.panic[name]
	s.mu.Unlock()

	if shouldPanic {
		panic("sender exploded")
	}
	if !ok {
		return errors.New("remote rejected payload")
	}
	return nil
}

func (s *fakeSender) count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

func (s *fakeSender) totalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}
