package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/0xalexb/confgen/derive"
	"github.com/0xalexb/confgen/persist"
	"github.com/0xalexb/confgen/render"
	"github.com/0xalexb/confgen/schema"
)

// DefaultFileName is suggested to the save step when no default path is configured.
const DefaultFileName = "config.yaml"

// ErrInvalidDocument is returned when an action needs a document without issues.
var ErrInvalidDocument = errors.New("document has validation issues")

// ErrBusy is returned when an export or copy is requested while another one is in flight.
var ErrBusy = errors.New("another export is in progress")

// ErrNoSaver is returned by Export when the session has no Saver.
var ErrNoSaver = errors.New("no saver configured")

// ErrNoClipboard is returned by Copy when the session has no Clipboard.
var ErrNoClipboard = errors.New("no clipboard configured")

// Saver persists rendered output.
type Saver interface {
	Save(ctx context.Context, req persist.Request) persist.Result
}

// Clipboard receives rendered output.
type Clipboard interface {
	Write(ctx context.Context, text string) error
}

// Generate validates doc and, when it has no issues, renders its normalized
// tree. The issues are returned together with ErrInvalidDocument otherwise.
func Generate(doc *schema.Document) ([]byte, schema.Issues, error) {
	issues := schema.Validate(doc)
	if len(issues) > 0 {
		return nil, issues, fmt.Errorf("%w: %w", ErrInvalidDocument, &schema.ValidationError{Issues: issues})
	}

	out, err := render.Render(derive.Derive(doc))
	if err != nil {
		return nil, nil, fmt.Errorf("rendering document: %w", err)
	}

	return out, nil, nil
}

// Session owns the document being edited and gates export and copy on it
// having no validation issues.
type Session struct {
	mu          sync.Mutex
	doc         *schema.Document
	saver       Saver
	clipboard   Clipboard
	defaultPath string
	busy        bool
}

// NewSession creates a session editing doc. A nil doc starts from defaults.
func NewSession(doc *schema.Document, opts ...Option) *Session {
	if doc == nil {
		doc = schema.NewDocument()
	}

	session := &Session{
		doc:         doc.Clone(),
		defaultPath: DefaultFileName,
	}

	for _, apply := range opts {
		apply(session)
	}

	return session
}

// Document returns a copy of the current document.
func (s *Session) Document() *schema.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.doc.Clone()
}

// Replace swaps the current document for a copy of doc.
func (s *Session) Replace(doc *schema.Document) {
	if doc == nil {
		doc = schema.NewDocument()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = doc.Clone()
}

// Update edits the current document in place.
func (s *Session) Update(edit func(doc *schema.Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	edit(s.doc)
}

// Issues validates the current document.
func (s *Session) Issues() schema.Issues {
	return schema.Validate(s.Document())
}

// Preview renders the current document. See Generate.
func (s *Session) Preview() ([]byte, schema.Issues, error) {
	return Generate(s.Document())
}

// Export renders the current document and hands it to the Saver.
// It is rejected while the document has issues or another export or copy runs.
func (s *Session) Export(ctx context.Context) (persist.Result, error) {
	if s.saver == nil {
		return persist.Result{}, ErrNoSaver
	}

	out, release, err := s.begin()
	if err != nil {
		return persist.Result{}, err
	}
	defer release()

	res := s.saver.Save(ctx, persist.Request{Content: string(out), DefaultPath: s.defaultPath})

	slog.Info("export finished",
		"canceled", res.Canceled, "path", res.FilePath, "error", res.Error)

	return res, nil
}

// Copy renders the current document and writes it to the Clipboard under the
// same rules as Export.
func (s *Session) Copy(ctx context.Context) error {
	if s.clipboard == nil {
		return ErrNoClipboard
	}

	out, release, err := s.begin()
	if err != nil {
		return err
	}
	defer release()

	err = s.clipboard.Write(ctx, string(out))
	if err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}

	return nil
}

// begin marks the session busy and renders a snapshot of the document.
func (s *Session) begin() ([]byte, func(), error) {
	s.mu.Lock()

	if s.busy {
		s.mu.Unlock()

		return nil, nil, ErrBusy
	}

	snapshot := s.doc.Clone()
	s.busy = true
	s.mu.Unlock()

	release := func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}

	out, _, err := Generate(snapshot)
	if err != nil {
		release()

		return nil, nil, err
	}

	return out, release, nil
}
