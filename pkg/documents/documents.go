// Package documents stores the downloadable resume and CV.
//
// The PDF bytes live on disk as <dir>/<type>.pdf; upload metadata is kept in
// the record store so the chatbot can list what is available.
package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/folio/folio/pkg/logger"
	"github.com/folio/folio/pkg/portfolio"
	"github.com/folio/folio/pkg/storage"
)

// Event types published on upload and delete.
const (
	EventDocumentUploaded = "document.uploaded"
	EventDocumentDeleted  = "document.deleted"
)

// DefaultMaxSize caps uploads at 10 MiB.
const DefaultMaxSize int64 = 10 << 20

var (
	// ErrInvalidType is returned for document types other than resume and cv.
	ErrInvalidType = errors.New("Type must be 'resume' or 'cv'")

	// ErrNotPDF is returned when the upload is not a PDF file.
	ErrNotPDF = errors.New("Only PDF files are allowed")

	// ErrTooLarge is returned when the upload exceeds the size cap.
	ErrTooLarge = errors.New("File too large")
)

// NotFoundError reports a missing document.
type NotFoundError struct {
	Type portfolio.DocumentType
}

func (e *NotFoundError) Error() string {
	return strings.ToUpper(string(e.Type)) + " not found"
}

// Is makes errors.Is(err, portfolio.ErrNotFound) true.
func (e *NotFoundError) Is(target error) bool { return target == portfolio.ErrNotFound }

// Config configures the document store.
type Config struct {
	Dir       string
	MaxSize   int64
	OwnerName string
}

// Current reports the stored file per slot, nil when empty.
type Current struct {
	Resume *string `json:"resume"`
	CV     *string `json:"cv"`
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithEvents sets the change publisher.
func WithEvents(p portfolio.EventPublisher) Option {
	return func(s *Store) { s.events = p }
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Store manages the document slots.
type Store struct {
	mu      sync.Mutex
	dir     string
	maxSize int64
	owner   string
	meta    *storage.Collection[portfolio.Document]
	now     func() time.Time
	log     logger.Logger
	events  portfolio.EventPublisher
}

// New creates the upload directory and returns a Store.
func New(records storage.Store, cfg Config, opts ...Option) (*Store, error) {
	if cfg.Dir == "" {
		return nil, errors.New("documents: directory is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("documents: create %s: %w", cfg.Dir, err)
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultMaxSize
	}

	s := &Store{
		dir:     cfg.Dir,
		maxSize: cfg.MaxSize,
		owner:   cfg.OwnerName,
		meta:    storage.NewCollection[portfolio.Document](records, portfolio.CollectionDocuments),
		now:     time.Now,
		log:     logger.Global(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ParseType validates a document type name.
func ParseType(s string) (portfolio.DocumentType, error) {
	t := portfolio.DocumentType(s)
	if !t.Valid() {
		return "", ErrInvalidType
	}
	return t, nil
}

func (s *Store) path(t portfolio.DocumentType) string {
	return filepath.Join(s.dir, string(t)+".pdf")
}

// DownloadName is the attachment file name offered to visitors.
func (s *Store) DownloadName(t portfolio.DocumentType) string {
	upper := strings.ToUpper(string(t))
	if s.owner == "" {
		return upper + ".pdf"
	}
	return strings.Join(strings.Fields(s.owner), "_") + "_" + upper + ".pdf"
}

// Upload replaces the document of type t with the PDF read from r.
func (s *Store) Upload(ctx context.Context, t portfolio.DocumentType, filename string, r io.Reader) (portfolio.Document, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return portfolio.Document{}, ErrNotPDF
	}
	if !t.Valid() {
		return portfolio.Document{}, ErrInvalidType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	size, err := s.writeFile(t, r)
	if err != nil {
		return portfolio.Document{}, err
	}

	doc := portfolio.Document{
		Type:       t,
		Filename:   filepath.Base(filename),
		Size:       size,
		UploadedAt: s.now().UTC(),
	}

	existing, ok, err := s.find(ctx, t)
	if err != nil {
		return portfolio.Document{}, err
	}
	if ok {
		doc.ID = existing.ID
		err = s.meta.Put(ctx, doc.ID, doc)
	} else {
		doc, err = s.meta.Insert(ctx, func(id int64) portfolio.Document {
			doc.ID = id
			return doc
		})
	}
	if err != nil {
		return portfolio.Document{}, fmt.Errorf("documents: save metadata: %w", err)
	}

	s.log.InfoContext(ctx, "document uploaded", "type", t, "filename", doc.Filename, "size", size)
	if s.events != nil {
		s.events.Publish(EventDocumentUploaded, doc)
	}
	return doc, nil
}

// writeFile streams r into a temp file, checks it, then renames it over the
// slot. Callers hold mu.
func (s *Store) writeFile(t portfolio.DocumentType, r io.Reader) (int64, error) {
	tmp, err := os.CreateTemp(s.dir, string(t)+"-*.tmp")
	if err != nil {
		return 0, fmt.Errorf("documents: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		tmp.Close()
		return 0, fmt.Errorf("documents: read upload: %w", err)
	}
	head = head[:n]
	if http.DetectContentType(head) != "application/pdf" {
		tmp.Close()
		return 0, ErrNotPDF
	}

	body := io.MultiReader(bytes.NewReader(head), r)
	written, err := io.Copy(tmp, io.LimitReader(body, s.maxSize+1))
	if err != nil {
		tmp.Close()
		return 0, fmt.Errorf("documents: write upload: %w", err)
	}
	if written > s.maxSize {
		tmp.Close()
		return 0, ErrTooLarge
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("documents: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(t)); err != nil {
		return 0, fmt.Errorf("documents: store file: %w", err)
	}
	return written, nil
}

func (s *Store) find(ctx context.Context, t portfolio.DocumentType) (portfolio.Document, bool, error) {
	all, err := s.meta.List(ctx)
	if err != nil {
		return portfolio.Document{}, false, err
	}
	for _, d := range all {
		if d.Type == t {
			return d, true, nil
		}
	}
	return portfolio.Document{}, false, nil
}

// Open returns the stored PDF of type t. The caller closes the file.
func (s *Store) Open(t portfolio.DocumentType) (*os.File, error) {
	if !t.Valid() {
		return nil, ErrInvalidType
	}
	f, err := os.Open(s.path(t))
	if errors.Is(err, os.ErrNotExist) {
		return nil, &NotFoundError{Type: t}
	}
	if err != nil {
		return nil, fmt.Errorf("documents: open %s: %w", t, err)
	}
	return f, nil
}

// Delete removes the document of type t and its metadata.
func (s *Store) Delete(ctx context.Context, t portfolio.DocumentType) error {
	if !t.Valid() {
		return ErrInvalidType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(t))
	if errors.Is(err, os.ErrNotExist) {
		return &NotFoundError{Type: t}
	}
	if err != nil {
		return fmt.Errorf("documents: delete %s: %w", t, err)
	}

	existing, ok, err := s.find(ctx, t)
	if err != nil {
		return err
	}
	if ok {
		if err := s.meta.Delete(ctx, existing.ID); err != nil {
			return fmt.Errorf("documents: delete metadata: %w", err)
		}
	}

	s.log.InfoContext(ctx, "document deleted", "type", t)
	if s.events != nil {
		s.events.Publish(EventDocumentDeleted, map[string]string{"type": string(t)})
	}
	return nil
}

// Current reports which slots hold a file.
func (s *Store) Current() Current {
	var cur Current
	for _, t := range []portfolio.DocumentType{portfolio.DocumentResume, portfolio.DocumentCV} {
		if _, err := os.Stat(s.path(t)); err != nil {
			continue
		}
		name := string(t) + ".pdf"
		if t == portfolio.DocumentResume {
			cur.Resume = &name
		} else {
			cur.CV = &name
		}
	}
	return cur
}

// List returns the upload metadata.
func (s *Store) List(ctx context.Context) ([]portfolio.Document, error) {
	return s.meta.List(ctx)
}
