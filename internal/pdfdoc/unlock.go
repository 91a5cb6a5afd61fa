// Package pdfdoc opens encrypted statement PDFs and extracts their text
// for pattern matching.
package pdfdoc

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// UnlockReason discriminates why a document could not be unlocked.
type UnlockReason int

const (
	// MalformedDocument means the bytes are not a parseable PDF at all.
	MalformedDocument UnlockReason = iota
	// WrongPassword means the document is encrypted and no candidate
	// password opened it.
	WrongPassword
)

func (r UnlockReason) String() string {
	if r == WrongPassword {
		return "wrong_password"
	}
	return "malformed_document"
}

// UnlockError reports a failed unlock attempt together with how many
// password candidates were tried before giving up.
type UnlockError struct {
	Reason   UnlockReason
	Attempts int
	cause    error
}

func (e *UnlockError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("unlock failed (%s, %d candidates tried): %v", e.Reason, e.Attempts, e.cause)
	}
	return fmt.Sprintf("unlock failed (%s, %d candidates tried)", e.Reason, e.Attempts)
}

func (e *UnlockError) Unwrap() error { return e.cause }

// Document is an opened, decrypted PDF ready for text extraction.
type Document struct {
	reader *pdf.Reader

	// Attempts is the number of password candidates consumed before the
	// document opened. Zero for unencrypted documents.
	Attempts int
}

// NumPages returns the page count of the opened document.
func (d *Document) NumPages() int {
	return d.reader.NumPage()
}

// Unlocker opens raw PDF bytes, trying password candidates strictly in
// the given order and stopping at the first success.
type Unlocker struct {
	maxFileSize int64

	// Hooks replaced by tests; default to the pdfcpu/ledongthuc backends.
	inspect func(raw []byte) (encrypted bool, err error)
	open    func(raw []byte, password string) (*pdf.Reader, error)
}

// NewUnlocker creates an unlocker that rejects documents larger than
// maxFileSize bytes.
func NewUnlocker(maxFileSize int64) *Unlocker {
	return &Unlocker{
		maxFileSize: maxFileSize,
		inspect:     inspectDocument,
		open:        openReader,
	}
}

// Unlock opens the document, consuming candidates in order until one
// succeeds. An unencrypted document is returned immediately without
// consuming any candidate. The returned error is always an *UnlockError
// distinguishing malformed input from password exhaustion.
func (u *Unlocker) Unlock(raw []byte, candidates []string) (*Document, error) {
	if len(raw) == 0 {
		return nil, &UnlockError{Reason: MalformedDocument, cause: errors.New("empty document")}
	}
	if u.maxFileSize > 0 && int64(len(raw)) > u.maxFileSize {
		return nil, &UnlockError{
			Reason: MalformedDocument,
			cause:  fmt.Errorf("document too large: %d bytes (max: %d bytes)", len(raw), u.maxFileSize),
		}
	}
	if !bytes.HasPrefix(raw, []byte("%PDF-")) {
		return nil, &UnlockError{Reason: MalformedDocument, cause: errors.New("missing PDF header")}
	}

	encrypted, err := u.inspect(raw)
	if err != nil {
		return nil, &UnlockError{Reason: MalformedDocument, cause: err}
	}

	if !encrypted {
		reader, err := u.open(raw, "")
		if err != nil {
			return nil, &UnlockError{Reason: MalformedDocument, cause: err}
		}
		return &Document{reader: reader}, nil
	}

	for i, password := range candidates {
		reader, err := u.open(raw, password)
		if err == nil {
			return &Document{reader: reader, Attempts: i + 1}, nil
		}
		if errors.Is(err, pdf.ErrInvalidPassword) {
			continue
		}
		return nil, &UnlockError{Reason: MalformedDocument, Attempts: i + 1, cause: err}
	}
	return nil, &UnlockError{Reason: WrongPassword, Attempts: len(candidates)}
}

// inspectDocument uses pdfcpu to decide whether the bytes form a sound
// PDF and whether it carries an encryption dictionary.
func inspectDocument(raw []byte) (bool, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(raw), conf)
	if err != nil {
		// pdfcpu refuses to read encrypted documents without the
		// password; that is an encryption signal, not corruption.
		if strings.Contains(strings.ToLower(err.Error()), "password") {
			return true, nil
		}
		return false, fmt.Errorf("failed to read PDF context: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return false, fmt.Errorf("failed to ensure page count: %w", err)
	}
	return ctx.Encrypt != nil, nil
}

// openReader opens the document with ledongthuc/pdf, offering exactly
// one password per call so the unlocker controls candidate ordering.
func openReader(raw []byte, password string) (*pdf.Reader, error) {
	r := bytes.NewReader(raw)
	size := int64(len(raw))
	if password == "" {
		return pdf.NewReader(r, size)
	}
	served := false
	return pdf.NewReaderEncrypted(r, size, func() string {
		if served {
			return ""
		}
		served = true
		return password
	})
}
