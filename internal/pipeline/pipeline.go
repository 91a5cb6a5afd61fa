// Package pipeline orchestrates one user's batch: discover statement
// emails, unlock and parse each PDF, and persist the extracted records.
// Every per-document failure is local; one bad statement never aborts
// the rest of the batch.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/finwatch/cc-statement-tracker/internal/issuer"
	"github.com/finwatch/cc-statement-tracker/internal/mailbox"
	"github.com/finwatch/cc-statement-tracker/internal/pdfdoc"
	"github.com/finwatch/cc-statement-tracker/internal/statement"
	"github.com/finwatch/cc-statement-tracker/internal/store"
)

// Mailbox is the mail collaborator consumed by the pipeline.
type Mailbox interface {
	Search(ctx context.Context, domains []string, windowDays int) ([]mailbox.Source, error)
}

// Sink accepts validated statement records. It must be idempotent under
// repeated calls with an identical record.
type Sink interface {
	Upsert(ctx context.Context, rec *statement.Record) (store.Outcome, error)
}

// CredentialStore supplies ordered password candidates per user and
// issuer. Order matters: the unlocker stops at the first success.
type CredentialStore interface {
	Candidates(user string, iss issuer.Issuer) []string
}

// Unlocker opens raw PDF bytes with ordered password candidates.
type Unlocker interface {
	Unlock(raw []byte, candidates []string) (*pdfdoc.Document, error)
}

// Extractor produces the text representation of an unlocked document.
type Extractor interface {
	Text(doc *pdfdoc.Document) (string, error)
}

// Summary tallies what one run did.
type Summary struct {
	Discovered int
	Inserted   int
	Duplicates int
	Skipped    int
	Failed     int
}

// Runner wires the extraction pipeline together. All collaborators are
// provided at construction; the runner holds no mutable state, so
// separate users can run in parallel runners.
type Runner struct {
	classifier *issuer.Classifier
	unlocker   Unlocker
	extractor  Extractor
	engine     *statement.Engine
	creds      CredentialStore
	mail       Mailbox
	sink       Sink
	windowDays int
	log        zerolog.Logger
}

// NewRunner creates a pipeline runner.
func NewRunner(
	classifier *issuer.Classifier,
	unlocker Unlocker,
	extractor Extractor,
	engine *statement.Engine,
	creds CredentialStore,
	mail Mailbox,
	sink Sink,
	windowDays int,
	log zerolog.Logger,
) *Runner {
	return &Runner{
		classifier: classifier,
		unlocker:   unlocker,
		extractor:  extractor,
		engine:     engine,
		creds:      creds,
		mail:       mail,
		sink:       sink,
		windowDays: windowDays,
		log:        log,
	}
}

// Run processes all discovered statements for one user. Only mailbox
// failures abort the run; everything else is logged and skipped.
func (r *Runner) Run(ctx context.Context, user string) (Summary, error) {
	log := r.log.With().Str("user", user).Str("run_id", uuid.NewString()).Logger()

	domains := r.classifier.Domains()
	if len(domains) == 0 {
		return Summary{}, fmt.Errorf("no sender domains configured")
	}

	sources, err := r.mail.Search(ctx, domains, r.windowDays)
	if err != nil {
		return Summary{}, fmt.Errorf("mailbox search for %s failed: %w", user, err)
	}

	summary := Summary{Discovered: len(sources)}
	log.Info().Int("messages", len(sources)).Msg("processing statement emails")

	for _, src := range sources {
		r.processSource(ctx, log, user, src, &summary)
	}

	log.Info().
		Int("inserted", summary.Inserted).
		Int("duplicates", summary.Duplicates).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("run complete")
	return summary, nil
}

func (r *Runner) processSource(ctx context.Context, log zerolog.Logger, user string, src mailbox.Source, summary *Summary) {
	profile, err := r.classifier.Classify(src.SenderDomain)
	if errors.Is(err, issuer.ErrNotRecognized) {
		log.Info().Str("sender", src.SenderDomain).Str("file", src.Filename).Msg("skipping unrecognized sender")
		summary.Skipped++
		return
	}

	log = log.With().Str("issuer", string(profile.Issuer)).Str("file", src.Filename).Logger()

	candidates := r.creds.Candidates(user, profile.Issuer)
	if len(candidates) == 0 {
		log.Info().Msg("no passwords configured, skipping")
		summary.Skipped++
		return
	}

	doc, err := r.unlocker.Unlock(src.Raw, candidates)
	if err != nil {
		var unlockErr *pdfdoc.UnlockError
		if errors.As(err, &unlockErr) {
			log.Warn().
				Stringer("reason", unlockErr.Reason).
				Int("attempts", unlockErr.Attempts).
				Msg("failed to unlock statement")
		} else {
			log.Warn().Err(err).Msg("failed to unlock statement")
		}
		summary.Failed++
		return
	}

	text, err := r.extractor.Text(doc)
	if err != nil {
		log.Warn().Err(err).Msg("text extraction failed")
		summary.Failed++
		return
	}

	// ICICI mails amortization schedules from the statement address;
	// they are not statements.
	if profile.Issuer == issuer.ICICI && strings.Contains(strings.ToLower(text), "amortization schedule") {
		log.Info().Msg("skipping amortization schedule")
		summary.Skipped++
		return
	}

	rec, err := r.engine.Extract(text, profile.Rules)
	if err != nil {
		var partial *statement.PartialExtractionError
		if errors.As(err, &partial) {
			log.Warn().Interface("missing_fields", partial.Missing).Msg("partial extraction, not persisted")
		} else {
			log.Warn().Err(err).Msg("field extraction failed")
		}
		summary.Failed++
		return
	}

	rec.UserID = user
	rec.Issuer = string(profile.Issuer)
	rec.SourceReceivedAt = src.ReceivedAt

	outcome, err := r.sink.Upsert(ctx, rec)
	if err != nil {
		log.Warn().Err(err).Msg("failed to persist record")
		summary.Failed++
		return
	}
	switch outcome {
	case store.Inserted:
		summary.Inserted++
		log.Info().Str("card", rec.CardLast4).Str("period", rec.StatementPeriod()).Msg("statement stored")
	case store.AlreadyExists:
		summary.Duplicates++
		log.Debug().Str("card", rec.CardLast4).Str("period", rec.StatementPeriod()).Msg("statement already stored")
	}
}
