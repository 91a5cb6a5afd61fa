// Package issuer maps statement sender domains to issuing banks and
// carries each bank's password conventions and field extraction rules.
package issuer

import (
	"errors"
	"strings"

	"github.com/finwatch/cc-statement-tracker/internal/statement"
)

// Issuer identifies a supported card-issuing bank.
type Issuer string

const (
	SBI      Issuer = "sbi"
	IndusInd Issuer = "indusind"
	Axis     Issuer = "axis"
	ICICI    Issuer = "icici"
	Kotak    Issuer = "kotak"
	RBL      Issuer = "rbl"
	HDFC     Issuer = "hdfc"
	BOB      Issuer = "bob"
)

// ErrNotRecognized is returned when a sender domain matches no
// configured issuer. Callers skip the message; this is informational,
// not an error condition of the batch.
var ErrNotRecognized = errors.New("sender domain not recognized")

// Profile holds everything the pipeline needs to process one issuer's
// statements: the sender domains it mails from and the ordered field
// extraction rules for its statement layout. Profiles are static data
// loaded once at startup and read-only afterwards.
type Profile struct {
	Issuer  Issuer
	Domains []string
	Rules   []statement.Rule
}

// Classifier resolves sender domains against an allowlist of issuer
// profiles.
type Classifier struct {
	profiles []Profile
}

// NewClassifier creates a classifier over the given profiles. When the
// allowlist is non-empty, only profiles with at least one allowlisted
// domain participate in classification.
func NewClassifier(profiles []Profile, allowlist []string) *Classifier {
	if len(allowlist) == 0 {
		return &Classifier{profiles: profiles}
	}
	allowed := make(map[string]bool, len(allowlist))
	for _, d := range allowlist {
		allowed[strings.ToLower(strings.TrimSpace(d))] = true
	}
	var active []Profile
	for _, p := range profiles {
		for _, d := range p.Domains {
			if allowed[d] {
				active = append(active, p)
				break
			}
		}
	}
	return &Classifier{profiles: active}
}

// Classify maps a lowercase sender domain to an issuer profile. The
// match is exact or suffix-based, so mail from a subdomain such as
// statements.rblbank.com still resolves to RBL.
func (c *Classifier) Classify(senderDomain string) (Profile, error) {
	domain := strings.ToLower(strings.TrimSpace(senderDomain))
	if domain == "" {
		return Profile{}, ErrNotRecognized
	}
	for _, p := range c.profiles {
		for _, d := range p.Domains {
			if domain == d || strings.HasSuffix(domain, "."+d) {
				return p, nil
			}
		}
	}
	return Profile{}, ErrNotRecognized
}

// Domains returns the union of sender domains across active profiles,
// used to build the mailbox search query.
func (c *Classifier) Domains() []string {
	var out []string
	for _, p := range c.profiles {
		out = append(out, p.Domains...)
	}
	return out
}
