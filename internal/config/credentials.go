package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/finwatch/cc-statement-tracker/internal/issuer"
)

// Passwords maps user -> issuer -> ordered password candidates. A
// single-string entry in the source document becomes a one-element
// list; list entries keep their order, which is the order the unlocker
// tries them in.
type Passwords map[string]map[string][]string

// Candidates returns the ordered password candidates for a user and
// issuer, or nil when none are configured.
func (p Passwords) Candidates(user string, iss issuer.Issuer) []string {
	byIssuer, ok := p[strings.ToLower(user)]
	if !ok {
		return nil
	}
	return byIssuer[string(iss)]
}

// HasUser reports whether any passwords are configured for the user.
func (p Passwords) HasUser(user string) bool {
	return len(p[strings.ToLower(user)]) > 0
}

// LoadPasswords reads the per-user, per-issuer password document. Values
// may be a single string or a list of strings (list means "try in
// order"). A missing file is fatal configuration absence.
func LoadPasswords(path string) (Passwords, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read passwords file %s: %w", path, err)
	}

	passwords := Passwords{}
	for user, rawIssuers := range v.AllSettings() {
		issuers, ok := rawIssuers.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("passwords file %s: user %q is not an object", path, user)
		}
		byIssuer := map[string][]string{}
		for iss, value := range issuers {
			candidates, err := asCandidateList(value)
			if err != nil {
				return nil, fmt.Errorf("passwords file %s: user %q issuer %q: %w", path, user, iss, err)
			}
			byIssuer[strings.ToLower(iss)] = candidates
		}
		passwords[strings.ToLower(user)] = byIssuer
	}

	if len(passwords) == 0 {
		return nil, fmt.Errorf("passwords file %s contains no users", path)
	}
	return passwords, nil
}

func asCandidateList(value any) ([]string, error) {
	switch v := value.(type) {
	case string:
		return []string{v}, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New("password list entries must be strings")
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errors.New("password value must be a string or list of strings")
	}
}

// LoadSenderDomains reads the recognized sender domains, one per line.
// Blank lines and #-comments are ignored. An empty allowlist is fatal
// configuration absence.
func LoadSenderDomains(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sender domains file %s: %w", path, err)
	}
	defer f.Close()

	var domains []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		domains = append(domains, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan sender domains file %s: %w", path, err)
	}
	if len(domains) == 0 {
		return nil, fmt.Errorf("sender domains file %s is empty", path)
	}
	return domains, nil
}
