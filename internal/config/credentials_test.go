package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/finwatch/cc-statement-tracker/internal/issuer"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestLoadPasswords(t *testing.T) {
	path := writeTempFile(t, "passwords.json", `{
		"rahul": {
			"rbl": ["RAHU1234", "rahu1234", "19900101"],
			"kotak": "RAHU0101"
		},
		"Gulshan": {
			"hdfc": ["GULS5678"]
		}
	}`)

	passwords, err := LoadPasswords(path)
	if err != nil {
		t.Fatalf("LoadPasswords() error = %v", err)
	}

	got := passwords.Candidates("rahul", issuer.RBL)
	want := []string{"RAHU1234", "rahu1234", "19900101"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected RBL candidates %v in order, got %v", want, got)
	}

	// A single string becomes a one-element candidate list.
	got = passwords.Candidates("rahul", issuer.Kotak)
	if !reflect.DeepEqual(got, []string{"RAHU0101"}) {
		t.Errorf("Expected single-string value to become a list, got %v", got)
	}

	// User lookup is case-insensitive.
	if !passwords.HasUser("gulshan") {
		t.Error("Expected HasUser to match regardless of case")
	}

	if passwords.Candidates("rahul", issuer.ICICI) != nil {
		t.Error("Expected nil candidates for an unconfigured issuer")
	}
	if passwords.Candidates("unknown", issuer.RBL) != nil {
		t.Error("Expected nil candidates for an unknown user")
	}
}

func TestLoadPasswordsRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty object", content: `{}`},
		{name: "non-object user", content: `{"rahul": "RAHU1234"}`},
		{name: "non-string candidate", content: `{"rahul": {"rbl": [123]}}`},
		{name: "invalid json", content: `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "passwords.json", tt.content)
			if _, err := LoadPasswords(path); err == nil {
				t.Error("Expected an error, got nil")
			}
		})
	}
}

func TestLoadPasswordsMissingFile(t *testing.T) {
	if _, err := LoadPasswords(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Expected an error for a missing passwords file")
	}
}

func TestLoadSenderDomains(t *testing.T) {
	path := writeTempFile(t, "senders.txt", `# statement senders
rblbank.com

SBICard.com
kotak.com
`)

	domains, err := LoadSenderDomains(path)
	if err != nil {
		t.Fatalf("LoadSenderDomains() error = %v", err)
	}

	want := []string{"rblbank.com", "sbicard.com", "kotak.com"}
	if !reflect.DeepEqual(domains, want) {
		t.Errorf("Expected domains %v, got %v", want, domains)
	}
}

func TestLoadSenderDomainsEmpty(t *testing.T) {
	path := writeTempFile(t, "senders.txt", "# only comments\n\n")
	if _, err := LoadSenderDomains(path); err == nil {
		t.Error("Expected an error for an empty allowlist")
	}
}

func TestLoadSenderDomainsMissingFile(t *testing.T) {
	if _, err := LoadSenderDomains(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Expected an error for a missing senders file")
	}
}
