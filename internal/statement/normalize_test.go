package statement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "indian grouping with rupee sign", input: "₹1,23,456.78", want: "123456.78"},
		{name: "western grouping with dollar sign", input: "$1,234.56", want: "1234.56"},
		{name: "rs prefix", input: "Rs.12,345.00", want: "12345"},
		{name: "backtick rupee glyph", input: "`2,027.00", want: "2027"},
		{name: "dr suffix", input: "1,234.56 DR", want: "1234.56"},
		{name: "cr suffix", input: "500.00 CR", want: "500"},
		{name: "plain number", input: "999.99", want: "999.99"},
		{name: "embedded spaces", input: "₹ 1 234.56", want: "1234.56"},
		{name: "no decimals", input: "45,000", want: "45000"},
		{name: "empty", input: "", wantErr: true},
		{name: "only symbols", input: "₹,", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{name: "day month year", input: "15 Jan 2024"},
		{name: "slashes day first", input: "15/01/2024"},
		{name: "dashes day first", input: "15-01-2024"},
		{name: "dashed month name", input: "15-Jan-2024"},
		{name: "us long form", input: "January 15, 2024"},
		{name: "long month name", input: "15 January 2024"},
		{name: "iso", input: "2024-01-15"},
		{name: "dotted", input: "15.01.2024"},
		{name: "surrounding whitespace", input: "  15 Jan 2024  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "parsed %v, want %v", got, want)
		})
	}
}

func TestParseDateAmbiguousNumericIsDayFirst(t *testing.T) {
	// 03/04/2024 is 3 April on an Indian statement, not March 4.
	got, err := ParseDate("03/04/2024")
	require.NoError(t, err)
	assert.Equal(t, time.April, got.Month())
	assert.Equal(t, 3, got.Day())
}

func TestParseDateRejectsUnknownFormats(t *testing.T) {
	for _, input := range []string{"", "soon", "2024/01/15", "15th Jan 2024"} {
		if _, err := ParseDate(input); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", input)
		}
	}
}

func TestValidDueDate(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	stmt := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		due           time.Time
		statementDate *time.Time
		want          bool
	}{
		{
			name: "typical due date a few weeks out",
			due:  time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "recent past is still plausible",
			due:  time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "far past is a misfire",
			due:  time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "far future is a misfire",
			due:  time.Date(2029, time.June, 1, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name:          "due before statement date is a misfire",
			due:           time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
			statementDate: &stmt,
			want:          false,
		},
		{
			name:          "due after statement date",
			due:           time.Date(2024, time.May, 30, 0, 0, 0, 0, time.UTC),
			statementDate: &stmt,
			want:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidDueDate(tt.due, tt.statementDate, now)
			assert.Equal(t, tt.want, got)
		})
	}
}
