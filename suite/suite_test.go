package suite_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/slants/suite"
)

func TestParseLine(t *testing.T) {
	cases := []struct {
		name string
		line string
		want *suite.Record
	}{
		{
			name: "full record",
			line: "gen_5x5_1\t5\t5\tg4a12b12a31113b113a12g\t\\//\\\\/\\\\\\\\\\\\\\/\\\\/\\\\\\\\\\\\//\t# givens=15 work_score=20 tier=2",
			want: &suite.Record{
				Name:    "gen_5x5_1",
				Width:   5,
				Height:  5,
				Givens:  "g4a12b12a31113b113a12g",
				Answer:  `\//\\/\\\\\\\/\\/\\\\\\//`,
				Comment: "givens=15 work_score=20 tier=2",
			},
		},
		{
			name: "core fields only",
			line: "tiny\t1\t1\t1c",
			want: &suite.Record{Name: "tiny", Width: 1, Height: 1, Givens: "1c"},
		},
		{
			name: "answer without comment",
			line: "tiny\t1\t1\t1c\t\\",
			want: &suite.Record{Name: "tiny", Width: 1, Height: 1, Givens: "1c", Answer: `\`},
		},
		{
			name: "comment without hash kept verbatim",
			line: "tiny\t1\t1\t1c\t\\\tscraped",
			want: &suite.Record{Name: "tiny", Width: 1, Height: 1, Givens: "1c", Answer: `\`, Comment: "scraped"},
		},
		{name: "blank line", line: "   ", want: nil},
		{name: "hash comment", line: "# header", want: nil},
		{name: "semicolon comment", line: "; header", want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := suite.ParseLine(tc.line)
			if err != nil {
				t.Fatalf("ParseLine(%q) error: %v", tc.line, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ParseLine(%q) mismatch (-want +got):\n%s", tc.line, diff)
			}
		})
	}
}

func TestParseLine_BadLines(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{name: "too few fields", line: "tiny\t1\t1"},
		{name: "width not numeric", line: "tiny\tx\t1\t1c"},
		{name: "height not numeric", line: "tiny\t1\t\t1c"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := suite.ParseLine(tc.line); !errors.Is(err, suite.ErrBadLine) {
				t.Fatalf("ParseLine(%q) = %v, want ErrBadLine", tc.line, err)
			}
		})
	}
}

func TestRecordString_RoundTrips(t *testing.T) {
	cases := []suite.Record{
		{Name: "a", Width: 2, Height: 2, Givens: "1h"},
		{Name: "b", Width: 1, Height: 1, Givens: "1c", Answer: `\`},
		{Name: "c", Width: 1, Height: 1, Givens: "1c", Answer: `\`, Comment: "work_score=2 tier=1"},
		{Name: "d", Width: 3, Height: 3, Givens: "a1b12a2d0a0a", Comment: "unsolved"},
	}

	for _, rec := range cases {
		t.Run(rec.Name, func(t *testing.T) {
			got, err := suite.ParseLine(rec.String())
			if err != nil {
				t.Fatalf("ParseLine(%q) error: %v", rec.String(), err)
			}
			if diff := cmp.Diff(&rec, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadAll(t *testing.T) {
	input := strings.Join([]string{
		"# Generated Slants Puzzles",
		"# Size: 2x2, Count: 2",
		"",
		"one\t2\t2\t1h",
		"two\t1\t1\t1c\t\\\t# work_score=2",
		"; trailer",
	}, "\n")

	got, err := suite.ReadAll(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadAll error: %v", err)
	}

	want := []suite.Record{
		{Name: "one", Width: 2, Height: 2, Givens: "1h"},
		{Name: "two", Width: 1, Height: 1, Givens: "1c", Answer: `\`, Comment: "work_score=2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadAll mismatch (-want +got):\n%s", diff)
	}
}

func TestReadAll_ReportsLineNumber(t *testing.T) {
	input := "ok\t1\t1\t1c\nbroken line without tabs and not a comment\n"

	_, err := suite.ReadAll(strings.NewReader(input))
	if !errors.Is(err, suite.ErrBadLine) {
		t.Fatalf("ReadAll = %v, want ErrBadLine", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("ReadAll error %q does not name line 2", err)
	}
}
