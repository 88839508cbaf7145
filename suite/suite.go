package suite

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseLine parses one suite line. Blank lines and comment lines
// (leading '#' or ';') yield (nil, nil). Anything else needs at least
// the four core fields with numeric dimensions, or ErrBadLine.
func ParseLine(line string) (*Record, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
		return nil, nil
	}

	parts := strings.Split(line, "\t")
	if len(parts) < 4 {
		return nil, fmt.Errorf("%w: %d of 4 fields", ErrBadLine, len(parts))
	}

	width, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: width %q", ErrBadLine, parts[1])
	}
	height, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: height %q", ErrBadLine, parts[2])
	}

	r := &Record{
		Name:   parts[0],
		Width:  width,
		Height: height,
		Givens: parts[3],
	}
	if len(parts) > 4 {
		r.Answer = parts[4]
	}
	if len(parts) > 5 {
		c := parts[5]
		if strings.HasPrefix(c, "#") {
			c = strings.TrimSpace(c[1:])
		}
		r.Comment = c
	}
	return r, nil
}

// ReadAll streams every record of a suite file, skipping blanks and
// comments. A malformed line fails the whole read with its line number.
func ReadAll(r io.Reader) ([]Record, error) {
	var records []Record
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		rec, err := ParseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("suite: line %d: %w", n, err)
		}
		if rec != nil {
			records = append(records, *rec)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("suite: %w", err)
	}
	return records, nil
}
