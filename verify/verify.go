// Package verify checks a test vector corpus for the properties consumers
// rely on.
//
// Every line must be in canonical fixed point form (see package decimal),
// must not end in a fractional zero, and the first two lines of every AddSub
// block (a+b and b+a) must be identical.
package verify

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/calxvec/vector"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("verify")

var lineRE = regexp.MustCompile(`^-?[0-9]+\.[0-9]*$`)

// Report summarizes a checked corpus.
type Report struct {
	Lines int

	// Whole is the number of lines without fractional digits.
	Whole int
}

// Check reads a corpus from r and returns the first violation found.
func Check(r io.Reader) (rep *Report, err error) {
	rep = &Report{}

	var prev string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		rep.Lines++

		reason := check(line)
		if reason != "" {
			return rep, Error.New("line %d: %s", rep.Lines, reason)
		}

		if strings.HasSuffix(line, ".") {
			rep.Whole++
		}

		// Lines 1 and 2 of each block are a+b and b+a.
		switch (rep.Lines - 1) % vector.LinesPerAddSub {
		case 0:
			prev = line
		case 1:
			if line != prev {
				return rep, Error.New("line %d: not commutative: %q != %q", rep.Lines, prev, line)
			}
		}
	}

	err = scanner.Err()
	if err != nil {
		return rep, Error.Wrap(err)
	}

	return rep, nil
}

// CheckCorpus is like Check but also requires the full corpus line count.
func CheckCorpus(r io.Reader) (rep *Report, err error) {
	rep, err = Check(r)
	if err != nil {
		return rep, err
	}

	if rep.Lines != vector.CorpusLines {
		return rep, Error.New("got %d lines, want %d", rep.Lines, vector.CorpusLines)
	}

	return rep, nil
}

// Line checks a single line.
func Line(line string) (err error) {
	reason := check(line)
	if reason != "" {
		return Error.New("%s", reason)
	}

	return nil
}

func check(line string) (reason string) {
	switch {
	case strings.ContainsAny(line, "eE"):
		return fmt.Sprintf("scientific notation: %q", line)
	case !lineRE.MatchString(line):
		return fmt.Sprintf("malformed: %q", line)
	case strings.HasSuffix(line, "0"):
		// The pattern guarantees the zero is a fractional digit.
		return fmt.Sprintf("trailing zero: %q", line)
	}

	return ""
}
