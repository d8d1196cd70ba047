// Package report accumulates per-run error and warning counts so bulk
// operations can keep going after individual failures and still produce an
// honest end-of-run summary.
package report

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Summary counts the problems encountered during a run. Pass one instance
// through a call chain rather than keeping package-level counters.
type Summary struct {
	Errors   int
	Warnings int
}

// Errorf records an error and prints it to w.
func (s *Summary) Errorf(w io.Writer, format string, args ...interface{}) {
	s.Errors++
	fmt.Fprintf(w, "error: "+format+"\n", args...)
}

// Warnf records a warning and prints it to w.
func (s *Summary) Warnf(w io.Writer, format string, args ...interface{}) {
	s.Warnings++
	fmt.Fprintf(w, "warning: "+format+"\n", args...)
}

// Clean reports whether the run finished without errors.
func (s *Summary) Clean() bool {
	return s.Errors == 0
}

// Print writes a one-line summary to w.
func (s *Summary) Print(w io.Writer) {
	printer.Fprintf(w, "%d error(s), %d warning(s)\n", s.Errors, s.Warnings)
}
