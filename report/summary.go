package report

import (
	"fmt"
	"io"
	"sort"

	gonmea "github.com/reoring/gonmea"
)

// Summary counts diagnostics by outcome and error code.
type Summary struct {
	Total  int            `json:"total"`
	Passed int            `json:"passed"`
	Failed int            `json:"failed"`
	ByCode map[string]int `json:"by_code,omitempty"`
}

// Add records d.
func (s *Summary) Add(d Diagnostic) {
	s.Total++
	if d.OK {
		s.Passed++
		return
	}
	s.Failed++
	if s.ByCode == nil {
		s.ByCode = make(map[string]int)
	}
	code := d.Code
	if code == "" {
		code = "other"
	}
	s.ByCode[code]++
}

// Merge adds the counts of o to s.
func (s *Summary) Merge(o Summary) {
	s.Total += o.Total
	s.Passed += o.Passed
	s.Failed += o.Failed
	for code, n := range o.ByCode {
		if s.ByCode == nil {
			s.ByCode = make(map[string]int)
		}
		s.ByCode[code] += n
	}
}

// Codes returns the error codes seen, in ascending order.
func (s Summary) Codes() []string {
	out := make([]string, 0, len(s.ByCode))
	for code := range s.ByCode {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// WriteText prints the totals and one row per error code.
func (s Summary) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "lines: %d  passed: %d  failed: %d\n", s.Total, s.Passed, s.Failed); err != nil {
		return err
	}
	for _, code := range s.Codes() {
		desc := ""
		if c, ok := gonmea.ParseErrorCode(code); ok {
			desc = c.Description()
		}
		if _, err := fmt.Fprintf(w, "  %-5s %6d  %s\n", code, s.ByCode[code], desc); err != nil {
			return err
		}
	}
	return nil
}
