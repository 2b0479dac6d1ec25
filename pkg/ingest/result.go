package ingest

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/ingestz/pkg/release"
)

// Outcome is how processing a torrent file ended
type Outcome string

const (
	OutcomeSucceeded Outcome = "success"
	OutcomeSkipped   Outcome = "skip"
	OutcomeFailed    Outcome = "failed"
)

// Result is the outcome of one torrent file
type Result struct {
	File        string
	Hash        string
	TorrentHash string
	Outcome     Outcome
	// State is the last pipeline state reached before Done or Failed
	State      State
	Descriptor release.Descriptor
	Size       int64
	Err        error
	// Compensated is set when the torrent was deleted from the daemon after a failure
	Compensated bool
}

// Line is the single status line printed for the file
func (r Result) Line() string {
	switch r.Outcome {
	case OutcomeSucceeded:
		return fmt.Sprintf("SUCCESS: %s", r.Descriptor.String())
	case OutcomeSkipped:
		return fmt.Sprintf("SKIP: %s", r.File)
	default:
		return fmt.Sprintf("FAILED: %s | %s", r.File, reason(r.Err))
	}
}

func reason(err error) string {
	if err == nil {
		return "unknown error"
	}
	return strings.Join(strings.Fields(err.Error()), " ")
}

// Summary collects the results of a run
type Summary struct {
	RunID   string
	Results []Result
}

func (s *Summary) add(r Result) {
	s.Results = append(s.Results, r)
}

func (s Summary) count(o Outcome) int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == o {
			n++
		}
	}
	return n
}

func (s Summary) Succeeded() int { return s.count(OutcomeSucceeded) }
func (s Summary) Skipped() int   { return s.count(OutcomeSkipped) }
func (s Summary) Failed() int    { return s.count(OutcomeFailed) }

// Headers and Rows render the summary as a table
func (s Summary) Headers() []string {
	return []string{"File", "Outcome", "Kind", "Target", "Size", "Detail"}
}

func (s Summary) Rows() [][]string {
	rows := make([][]string, 0, len(s.Results))
	for _, r := range s.Results {
		var kind, target, size, detail string
		if r.Descriptor.Kind != "" {
			kind = string(r.Descriptor.Kind)
			target = r.Descriptor.String()
		}
		if r.Size > 0 {
			size = humanize.Bytes(uint64(r.Size))
		}
		if r.Err != nil {
			detail = reason(r.Err)
		}
		rows = append(rows, []string{r.File, string(r.Outcome), kind, target, size, detail})
	}
	return rows
}
