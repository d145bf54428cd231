package store

import (
	"fmt"
	"sync"
	"time"
)

// idGenerator issues report ids of the form RPT-<submitterID>-<unixSeconds>.
// When the same submitter files twice within one second the plain form would
// collide, so repeats within the window get a -<n> suffix starting at 2.
// Only the latest window per submitter is tracked; the submission instant
// never moves backwards within a process.
type idGenerator struct {
	mu   sync.Mutex
	last map[string]idWindow
}

type idWindow struct {
	sec int64
	seq int
}

var ids = &idGenerator{last: make(map[string]idWindow)}

// NewReportID derives a unique, human-referenceable id from the submitter
// identity and the submission instant. Uniqueness holds for the lifetime of
// the process.
func NewReportID(submitterID string, at time.Time) string {
	return ids.next(submitterID, at)
}

func (g *idGenerator) next(submitterID string, at time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	window := g.last[submitterID]
	if window.sec == at.Unix() {
		window.seq++
	} else {
		window = idWindow{sec: at.Unix(), seq: 1}
	}
	g.last[submitterID] = window

	if window.seq == 1 {
		return fmt.Sprintf("RPT-%s-%d", submitterID, window.sec)
	}
	return fmt.Sprintf("RPT-%s-%d-%d", submitterID, window.sec, window.seq)
}
