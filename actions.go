package reportbot

import (
	"github.com/olegmokeev23-byte/Report-Bot-Discord/store"
)

// ActionKind is the closed set of moderator actions a report message offers.
type ActionKind string

const (
	ActionAccept   ActionKind = "accept"
	ActionReject   ActionKind = "reject"
	ActionProgress ActionKind = "progress"
	ActionRespond  ActionKind = "respond"
)

// Action is one moderator-triggered operation on a report. Text carries the
// authored reply for ActionRespond and is empty otherwise.
type Action struct {
	Kind ActionKind
	Text string
}

// Status returns the status a kind transitions a report into. Respond is a
// side channel and maps to no status.
func (kind ActionKind) Status() (store.Status, bool) {
	switch kind {
	case ActionAccept:
		return store.StatusAccepted, true
	case ActionReject:
		return store.StatusRejected, true
	case ActionProgress:
		return store.StatusInProgress, true
	}
	return "", false
}

// applyAction runs the state transition for a moderator action. Status
// actions overwrite the current status regardless of what it was, even when
// re-firing the same one; that permissive behavior is deliberate. Respond
// never mutates the record and only resolves it.
func applyAction(reports store.Store, id string, action Action, moderatorID string) (store.Report, error) {
	status, ok := action.Kind.Status()
	if !ok {
		return reports.Get(id)
	}

	return reports.Update(id, func(report *store.Report) {
		report.Status = status
		report.HandledBy = moderatorID
	})
}
