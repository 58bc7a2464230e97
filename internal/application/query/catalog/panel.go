// internal/application/query/catalog/panel.go
package catalog

// FilterPanel models the filter UI's draft/commit cycle as an explicit
// two-slot state: the committed selection drives the visible grid, the
// draft only exists while the panel is open.
//
// Transitions: Closed → Open (draft = committed); within Open the draft
// mutates freely; Apply → Closed with committed = draft; Cancel → Closed
// with the committed selection untouched.
type FilterPanel struct {
	committed Selection
	draft     Selection
	open      bool
}

// NewFilterPanel starts closed with the empty selection committed.
func NewFilterPanel() *FilterPanel {
	return &FilterPanel{committed: NewSelection()}
}

// Committed returns the active selection (a copy).
func (p *FilterPanel) Committed() Selection { return p.committed.clone() }

// IsOpen reports whether the panel is showing a draft.
func (p *FilterPanel) IsOpen() bool { return p.open }

// Open seeds the draft from the committed selection. Re-opening an already
// open panel re-seeds the draft, discarding unapplied edits.
func (p *FilterPanel) Open() {
	p.draft = p.committed.clone()
	p.open = true
}

// Draft exposes the draft selection for mutation while the panel is open;
// nil when closed.
func (p *FilterPanel) Draft() *Selection {
	if !p.open {
		return nil
	}
	return &p.draft
}

// Apply commits the draft and closes the panel. It reports whether the
// committed selection actually changed (the caller recomputes only then).
func (p *FilterPanel) Apply() bool {
	if !p.open {
		return false
	}
	p.open = false
	if equalSelections(p.committed, p.draft) {
		return false
	}
	p.committed = p.draft.clone()
	p.committed.Page = 1
	return true
}

// Cancel closes the panel and discards the draft.
func (p *FilterPanel) Cancel() {
	p.open = false
	p.draft = Selection{}
}

// CommitDirect applies a selection without the draft cycle, for clients
// that filter live instead of batching edits in the panel.
func (p *FilterPanel) CommitDirect(sel Selection) {
	p.committed = sel.clone()
	p.open = false
}
