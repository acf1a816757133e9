package photosort

// Journal records runs and their per-file outcomes. It is written by the
// service but never consulted when computing a run.
type Journal interface {
	// CreateRun inserts a run in the running state.
	CreateRun(run *Run) error

	// FinishRun stores the final state of a run together with its entries.
	FinishRun(run *Run, entries []JournalEntry) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(limit int) ([]*Run, error)

	// ListEntries returns the recorded entries of a run in copy order.
	ListEntries(runID string) ([]*JournalEntry, error)
}

// NopJournal records nothing.
type NopJournal struct{}

func (NopJournal) CreateRun(*Run) error { return nil }

func (NopJournal) FinishRun(*Run, []JournalEntry) error { return nil }

func (NopJournal) ListRuns(int) ([]*Run, error) { return nil, nil }

func (NopJournal) ListEntries(string) ([]*JournalEntry, error) { return nil, nil }

// Compile-time check that NopJournal implements Journal
var _ Journal = NopJournal{}
