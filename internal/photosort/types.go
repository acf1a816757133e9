package photosort

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDateFormat renders renamed files as YYYYMMDD.
const DefaultDateFormat = "%Y%m%d"

// Granularity controls how finely files are grouped by creation date.
type Granularity string

const (
	GroupByYear  Granularity = "year"
	GroupByMonth Granularity = "month"
	GroupByDate  Granularity = "date"
)

// ParseGranularity validates a grouping name.
func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(s); g {
	case GroupByYear, GroupByMonth, GroupByDate:
		return g, nil
	default:
		return "", &UnsupportedGroupingError{Grouping: s}
	}
}

// Key returns the group key for a date at this granularity.
func (g Granularity) Key(d CreationDate) (string, error) {
	switch g {
	case GroupByYear:
		return fmt.Sprintf("%04d", d.Year), nil
	case GroupByMonth:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month), nil
	case GroupByDate:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day), nil
	default:
		return "", &UnsupportedGroupingError{Grouping: string(g)}
	}
}

// CreationDate is the calendar date portion of a creation timestamp.
type CreationDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) CreationDate {
	y, m, d := t.Date()
	return CreationDate{Year: y, Month: m, Day: d}
}

func (d CreationDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// SourceFile is a regular file listed from the source directory.
type SourceFile struct {
	File      *Path
	CreatedAt time.Time
	// Index is the position in the directory listing; it breaks creation-time ties.
	Index int
}

// Name returns the file's base name.
func (f SourceFile) Name() string { return f.File.Name() }

// Ext returns everything after the final '.', without the dot.
func (f SourceFile) Ext() string {
	name := f.Name()
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return name[i+1:]
}

// Stem returns everything before the final '.'. Files sharing a stem are a paired set.
func (f SourceFile) Stem() string {
	name := f.Name()
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return name
	}
	return name[:i]
}

// Date returns the creation date.
func (f SourceFile) Date() CreationDate { return DateOf(f.CreatedAt) }

// CopyEntry maps one source file to its target, relative to the target root.
type CopyEntry struct {
	Source SourceFile
	Target string
}

// RunConfig is the resolved, immutable input for a single run.
type RunConfig struct {
	SourceDir  string
	TargetDir  string
	Grouping   string
	Rename     bool
	DateFormat string
}

// Plan is the computed copy mapping of a run, before anything is written.
type Plan struct {
	Groups  map[string][]SourceFile
	Entries []CopyEntry
}

// Result describes a successful run.
type Result struct {
	RunID   string
	Entries []CopyEntry
	Copied  int
}

// Run status values recorded in the journal.
const (
	RunStatusRunning  = "running"
	RunStatusSuccess  = "success"
	RunStatusConflict = "conflict"
	RunStatusError    = "error"
)

// Entry outcomes recorded in the journal.
const (
	OutcomeCopied     = "copied"
	OutcomeConflict   = "conflict"
	OutcomeRolledBack = "rolled_back"
)

// Run is the journal record of one sort invocation.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	SourceDir  string
	TargetDir  string
	Grouping   string
	Rename     bool
	DateFormat string
	Status     string
	Files      int
	Conflicts  int
}

// JournalEntry is the per-file outcome of a run.
type JournalEntry struct {
	Source  string
	Target  string
	Outcome string
}
