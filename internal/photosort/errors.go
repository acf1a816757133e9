package photosort

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMetadataUnavailable is returned when the filesystem does not report a
// creation (birth) time for a path. There is no fallback to modification time.
var ErrMetadataUnavailable = errors.New("creation timestamp unavailable")

// ErrTargetExists is returned by Target.Put when the destination appeared
// between the existence check and the write.
var ErrTargetExists = errors.New("target already exists")

// ValidationError lists source entries that cannot be organized.
type ValidationError struct {
	Paths []string
}

func (e *ValidationError) Error() string {
	return "the following files have no extension; no files have been touched:\n" + strings.Join(e.Paths, "\n")
}

// UnsupportedGroupingError reports an unknown grouping granularity.
type UnsupportedGroupingError struct {
	Grouping string
}

func (e *UnsupportedGroupingError) Error() string {
	return fmt.Sprintf("unsupported grouping %q (want year, month or date)", e.Grouping)
}

// RenameCollisionError reports two sources mapped to the same target.
// With a date format that omits date components, distinct dates can render
// to the same name; this is surfaced rather than resolved.
type RenameCollisionError struct {
	Target  string
	Sources []string
}

func (e *RenameCollisionError) Error() string {
	return fmt.Sprintf("rename collision: %s would be written by %s", e.Target, strings.Join(e.Sources, " and "))
}

// Conflict is a target that already existed when its copy was attempted.
type Conflict struct {
	Source   string
	Target   string
	Location string
}

func (c Conflict) String() string {
	loc := c.Location
	if loc == "" {
		loc = c.Target
	}
	return c.Source + " -> " + loc
}

// RollbackFailure is a created target that could not be removed during rollback.
type RollbackFailure struct {
	Target string
	Err    error
}

func (f RollbackFailure) String() string {
	return fmt.Sprintf("%s: %v", f.Target, f.Err)
}

// ConflictError is returned when one or more targets already existed.
// Every target created by the run has been removed, except those listed in
// RollbackFailures, which need operator attention.
type ConflictError struct {
	Conflicts        []Conflict
	RollbackFailures []RollbackFailure
}

func (e *ConflictError) Error() string {
	var b strings.Builder
	b.WriteString("failed to write to the following files; rolled back all copied files:")
	for _, c := range e.Conflicts {
		b.WriteString("\n")
		b.WriteString(c.String())
	}
	writeRollbackFailures(&b, e.RollbackFailures)
	return b.String()
}

// AbortError is returned when a copy fails for a reason other than a conflict.
// Targets created before the failure have been rolled back.
type AbortError struct {
	Source           string
	Target           string
	Err              error
	RollbackFailures []RollbackFailure
}

func (e *AbortError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "copying %s to %s: %v", e.Source, e.Target, e.Err)
	writeRollbackFailures(&b, e.RollbackFailures)
	return b.String()
}

func (e *AbortError) Unwrap() error { return e.Err }

func writeRollbackFailures(b *strings.Builder, failures []RollbackFailure) {
	if len(failures) == 0 {
		return
	}
	b.WriteString("\nrollback incomplete, remove manually:")
	for _, f := range failures {
		b.WriteString("\n")
		b.WriteString(f.String())
	}
}
