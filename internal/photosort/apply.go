package photosort

import (
	"errors"
	"fmt"
)

// ApplyResult records what a Copier did with each mapping entry.
type ApplyResult struct {
	Created          []CopyEntry
	Conflicts        []Conflict
	RolledBack       []CopyEntry
	RollbackFailures []RollbackFailure
}

// Copier copies mapped source files into a Target without overwriting, and
// undoes its own copies when the run cannot complete cleanly.
type Copier struct {
	fsmgr  FilesystemManager
	target Target
	logger Logger
}

// NewCopier creates a Copier writing into target.
func NewCopier(fsmgr FilesystemManager, target Target, logger Logger) *Copier {
	return &Copier{fsmgr: fsmgr, target: target, logger: logger}
}

// Apply copies every entry. Existing targets are never overwritten: they are
// recorded as conflicts and the remaining entries are still processed so the
// full conflict set is reported. If any conflict was found, every target
// created by this call is removed and a *ConflictError is returned alongside
// the result. Any other failure stops processing, rolls back what was created
// so far and returns an *AbortError.
//
// Rollback is attempted once. Targets that cannot be removed are listed in
// RollbackFailures and left for the operator.
func (c *Copier) Apply(entries []CopyEntry) (*ApplyResult, error) {
	res := &ApplyResult{}

	for _, e := range entries {
		conflict, err := c.copyOne(e)
		if err != nil {
			c.rollback(res)
			return res, &AbortError{
				Source:           e.Source.File.String(),
				Target:           c.target.Location(e.Target),
				Err:              err,
				RollbackFailures: res.RollbackFailures,
			}
		}
		if conflict {
			c.logger.Warn("target already exists", "source", e.Source.File.String(), "target", c.target.Location(e.Target))
			res.Conflicts = append(res.Conflicts, Conflict{
				Source:   e.Source.File.String(),
				Target:   e.Target,
				Location: c.target.Location(e.Target),
			})
			continue
		}
		res.Created = append(res.Created, e)
		c.logger.Debug("file copied", "source", e.Source.File.String(), "target", c.target.Location(e.Target))
	}

	if len(res.Conflicts) > 0 {
		c.logger.Error("conflicts found, rolling back", "conflicts", len(res.Conflicts), "created", len(res.Created))
		c.rollback(res)
		return res, &ConflictError{Conflicts: res.Conflicts, RollbackFailures: res.RollbackFailures}
	}

	return res, nil
}

// copyOne copies a single entry. It reports conflict=true when the target
// already exists, in which case nothing was written.
func (c *Copier) copyOne(e CopyEntry) (conflict bool, err error) {
	if err := c.target.EnsureDir(e.Target); err != nil {
		return false, fmt.Errorf("creating target directory: %w", err)
	}

	exists, err := c.target.Exists(e.Target)
	if err != nil {
		return false, fmt.Errorf("checking target: %w", err)
	}
	if exists {
		return true, nil
	}

	info, err := c.fsmgr.Stat(e.Source.File)
	if err != nil {
		return false, fmt.Errorf("stat source: %w", err)
	}

	r, err := c.fsmgr.Open(e.Source.File)
	if err != nil {
		return false, fmt.Errorf("opening source: %w", err)
	}
	defer r.Close()

	if err := c.target.Put(e.Target, r, info); err != nil {
		if errors.Is(err, ErrTargetExists) {
			return true, nil
		}
		return false, fmt.Errorf("writing target: %w", err)
	}
	return false, nil
}

// rollback removes every target created so far, newest first.
func (c *Copier) rollback(res *ApplyResult) {
	for i := len(res.Created) - 1; i >= 0; i-- {
		e := res.Created[i]
		if err := c.target.Remove(e.Target); err != nil {
			c.logger.Error("rollback failed", "target", c.target.Location(e.Target), "error", err)
			res.RollbackFailures = append(res.RollbackFailures, RollbackFailure{
				Target: c.target.Location(e.Target),
				Err:    err,
			})
			continue
		}
		res.RolledBack = append(res.RolledBack, e)
	}
}
