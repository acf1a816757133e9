package photosort

import (
	"errors"
	"fmt"
)

// Service sequences a sort run: validate, list, group, name, copy.
// It holds no state between runs.
type Service struct {
	fsmgr   FilesystemManager
	targets TargetFactory
	journal Journal
	logger  Logger
	clock   Clock
	idgen   IDGenerator
}

// NewService creates a Service with the provided dependencies.
// A nil journal records nothing.
func NewService(fsmgr FilesystemManager, targets TargetFactory, journal Journal, logger Logger, clock Clock, idgen IDGenerator) *Service {
	if journal == nil {
		journal = NopJournal{}
	}
	return &Service{
		fsmgr:   fsmgr,
		targets: targets,
		journal: journal,
		logger:  logger,
		clock:   clock,
		idgen:   idgen,
	}
}

// Plan computes the copy mapping for cfg without writing anything.
func (s *Service) Plan(cfg RunConfig) (*Plan, error) {
	g, err := ParseGranularity(cfg.Grouping)
	if err != nil {
		return nil, err
	}
	if cfg.Rename {
		if err := checkDateFormat(cfg.DateFormat); err != nil {
			return nil, err
		}
	}

	dir, err := s.fsmgr.Resolve(cfg.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("resolving source directory: %w", err)
	}

	if err := s.validate(dir); err != nil {
		return nil, err
	}

	files, err := s.listSources(dir, newCreationCache(s.fsmgr))
	if err != nil {
		return nil, err
	}

	s.logger.Info("constructing groups", "files", len(files), "grouping", string(g))
	groups, err := GroupBy(files, g)
	if err != nil {
		return nil, err
	}

	if cfg.Rename {
		s.logger.Info("renaming files", "format", cfg.DateFormat)
	}
	entries, err := BuildMapping(groups, cfg.Rename, cfg.DateFormat)
	if err != nil {
		return nil, err
	}

	return &Plan{Groups: groups, Entries: entries}, nil
}

// Sort organizes cfg.SourceDir into cfg.TargetDir. On conflicts every file
// copied by this run is removed again and a *ConflictError is returned.
func (s *Service) Sort(cfg RunConfig) (*Result, error) {
	plan, err := s.Plan(cfg)
	if err != nil {
		return nil, err
	}

	target, err := s.targets.Open(cfg.TargetDir)
	if err != nil {
		return nil, fmt.Errorf("opening target: %w", err)
	}

	run := &Run{
		ID:         s.idgen.New(),
		StartedAt:  s.clock.Now(),
		SourceDir:  cfg.SourceDir,
		TargetDir:  cfg.TargetDir,
		Grouping:   cfg.Grouping,
		Rename:     cfg.Rename,
		DateFormat: cfg.DateFormat,
		Status:     RunStatusRunning,
		Files:      len(plan.Entries),
	}
	if err := s.journal.CreateRun(run); err != nil {
		return nil, fmt.Errorf("recording run: %w", err)
	}

	s.logger.Info("copying files", "run", run.ID, "source", cfg.SourceDir, "target", cfg.TargetDir, "files", len(plan.Entries))
	res, applyErr := NewCopier(s.fsmgr, target, s.logger).Apply(plan.Entries)

	s.finishRun(run, res, applyErr)

	if applyErr != nil {
		return nil, applyErr
	}

	s.logger.Info("completed successfully", "run", run.ID, "copied", len(res.Created))
	return &Result{RunID: run.ID, Entries: plan.Entries, Copied: len(res.Created)}, nil
}

// finishRun writes the outcome of a run to the journal. Journal failures are
// logged; the files on disk are already in their final state.
func (s *Service) finishRun(run *Run, res *ApplyResult, applyErr error) {
	run.FinishedAt = s.clock.Now()
	run.Conflicts = len(res.Conflicts)

	var conflictErr *ConflictError
	switch {
	case applyErr == nil:
		run.Status = RunStatusSuccess
	case errors.As(applyErr, &conflictErr):
		run.Status = RunStatusConflict
	default:
		run.Status = RunStatusError
	}

	rolledBack := make(map[string]bool, len(res.RolledBack))
	for _, e := range res.RolledBack {
		rolledBack[e.Target] = true
	}

	entries := make([]JournalEntry, 0, len(res.Created)+len(res.Conflicts))
	for _, e := range res.Created {
		outcome := OutcomeCopied
		if rolledBack[e.Target] {
			outcome = OutcomeRolledBack
		}
		entries = append(entries, JournalEntry{Source: e.Source.File.String(), Target: e.Target, Outcome: outcome})
	}
	for _, c := range res.Conflicts {
		entries = append(entries, JournalEntry{Source: c.Source, Target: c.Target, Outcome: OutcomeConflict})
	}

	if err := s.journal.FinishRun(run, entries); err != nil {
		s.logger.Error("recording run outcome failed", "run", run.ID, "error", err)
	}
}

// History returns the most recent runs, newest first.
func (s *Service) History(limit int) ([]*Run, error) {
	runs, err := s.journal.ListRuns(limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}

// RunEntries returns the per-file outcomes recorded for a run.
func (s *Service) RunEntries(runID string) ([]*JournalEntry, error) {
	entries, err := s.journal.ListEntries(runID)
	if err != nil {
		return nil, fmt.Errorf("listing run entries: %w", err)
	}
	return entries, nil
}
