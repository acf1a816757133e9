package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"photosort/internal/config"
	"photosort/internal/database"
	"photosort/internal/fs"
	"photosort/internal/photosort"
	"photosort/internal/target"
)

// DefaultTargetDirName is the folder created under the working directory when
// no target directory is given.
const DefaultTargetDirName = "_sorted"

// PhotosortApp is the application layer between the CLI and photosort.Service.
// It constructs all dependencies from config, turns command line options into
// a RunConfig, and releases the journal and log file on Close.
type PhotosortApp struct {
	cfg          *config.Config
	fsmgr        photosort.FilesystemManager
	journal      photosort.Journal
	closeJournal func() error
	service      *photosort.Service
	logFile      *os.File
	opID         string
}

// RunOptions are the per-invocation values from the command line. Empty
// fields and a nil Rename fall back to the config defaults.
type RunOptions struct {
	SourceDir  string
	TargetDir  string
	GroupBy    string
	Rename     *bool
	DateFormat string
}

// NewPhotosortApp creates a fully wired PhotosortApp from the given config.
// operation identifies the CLI command being run (e.g. "sort", "history").
// When verbose is set debug messages are logged too. The caller must call Close when done.
func NewPhotosortApp(cfg *config.Config, operation string, verbose bool) (*PhotosortApp, error) {
	fsmgr := fs.NewOSFilesystemManager(cfg.Filesystem.Ignore)

	journal, closeJournal, err := database.NewJournalFromConfig(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("creating journal: %w", err)
	}

	opID := time.Now().UTC().Format("20060102T150405Z")
	logger, logFile, err := newLogger(cfg.LogDir, opID, verbose)
	if err != nil {
		closeJournal()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	svc := photosort.NewService(fsmgr, target.NewFactory(cfg.Target), journal,
		&slogAdapter{l: logger}, photosort.RealClock{}, photosort.UUIDGenerator{})
	logger.Debug("starting operation", "operation", operation)
	if cfg.Target.Type == "memory" {
		logger.Warn("memory target selected, copies are discarded when the process exits")
	}

	return &PhotosortApp{
		cfg:          cfg,
		fsmgr:        fsmgr,
		journal:      journal,
		closeJournal: closeJournal,
		service:      svc,
		logFile:      logFile,
		opID:         opID,
	}, nil
}

// RunConfig merges opts with the config defaults. The source directory
// defaults to the working directory and the target to <cwd>/_sorted.
func (a *PhotosortApp) RunConfig(opts RunOptions) (photosort.RunConfig, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return photosort.RunConfig{}, fmt.Errorf("getting working directory: %w", err)
	}

	rc := photosort.RunConfig{
		SourceDir:  opts.SourceDir,
		TargetDir:  opts.TargetDir,
		Grouping:   opts.GroupBy,
		Rename:     a.cfg.Defaults.Rename,
		DateFormat: opts.DateFormat,
	}
	if rc.SourceDir == "" {
		rc.SourceDir = cwd
	}
	if rc.TargetDir == "" {
		rc.TargetDir = filepath.Join(cwd, DefaultTargetDirName)
	}
	if rc.Grouping == "" {
		rc.Grouping = a.cfg.Defaults.GroupBy
	}
	if rc.Grouping == "" {
		rc.Grouping = string(photosort.GroupByYear)
	}
	if opts.Rename != nil {
		rc.Rename = *opts.Rename
	}
	if rc.DateFormat == "" {
		rc.DateFormat = a.cfg.Defaults.DateFormat
	}
	if rc.DateFormat == "" {
		rc.DateFormat = photosort.DefaultDateFormat
	}
	return rc, nil
}

// Sort organizes the source directory into the target.
func (a *PhotosortApp) Sort(rc photosort.RunConfig) (*photosort.Result, error) {
	return a.service.Sort(rc)
}

// Plan computes the mapping Sort would apply without copying anything.
func (a *PhotosortApp) Plan(rc photosort.RunConfig) (*photosort.Plan, error) {
	return a.service.Plan(rc)
}

// Validate checks a source directory without touching anything.
func (a *PhotosortApp) Validate(rawPath string) error {
	return a.service.Validate(rawPath)
}

// History returns the most recent runs.
func (a *PhotosortApp) History(limit int) ([]*photosort.Run, error) {
	return a.service.History(limit)
}

// RunEntries returns the per-file outcomes of a run.
func (a *PhotosortApp) RunEntries(runID string) ([]*photosort.JournalEntry, error) {
	return a.service.RunEntries(runID)
}

// OperationID returns the identifier written in every log line of this invocation.
func (a *PhotosortApp) OperationID() string {
	return a.opID
}

// Close closes the journal and the log file.
func (a *PhotosortApp) Close() error {
	var firstErr error

	if err := a.closeJournal(); err != nil {
		firstErr = fmt.Errorf("closing journal: %w", err)
	}

	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing log file: %w", err)
		}
	}

	return firstErr
}
