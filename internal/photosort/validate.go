package photosort

import "fmt"

// Validate resolves rawDir and checks its entries. See validate.
func (s *Service) Validate(rawDir string) error {
	dir, err := s.fsmgr.Resolve(rawDir)
	if err != nil {
		return fmt.Errorf("resolving source directory: %w", err)
	}
	return s.validate(dir)
}

// validate checks the immediate entries of dir before anything is touched.
// Directories are skipped with a warning. Every other entry whose name has no
// extension separator is collected; if any are found a *ValidationError
// listing all of them is returned.
func (s *Service) validate(dir *Path) error {
	if !dir.IsDir() {
		return fmt.Errorf("source is not a directory: %s", dir.String())
	}

	entries, err := s.fsmgr.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading source directory: %w", err)
	}

	var offending []string
	for _, e := range entries {
		if e.IsDir() {
			s.logger.Warn("directory will be ignored", "path", e.String())
			continue
		}
		if !e.HasExtension() {
			offending = append(offending, e.String())
		}
	}

	if len(offending) > 0 {
		return &ValidationError{Paths: offending}
	}
	return nil
}
