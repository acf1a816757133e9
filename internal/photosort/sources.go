package photosort

import (
	"fmt"
	"sort"
)

// listSources returns the regular, non-ignored files directly under dir with
// their creation times, sorted ascending by creation time. The sort is stable,
// so files created at the same instant keep their listing order.
func (s *Service) listSources(dir *Path, times *creationCache) ([]SourceFile, error) {
	entries, err := s.fsmgr.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading source directory: %w", err)
	}

	var files []SourceFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if s.fsmgr.IsIgnored(e) {
			s.logger.Debug("ignoring file", "path", e.String())
			continue
		}
		if !e.IsRegular() {
			s.logger.Warn("skipping non-regular file", "path", e.String())
			continue
		}

		created, err := times.CreationTime(e)
		if err != nil {
			return nil, fmt.Errorf("reading creation time of %s: %w", e.String(), err)
		}
		files = append(files, SourceFile{File: e, CreatedAt: created, Index: len(files)})
	}

	SortByCreation(files)
	return files, nil
}

// SortByCreation orders files by ascending creation time, breaking ties by
// listing index.
func SortByCreation(files []SourceFile) {
	sort.SliceStable(files, func(i, j int) bool {
		if !files[i].CreatedAt.Equal(files[j].CreatedAt) {
			return files[i].CreatedAt.Before(files[j].CreatedAt)
		}
		return files[i].Index < files[j].Index
	})
}
