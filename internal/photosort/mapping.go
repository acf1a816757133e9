package photosort

import (
	"fmt"
	"path/filepath"
	"strings"
)

// BuildMapping assigns every grouped file a target path relative to the target
// root. Groups are visited in key order and files keep their group order.
// Pass one places each file under its group folder with its original name;
// when rename is set, pass two replaces the name using RenameGroup.
func BuildMapping(groups map[string][]SourceFile, rename bool, dateFormat string) ([]CopyEntry, error) {
	var entries []CopyEntry
	for _, key := range GroupKeys(groups) {
		for _, f := range groups[key] {
			entries = append(entries, CopyEntry{Source: f, Target: filepath.Join(key, f.Name())})
		}
	}

	if rename {
		renamed := make(map[string]string)
		for _, key := range GroupKeys(groups) {
			names, err := RenameGroup(groups[key], dateFormat)
			if err != nil {
				return nil, fmt.Errorf("renaming group %s: %w", key, err)
			}
			for src, name := range names {
				renamed[src] = name
			}
		}
		for i := range entries {
			e := &entries[i]
			e.Target = filepath.Join(filepath.Dir(e.Target), renamed[e.Source.File.String()])
		}
	}

	owners := make(map[string]string, len(entries))
	for _, e := range entries {
		if other, taken := owners[e.Target]; taken {
			return nil, &RenameCollisionError{Target: e.Target, Sources: []string{other, e.Source.File.String()}}
		}
		owners[e.Target] = e.Source.File.String()
	}

	return entries, nil
}

// checkDateFormat rejects formats that cannot produce a plain file name.
func checkDateFormat(format string) error {
	if strings.TrimSpace(format) == "" {
		return fmt.Errorf("date format must not be empty")
	}
	if strings.ContainsAny(format, `/\`) {
		return fmt.Errorf("date format %q must not contain path separators", format)
	}
	return nil
}
