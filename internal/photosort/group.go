package photosort

import "sort"

// GroupBy partitions files by the group key of their creation date.
// The relative order of files is preserved inside each group.
func GroupBy(files []SourceFile, g Granularity) (map[string][]SourceFile, error) {
	groups := make(map[string][]SourceFile)
	for _, f := range files {
		key, err := g.Key(f.Date())
		if err != nil {
			return nil, err
		}
		groups[key] = append(groups[key], f)
	}
	return groups, nil
}

// GroupKeys returns the keys of groups in ascending order.
func GroupKeys(groups map[string][]SourceFile) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
