package photosort

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ncruces/go-strftime"
)

// RenameGroup computes date-based file names for the files of one group.
// files must already be in ascending creation order. The result maps each
// source path to its new file name.
//
// The name stem is the creation time rendered with dateFormat (strftime
// syntax). When more than one file in the group shares a creation date, a
// running index "_N" is appended, zero-padded to the width of that date's file
// count. Files sharing a stem (live photo pairs) take the stem, date and index
// of the first of them to be processed, so companions stay associated.
func RenameGroup(files []SourceFile, dateFormat string) (map[string]string, error) {
	// Companions take the date of the first file with their stem.
	type stemInfo struct {
		date    CreationDate
		created time.Time
		base    string
		named   bool
	}
	stems := make(map[string]*stemInfo)
	dates := make([]CreationDate, len(files))
	for i, f := range files {
		st, ok := stems[f.Stem()]
		if !ok {
			st = &stemInfo{date: f.Date(), created: f.CreatedAt}
			stems[f.Stem()] = st
		}
		dates[i] = st.date
	}

	dateCount := make(map[CreationDate]int)
	for _, d := range dates {
		dateCount[d]++
	}

	seen := make(map[CreationDate]int)
	owners := make(map[string]string, len(files))
	names := make(map[string]string, len(files))
	for i, f := range files {
		st := stems[f.Stem()]
		if !st.named {
			st.named = true
			st.base = strftime.Format(dateFormat, st.created)
			if n := dateCount[dates[i]]; n > 1 {
				seen[dates[i]]++
				st.base = fmt.Sprintf("%s_%0*d", st.base, len(strconv.Itoa(n)), seen[dates[i]])
			}
		}

		name := st.base + "." + f.Ext()
		if other, taken := owners[name]; taken {
			return nil, &RenameCollisionError{Target: name, Sources: []string{other, f.File.String()}}
		}
		owners[name] = f.File.String()
		names[f.File.String()] = name
	}

	return names, nil
}
