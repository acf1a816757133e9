package photosort_test

import (
	"reflect"
	"testing"
	"time"

	"photosort/internal/photosort"
)

func TestGroupBy(t *testing.T) {
	files := []photosort.SourceFile{
		sourceFile("a.jpg", at(2021, time.December, 31, 23, 0), 0),
		sourceFile("b.jpg", at(2022, time.May, 1, 8, 0), 1),
		sourceFile("c.jpg", at(2022, time.May, 1, 9, 0), 2),
		sourceFile("d.jpg", at(2022, time.May, 2, 8, 0), 3),
		sourceFile("e.jpg", at(2022, time.June, 1, 8, 0), 4),
	}

	tests := []struct {
		g    photosort.Granularity
		want map[string][]string
	}{
		{
			g: photosort.GroupByYear,
			want: map[string][]string{
				"2021": {"a.jpg"},
				"2022": {"b.jpg", "c.jpg", "d.jpg", "e.jpg"},
			},
		},
		{
			g: photosort.GroupByMonth,
			want: map[string][]string{
				"2021-12": {"a.jpg"},
				"2022-05": {"b.jpg", "c.jpg", "d.jpg"},
				"2022-06": {"e.jpg"},
			},
		},
		{
			g: photosort.GroupByDate,
			want: map[string][]string{
				"2021-12-31": {"a.jpg"},
				"2022-05-01": {"b.jpg", "c.jpg"},
				"2022-05-02": {"d.jpg"},
				"2022-06-01": {"e.jpg"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.g), func(t *testing.T) {
			groups, err := photosort.GroupBy(files, tt.g)
			if err != nil {
				t.Fatalf("GroupBy() error = %v", err)
			}

			got := make(map[string][]string)
			total := 0
			for key, members := range groups {
				for _, f := range members {
					got[key] = append(got[key], f.Name())
				}
				total += len(members)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GroupBy() = %v, want %v", got, tt.want)
			}
			if total != len(files) {
				t.Errorf("grouped %d files, want %d", total, len(files))
			}
		})
	}
}

func TestGroupBy_Unsupported(t *testing.T) {
	files := []photosort.SourceFile{sourceFile("a.jpg", at(2022, time.May, 1, 0, 0), 0)}
	if _, err := photosort.GroupBy(files, photosort.Granularity("week")); err == nil {
		t.Fatal("GroupBy() expected error for unsupported granularity")
	}
}

func TestGroupKeys(t *testing.T) {
	groups := map[string][]photosort.SourceFile{
		"2022-06": nil,
		"2021-12": nil,
		"2022-05": nil,
	}
	want := []string{"2021-12", "2022-05", "2022-06"}
	if got := photosort.GroupKeys(groups); !reflect.DeepEqual(got, want) {
		t.Errorf("GroupKeys() = %v, want %v", got, want)
	}
}

func TestGroupBy_FinerRefinesCoarser(t *testing.T) {
	var files []photosort.SourceFile
	for i, d := range []int{1, 1, 2, 15, 28} {
		files = append(files, sourceFile("m.jpg", at(2022, time.Month(1+i%3), d, 12, 0), i))
	}

	coarse := map[photosort.Granularity]photosort.Granularity{
		photosort.GroupByDate:  photosort.GroupByMonth,
		photosort.GroupByMonth: photosort.GroupByYear,
	}
	for fine, parent := range coarse {
		groups, err := photosort.GroupBy(files, fine)
		if err != nil {
			t.Fatal(err)
		}
		for key, members := range groups {
			want, err := parent.Key(members[0].Date())
			if err != nil {
				t.Fatal(err)
			}
			for _, f := range members {
				got, _ := parent.Key(f.Date())
				if got != want {
					t.Errorf("%s group %s spans %s groups %s and %s", fine, key, parent, want, got)
				}
			}
		}
	}
}
