package photosort_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"photosort/internal/photosort"
)

func TestRenameGroup(t *testing.T) {
	tests := []struct {
		name   string
		files  []photosort.SourceFile
		format string
		want   map[string]string
	}{
		{
			name: "paired files share a suffixed stem",
			files: []photosort.SourceFile{
				sourceFile("IMG_01.jpg", at(2022, time.May, 1, 10, 0), 0),
				sourceFile("IMG_01.mov", at(2022, time.May, 1, 10, 0), 1),
				sourceFile("IMG_02.jpg", at(2022, time.May, 2, 9, 0), 2),
			},
			format: "%Y%m%d",
			want: map[string]string{
				"/src/IMG_01.jpg": "20220501_1.jpg",
				"/src/IMG_01.mov": "20220501_1.mov",
				"/src/IMG_02.jpg": "20220502.jpg",
			},
		},
		{
			name: "independent files on the same date",
			files: []photosort.SourceFile{
				sourceFile("b.jpg", at(2022, time.May, 1, 8, 0), 0),
				sourceFile("a.jpg", at(2022, time.May, 1, 9, 0), 1),
			},
			format: "%Y%m%d",
			want: map[string]string{
				"/src/b.jpg": "20220501_1.jpg",
				"/src/a.jpg": "20220501_2.jpg",
			},
		},
		{
			name: "companion takes the first member's date",
			files: []photosort.SourceFile{
				sourceFile("IMG_07.heic", at(2022, time.May, 1, 23, 59), 0),
				sourceFile("IMG_07.mov", at(2022, time.May, 2, 0, 1), 1),
			},
			format: "%Y-%m-%d",
			want: map[string]string{
				"/src/IMG_07.heic": "2022-05-01_1.heic",
				"/src/IMG_07.mov":  "2022-05-01_1.mov",
			},
		},
		{
			name: "time components come from the first member",
			files: []photosort.SourceFile{
				sourceFile("x.jpg", at(2022, time.May, 1, 7, 15), 0),
				sourceFile("x.png", at(2022, time.May, 1, 7, 16), 1),
			},
			format: "%Y%m%d_%H%M",
			want: map[string]string{
				"/src/x.jpg": "20220501_0715_1.jpg",
				"/src/x.png": "20220501_0715_1.png",
			},
		},
		{
			name: "extension case is preserved",
			files: []photosort.SourceFile{
				sourceFile("DSC0001.JPG", at(2020, time.January, 2, 0, 0), 0),
			},
			format: "%Y%m%d",
			want: map[string]string{
				"/src/DSC0001.JPG": "20200102.JPG",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := photosort.RenameGroup(tt.files, tt.format)
			if err != nil {
				t.Fatalf("RenameGroup() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("RenameGroup() returned %d names, want %d: %v", len(got), len(tt.want), got)
			}
			for src, want := range tt.want {
				if got[src] != want {
					t.Errorf("RenameGroup()[%s] = %q, want %q", src, got[src], want)
				}
			}
		})
	}
}

func TestRenameGroup_SuffixPadding(t *testing.T) {
	var files []photosort.SourceFile
	for i := 0; i < 12; i++ {
		files = append(files, sourceFile(fmt.Sprintf("f%02d.jpg", i), at(2022, time.May, 1, 8, i), i))
	}

	got, err := photosort.RenameGroup(files, "%Y%m%d")
	if err != nil {
		t.Fatalf("RenameGroup() error = %v", err)
	}

	if got["/src/f00.jpg"] != "20220501_01.jpg" {
		t.Errorf("first name = %q, want 20220501_01.jpg", got["/src/f00.jpg"])
	}
	if got["/src/f11.jpg"] != "20220501_12.jpg" {
		t.Errorf("last name = %q, want 20220501_12.jpg", got["/src/f11.jpg"])
	}

	seen := make(map[string]bool)
	for _, name := range got {
		if seen[name] {
			t.Errorf("duplicate name %q", name)
		}
		seen[name] = true
	}
}

func TestRenameGroup_Collision(t *testing.T) {
	// A format without the month renders two distinct dates identically.
	files := []photosort.SourceFile{
		sourceFile("a.jpg", at(2022, time.May, 1, 8, 0), 0),
		sourceFile("b.jpg", at(2022, time.June, 1, 8, 0), 1),
	}

	_, err := photosort.RenameGroup(files, "%Y-%d")
	var collision *photosort.RenameCollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("RenameGroup() error = %v, want RenameCollisionError", err)
	}
	if collision.Target != "2022-01.jpg" {
		t.Errorf("collision target = %q, want 2022-01.jpg", collision.Target)
	}
	if len(collision.Sources) != 2 {
		t.Errorf("collision sources = %v", collision.Sources)
	}
}

func TestRenameGroup_Deterministic(t *testing.T) {
	files := []photosort.SourceFile{
		sourceFile("a.jpg", at(2022, time.May, 1, 8, 0), 0),
		sourceFile("a.mov", at(2022, time.May, 1, 8, 0), 1),
		sourceFile("b.jpg", at(2022, time.May, 1, 8, 0), 2),
		sourceFile("c.jpg", at(2022, time.May, 3, 8, 0), 3),
	}

	first, err := photosort.RenameGroup(files, "%Y%m%d")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := photosort.RenameGroup(files, "%Y%m%d")
		if err != nil {
			t.Fatal(err)
		}
		for src, name := range first {
			if again[src] != name {
				t.Fatalf("run %d: %s renamed to %q, first run gave %q", i, src, again[src], name)
			}
		}
	}
}
