package photosort_test

import (
	"errors"
	"testing"
	"time"

	"photosort/internal/photosort"
	"photosort/internal/target"
	"photosort/internal/testutil"
)

func newValidateService(fsmgr photosort.FilesystemManager, logger photosort.Logger) *photosort.Service {
	return photosort.NewService(fsmgr, testutil.NewStaticTargets(target.NewMemoryTarget("/sorted")), nil,
		logger, testutil.FixedClock(), testutil.NewStubIDGenerator())
}

func TestService_Validate(t *testing.T) {
	created := at(2022, time.May, 1, 8, 0)

	t.Run("all files have extensions", func(t *testing.T) {
		fsmgr := testutil.NewMockFilesystemManager()
		fsmgr.AddFile("/src/a.jpg", []byte("a"), created)
		fsmgr.AddFile("/src/b.mov", []byte("b"), created)

		if err := newValidateService(fsmgr, photosort.NewNopLogger()).Validate("/src"); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("files without extension are all listed", func(t *testing.T) {
		fsmgr := testutil.NewMockFilesystemManager()
		fsmgr.AddFile("/src/a.jpg", []byte("a"), created)
		fsmgr.AddFile("/src/README", []byte("b"), created)
		fsmgr.AddFile("/src/notes", []byte("c"), created)

		err := newValidateService(fsmgr, photosort.NewNopLogger()).Validate("/src")
		var vErr *photosort.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("Validate() error = %v, want ValidationError", err)
		}
		want := []string{"/src/README", "/src/notes"}
		if len(vErr.Paths) != len(want) {
			t.Fatalf("Paths = %v, want %v", vErr.Paths, want)
		}
		for i := range want {
			if vErr.Paths[i] != want[i] {
				t.Errorf("Paths[%d] = %q, want %q", i, vErr.Paths[i], want[i])
			}
		}
	})

	t.Run("subdirectories are skipped with a warning", func(t *testing.T) {
		fsmgr := testutil.NewMockFilesystemManager()
		fsmgr.AddFile("/src/a.jpg", []byte("a"), created)
		fsmgr.AddDirectory("/src/nested")
		fsmgr.AddFile("/src/nested/noext", []byte("x"), created)
		logger := testutil.NewRecordingLogger()

		if err := newValidateService(fsmgr, logger).Validate("/src"); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
		if warns := logger.Records("WARN"); len(warns) != 1 {
			t.Errorf("warnings = %v, want 1", warns)
		}
	})

	t.Run("source must be a directory", func(t *testing.T) {
		fsmgr := testutil.NewMockFilesystemManager()
		fsmgr.AddFile("/src/a.jpg", []byte("a"), created)

		if err := newValidateService(fsmgr, photosort.NewNopLogger()).Validate("/src/a.jpg"); err == nil {
			t.Error("Validate() expected error for a file")
		}
	})

	t.Run("missing source", func(t *testing.T) {
		fsmgr := testutil.NewMockFilesystemManager()

		if err := newValidateService(fsmgr, photosort.NewNopLogger()).Validate("/nope"); err == nil {
			t.Error("Validate() expected error for missing directory")
		}
	})
}
