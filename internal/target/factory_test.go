package target

import (
	"testing"

	"photosort/internal/config"
)

func TestFactory_Open(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.TargetConfig
		root    string
		wantErr bool
	}{
		{
			name: "filesystem target",
			cfg:  config.TargetConfig{Type: "filesystem"},
			root: "/tmp/sorted",
		},
		{
			name: "empty type defaults to filesystem",
			cfg:  config.TargetConfig{},
			root: "/tmp/sorted",
		},
		{
			name:    "filesystem target without root",
			cfg:     config.TargetConfig{Type: "filesystem"},
			root:    "",
			wantErr: true,
		},
		{
			name: "memory target",
			cfg:  config.TargetConfig{Type: "memory"},
			root: "sorted",
		},
		{
			name:    "s3 target without bucket",
			cfg:     config.TargetConfig{Type: "s3"},
			wantErr: true,
		},
		{
			name:    "unknown target type",
			cfg:     config.TargetConfig{Type: "ftp"},
			root:    "/tmp/sorted",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFactory(tt.cfg).Open(tt.root)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got == nil {
				t.Fatal("Open() returned nil target")
			}
		})
	}
}
