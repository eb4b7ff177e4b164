package wizard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vpcd/internal/config"
)

func TestBuildConfig(t *testing.T) {
	result := &Result{
		Region:      "eu-west-1",
		Table:       "network-metadata",
		DefaultCIDR: "172.16.0.0/16",
		ListenAddr:  ":9090",
	}

	cfg := BuildConfig(result)

	if cfg.Region != "eu-west-1" {
		t.Errorf("Region = %q, want %q", cfg.Region, "eu-west-1")
	}
	if cfg.Table != "network-metadata" {
		t.Errorf("Table = %q, want %q", cfg.Table, "network-metadata")
	}
	if cfg.DefaultCIDR != "172.16.0.0/16" {
		t.Errorf("DefaultCIDR = %q, want %q", cfg.DefaultCIDR, "172.16.0.0/16")
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, ":9090")
	}
}

func TestBuildConfigPassesValidation(t *testing.T) {
	cfg := BuildConfig(&Result{
		Region:      config.DefaultRegion,
		Table:       config.DefaultTable,
		DefaultCIDR: config.DefaultCIDR,
		ListenAddr:  config.DefaultListenAddr,
	})
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestWriteConfig(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("VPC_TABLE_NAME", "")
	cfg := BuildConfig(&Result{
		Region:      "us-east-2",
		Table:       "vpc-metadata",
		DefaultCIDR: "10.0.0.0/16",
		ListenAddr:  ":8080",
	})

	path := filepath.Join(t.TempDir(), "vpcd.yaml")
	if err := WriteConfig(cfg, path); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	s := string(content)
	if !strings.Contains(s, "region: us-east-2") {
		t.Error("Missing region in output")
	}
	if !strings.Contains(s, "table: vpc-metadata") {
		t.Error("Missing table in output")
	}
	if !strings.Contains(s, "# vpcd configuration") {
		t.Error("Missing header comment in output")
	}
	// The header references the actual output path.
	if !strings.Contains(s, path) {
		t.Errorf("Header should contain output path %q", path)
	}

	loaded, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed on generated config: %v", err)
	}
	if loaded.Region != "us-east-2" {
		t.Errorf("Region round-trip = %q, want %q", loaded.Region, "us-east-2")
	}
}

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"vpc-metadata", false},
		{"my_table.v2", false},
		{"abc", false},
		{"", true},
		{"ab", true},          // too short
		{"bad table", true},   // space
		{"bad/table", true},   // slash
		{strings.Repeat("a", 256), true}, // too long
	}

	for _, tt := range tests {
		err := validateTableName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateTableName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestValidateListenAddr(t *testing.T) {
	tests := []struct {
		addr    string
		wantErr bool
	}{
		{":8080", false},
		{"127.0.0.1:8080", false},
		{"", true},
		{"8080", true}, // missing colon
	}

	for _, tt := range tests {
		err := validateListenAddr(tt.addr)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateListenAddr(%q) error = %v, wantErr %v", tt.addr, err, tt.wantErr)
		}
	}
}

func TestRegionsToOptions(t *testing.T) {
	opts := RegionsToOptions()
	if len(opts) != len(Regions) {
		t.Errorf("RegionsToOptions() returned %d options, want %d", len(opts), len(Regions))
	}
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exists.txt")
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	if !FileExists(path) {
		t.Errorf("FileExists(%q) = false, want true", path)
	}
	if FileExists("/nonexistent/path/file.txt") {
		t.Error("FileExists(/nonexistent/path/file.txt) = true, want false")
	}
}

func TestConfirmOverwrite_Injected(t *testing.T) {
	orig := confirmOverwrite
	defer func() { confirmOverwrite = orig }()

	confirmOverwrite = func(string) (bool, error) { return true, nil }
	ok, err := ConfirmOverwrite("whatever.yaml")
	if err != nil || !ok {
		t.Errorf("ConfirmOverwrite = (%v, %v), want (true, nil)", ok, err)
	}
}
