package version

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "dev build",
			info: Info{Version: "dev", Commit: unknown, Date: unknown, GoVersion: "go1.25.1", Platform: "linux/amd64"},
			want: "swatches version dev (go1.25.1, linux/amd64)",
		},
		{
			name: "release build",
			info: Info{Version: "1.2.0", Commit: "0123456789abcdef", Date: "2025-01-02T03:04:05Z", GoVersion: "go1.25.1", Platform: "linux/arm64"},
			want: "swatches version 1.2.0 (commit: 01234567, built: 2025-01-02T03:04:05Z, go1.25.1, linux/arm64)",
		},
		{
			name: "short commit",
			info: Info{Version: "1.2.0", Commit: "abc", Date: "today", GoVersion: "go1.25.1", Platform: "darwin/arm64"},
			want: "swatches version 1.2.0 (commit: abc, built: today, go1.25.1, darwin/arm64)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := format(tt.info); got != tt.want {
				t.Errorf("format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("Platform = %q", info.Platform)
	}
	if info.GoVersion == "" {
		t.Error("GoVersion is empty")
	}
}
