package database

import "testing"

func TestShouldMigrate(t *testing.T) {
	tests := []struct {
		name  string
		mode  string
		force bool
		want  bool
	}{
		{"debug migrates", "debug", false, true},
		{"test migrates", "test", false, true},
		{"release does not migrate", "release", false, false},
		{"release with --migrate does", "release", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldMigrate(tt.mode, tt.force); got != tt.want {
				t.Errorf("ShouldMigrate(%q, %v) = %v, want %v", tt.mode, tt.force, got, tt.want)
			}
		})
	}
}
