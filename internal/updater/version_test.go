package updater

import "testing"

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    int
	}{
		{"older current", "1.0.0", "1.1.0", -1},
		{"equal", "1.1.0", "1.1.0", 0},
		{"newer current", "2.0.0", "1.9.9", 1},
		{"v prefix on both", "v1.0.0", "v1.0.1", -1},
		{"mixed v prefix", "1.2.3", "v1.2.3", 0},
		{"prerelease is older", "1.0.0-rc.1", "1.0.0", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompareVersions(tt.current, tt.latest)
			if err != nil {
				t.Fatalf("CompareVersions failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.current, tt.latest, got, tt.want)
			}
		})
	}
}

func TestCompareVersionsInvalid(t *testing.T) {
	if _, err := CompareVersions("not-a-version", "1.0.0"); err == nil {
		t.Error("expected error for invalid current version")
	}
	if _, err := CompareVersions("1.0.0", "garbage"); err == nil {
		t.Error("expected error for invalid latest version")
	}
}

func TestIsUpdateAvailable(t *testing.T) {
	available, err := IsUpdateAvailable("0.1.0", "v0.2.0")
	if err != nil {
		t.Fatalf("IsUpdateAvailable failed: %v", err)
	}
	if !available {
		t.Error("expected update to be available")
	}

	available, err = IsUpdateAvailable("0.2.0", "0.2.0")
	if err != nil {
		t.Fatalf("IsUpdateAvailable failed: %v", err)
	}
	if available {
		t.Error("expected no update for equal versions")
	}
}
