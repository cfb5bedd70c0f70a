package fonts

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"))
	touch(t, filepath.Join(dir, "Inter", "Inter-Regular.TTF"))
	touch(t, filepath.Join(dir, "readme.txt"))
	touch(t, filepath.Join(dir, "Mono.otf"))

	got, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	want := []string{"Inter/Inter-Bold.ttf", "Inter/Inter-Regular.TTF", "Mono.otf"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScanMissingDir(t *testing.T) {
	got, err := ScanDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil || len(got) != 0 {
		t.Errorf("ScanDir(missing) = %v, %v", got, err)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Google_Sans", "GoogleSans-Bold.ttf"))
	touch(t, filepath.Join(dir, "Google_Sans", "GoogleSans-Regular.ttf"))
	touch(t, filepath.Join(dir, "Inter", "Inter-Medium.ttf"))
	dirs := []string{filepath.Join(dir, "missing"), dir}

	tests := []struct {
		search, want string
	}{
		{"Google Sans", filepath.Join(dir, "Google_Sans", "GoogleSans-Regular.ttf")},
		{"inter", filepath.Join(dir, "Inter", "Inter-Medium.ttf")},
		{"", filepath.Join(dir, "Google_Sans", "GoogleSans-Regular.ttf")},
	}
	for _, tt := range tests {
		got, err := Find(dirs, tt.search)
		if err != nil || got != tt.want {
			t.Errorf("Find(%q) = %q, %v; want %q", tt.search, got, err, tt.want)
		}
	}
	if _, err := Find(dirs, "Roboto"); !os.IsNotExist(err) {
		t.Errorf("Find(Roboto) err = %v", err)
	}
}
