package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScanDirListsFontsOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"))
	writeFile(t, filepath.Join(dir, "Inter", "OFL.txt"))
	writeFile(t, filepath.Join(dir, "Mono.OTF"))
	got, err := ScanDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 fonts, got %v", got)
	}
}

func TestScanDirMissing(t *testing.T) {
	got, err := ScanDir(filepath.Join(t.TempDir(), "none"))
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %v %v", got, err)
	}
}

func TestFindInPrefersRegular(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"))
	writeFile(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"))
	rel, full, err := FindIn([]string{dir}, "inter")
	if err != nil {
		t.Fatal(err)
	}
	if rel != "Inter/Inter-Regular.ttf" || full != dir+"/Inter/Inter-Regular.ttf" {
		t.Fatalf("got %q %q", rel, full)
	}
}

func TestFindInFuzzyName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Google_Sans", "GoogleSans-Medium.ttf"))
	if rel, _, err := FindIn([]string{dir}, "Google Sans"); err != nil || rel != "Google_Sans/GoogleSans-Medium.ttf" {
		t.Fatalf("got %q %v", rel, err)
	}
	if _, _, err := FindIn([]string{dir}, "Roboto"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not exist, got %v", err)
	}
}

func TestResolveExistingPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Custom.ttf")
	writeFile(t, path)
	got, err := Resolve(path)
	if err != nil || got != path {
		t.Fatalf("got %q %v", got, err)
	}
	if _, err := Resolve("  "); err == nil {
		t.Fatalf("expected error for empty name")
	}
}
