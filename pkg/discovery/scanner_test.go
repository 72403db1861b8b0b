package discovery

import (
	"os"
	"path/filepath"
	"testing"

	vcerrors "github.com/vcode-cli/vcode/pkg/errors"
)

func TestScan_AutoMode(t *testing.T) {
	tmpDir := t.TempDir()

	rustProject := filepath.Join(tmpDir, "my-rust-project")
	mustMkdir(t, rustProject)
	mustCreateFile(t, filepath.Join(rustProject, "Cargo.toml"))

	mustMkdir(t, filepath.Join(tmpDir, "random-folder"))

	found, err := Scan(tmpDir, 1, FilterAuto)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(found) != 1 {
		t.Fatalf("expected 1 project, got %d", len(found))
	}
	if found[0].Name != "my-rust-project" {
		t.Errorf("Name = %q, want %q", found[0].Name, "my-rust-project")
	}
	if found[0].Type != TypeRust {
		t.Errorf("Type = %v, want %v", found[0].Type, TypeRust)
	}
	if filepath.Base(found[0].Path) != found[0].Name {
		t.Errorf("Name %q does not match final path component of %q", found[0].Name, found[0].Path)
	}
	if !filepath.IsAbs(found[0].Path) {
		t.Errorf("Path %q is not absolute", found[0].Path)
	}
}

func TestScan_AllModeIsSuperset(t *testing.T) {
	tmpDir := t.TempDir()

	rustProject := filepath.Join(tmpDir, "proj-a")
	mustMkdir(t, rustProject)
	mustCreateFile(t, filepath.Join(rustProject, "Cargo.toml"))
	mustMkdir(t, filepath.Join(tmpDir, "proj-b"))

	all, err := Scan(tmpDir, 1, FilterAll)
	if err != nil {
		t.Fatalf("Scan(All) failed: %v", err)
	}
	auto, err := Scan(tmpDir, 1, FilterAuto)
	if err != nil {
		t.Fatalf("Scan(Auto) failed: %v", err)
	}

	if len(all) != 2 {
		t.Errorf("All mode: expected 2 results, got %d", len(all))
	}
	if len(auto) != 1 {
		t.Errorf("Auto mode: expected 1 result, got %d", len(auto))
	}

	allPaths := make(map[string]bool)
	for _, p := range all {
		allPaths[p.Path] = true
	}
	for _, p := range auto {
		if !allPaths[p.Path] {
			t.Errorf("Auto result %q missing from All results", p.Path)
		}
	}

	// The unclassified directory is reported with an explicit
	// unclassified type, not dropped.
	for _, p := range all {
		if p.Name == "proj-b" && p.Type != TypeUnclassified {
			t.Errorf("proj-b Type = %v, want TypeUnclassified", p.Type)
		}
	}
}

func TestScan_ExcludedAtTargetDepth(t *testing.T) {
	tmpDir := t.TempDir()

	// node_modules is a directory at the target depth but must never
	// appear, even in All mode.
	mustMkdir(t, filepath.Join(tmpDir, "node_modules", "pkg"))

	found, err := Scan(tmpDir, 1, FilterAll)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(found) != 0 {
		t.Errorf("expected 0 results, got %d", len(found))
	}
}

func TestScan_ExcludedPrunesSubtree(t *testing.T) {
	tmpDir := t.TempDir()

	// A project nested under an excluded directory is never visited.
	hidden := filepath.Join(tmpDir, "target", "some-project")
	mustMkdir(t, hidden)
	mustCreateFile(t, filepath.Join(hidden, "Cargo.toml"))

	visible := filepath.Join(tmpDir, "group", "real-project")
	mustMkdir(t, visible)
	mustCreateFile(t, filepath.Join(visible, "Cargo.toml"))

	found, err := Scan(tmpDir, 2, FilterAuto)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(found) != 1 {
		t.Fatalf("expected 1 project, got %d", len(found))
	}
	if found[0].Name != "real-project" {
		t.Errorf("Name = %q, want %q", found[0].Name, "real-project")
	}
}

func TestScan_OnlyTargetDepthEvaluated(t *testing.T) {
	tmpDir := t.TempDir()

	// Depth 1 holds a classifiable project; depth 2 holds another.
	// At targetDepth 2 only the deep one may be reported.
	shallow := filepath.Join(tmpDir, "shallow")
	mustMkdir(t, shallow)
	mustCreateFile(t, filepath.Join(shallow, "go.mod"))

	deep := filepath.Join(tmpDir, "shallow", "deep")
	mustMkdir(t, deep)
	mustCreateFile(t, filepath.Join(deep, "go.mod"))

	// And depth 3 must never be reached.
	deeper := filepath.Join(deep, "deeper")
	mustMkdir(t, deeper)
	mustCreateFile(t, filepath.Join(deeper, "go.mod"))

	found, err := Scan(tmpDir, 2, FilterAuto)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(found) != 1 {
		t.Fatalf("expected 1 project, got %d", len(found))
	}
	if found[0].Name != "deep" {
		t.Errorf("Name = %q, want %q", found[0].Name, "deep")
	}
}

func TestScan_UnreadableDirAborts(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	tmpDir := t.TempDir()

	readable := filepath.Join(tmpDir, "group", "proj")
	mustMkdir(t, readable)
	mustCreateFile(t, filepath.Join(readable, "Cargo.toml"))

	locked := filepath.Join(tmpDir, "locked")
	mustMkdir(t, locked)
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	// Descending into the unreadable directory aborts the whole scan,
	// discarding the project already collected from the readable one.
	found, err := Scan(tmpDir, 2, FilterAuto)
	if err == nil {
		t.Fatal("expected error for unreadable directory")
	}
	if !vcerrors.IsScanError(err) {
		t.Errorf("expected ScanError, got %v", err)
	}
	if vcerrors.IsInvalidBase(err) {
		t.Error("mid-scan failure should not be an invalid-base error")
	}
	if found != nil {
		t.Errorf("expected no partial result, got %v", found)
	}
}

func TestScan_InvalidBase(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	found, err := Scan(missing, 1, FilterAuto)
	if err == nil {
		t.Fatal("expected error for missing base path")
	}
	if !vcerrors.IsInvalidBase(err) {
		t.Errorf("expected invalid-base ScanError, got %v", err)
	}
	if found != nil {
		t.Errorf("expected no partial result, got %v", found)
	}
}

func TestScan_BaseIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "not-a-dir")
	mustCreateFile(t, file)

	_, err := Scan(file, 1, FilterAuto)
	if !vcerrors.IsInvalidBase(err) {
		t.Errorf("expected invalid-base ScanError, got %v", err)
	}
}

func TestScan_DepthBelowOne(t *testing.T) {
	if _, err := Scan(t.TempDir(), 0, FilterAuto); err == nil {
		t.Error("expected error for targetDepth 0")
	}
}

func TestParseFilterMode(t *testing.T) {
	if mode, ok := ParseFilterMode("auto"); !ok || mode != FilterAuto {
		t.Errorf("ParseFilterMode(auto) = %v, %v", mode, ok)
	}
	if mode, ok := ParseFilterMode("all"); !ok || mode != FilterAll {
		t.Errorf("ParseFilterMode(all) = %v, %v", mode, ok)
	}
	if _, ok := ParseFilterMode("everything"); ok {
		t.Error("ParseFilterMode should reject unknown modes")
	}
}
