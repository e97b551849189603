package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func longText(phrase string, n int) string {
	var b strings.Builder
	for b.Len() < n {
		b.WriteString(phrase)
	}
	return b.String()[:n]
}

func TestScanFindsNearDuplicate(t *testing.T) {
	knownDir := t.TempDir()
	targetDir := t.TempDir()

	base := longText("The quick brown fox jumps over the lazy dog. ", 2000)
	writeFile(t, knownDir, "original.txt", base)
	writeFile(t, targetDir, "near-copy.txt", base+" trailer")
	writeFile(t, targetDir, "unrelated.txt", longText("completely different filler content here. ", 2000))

	s := New(Options{Workers: 2, Threshold: 1 << 30, Extensions: nil, CacheSize: 10})
	results, err := s.Scan(context.Background(), targetDir, knownDir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	byFile := make(map[string]*Result)
	for _, r := range results {
		byFile[filepath.Base(r.TargetFile)] = r
	}

	nearCopy, ok := byFile["near-copy.txt"]
	if !ok || len(nearCopy.Matches) == 0 {
		t.Fatalf("near-copy.txt should match original.txt, got %+v", nearCopy)
	}
	if got := filepath.Base(nearCopy.Matches[0].File); got != "original.txt" {
		t.Errorf("closest match = %s, want original.txt", got)
	}
}

func TestScanSkipsIneligibleExtensions(t *testing.T) {
	dir := t.TempDir()
	target := t.TempDir()
	writeFile(t, dir, "a.go", longText("package main\n// filler filler filler ", 1000))
	writeFile(t, dir, "b.bin", longText("binary filler data here ", 1000))
	writeFile(t, target, "c.go", longText("package main\n// more filler text ", 1000))

	s := New(Options{Workers: 2, Threshold: 1 << 30, Extensions: []string{".go"}, CacheSize: 10})
	known, err := s.hashTree(context.Background(), dir)
	if err != nil {
		t.Fatalf("hashTree failed: %v", err)
	}
	if len(known) != 1 {
		t.Fatalf("hashTree returned %d entries, want 1 (.go only)", len(known))
	}
}

func TestHashFileUsesCache(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "f.txt", longText("cache me if you can, the lazy fox sleeps. ", 1000))

	s := New(Options{Workers: 1, CacheSize: 10})
	h1, err := s.hashFile(path)
	if err != nil {
		t.Fatalf("hashFile failed: %v", err)
	}
	if s.cache.Len() != 1 {
		t.Fatalf("cache has %d entries after one hash, want 1", s.cache.Len())
	}

	h2, err := s.hashFile(path)
	if err != nil {
		t.Fatalf("second hashFile failed: %v", err)
	}
	if !h1.Equal(h2) {
		t.Fatalf("cached hash mismatch: %+v vs %+v", h1, h2)
	}
}

func TestSaveResultsWritesJSON(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "nested", "results.json")

	results := []*Result{{TargetFile: "x.txt", Hash: "T1DEADBEEF", Matches: nil}}
	if err := SaveResults(results, out); err != nil {
		t.Fatalf("SaveResults failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "T1DEADBEEF") {
		t.Errorf("output missing expected hash: %s", data)
	}
}
