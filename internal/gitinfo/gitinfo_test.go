package gitinfo

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestBranchFromHeadRef(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".git", "HEAD"), "ref: refs/heads/feature/scroll\n")
	file := filepath.Join(dir, "pkg", "main.go")
	writeFile(t, file, "package main\n")

	if got := Branch(file); got != "feature/scroll" {
		t.Fatalf("Branch = %q, want %q", got, "feature/scroll")
	}
	if got := Branch(dir); got != "feature/scroll" {
		t.Fatalf("Branch(dir) = %q, want %q", got, "feature/scroll")
	}
}

func TestBranchDetached(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".git", "HEAD"), "0123456789abcdef0123456789abcdef01234567\n")
	if got := Branch(dir); got != "detached:0123456" {
		t.Fatalf("Branch = %q, want %q", got, "detached:0123456")
	}
}

func TestBranchWorktreeFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "real-git", "HEAD"), "ref: refs/heads/main\n")
	work := filepath.Join(dir, "work")
	writeFile(t, filepath.Join(work, ".git"), "gitdir: ../real-git\n")

	if got := Branch(work); got != "main" {
		t.Fatalf("Branch = %q, want %q", got, "main")
	}
}

func TestBranchOutsideRepo(t *testing.T) {
	if got := Branch(filepath.Join(t.TempDir(), "missing.txt")); got != "" {
		t.Fatalf("Branch = %q, want empty", got)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		symbol, branch, want string
	}{
		{"git:", "main", "git:main"},
		{"", "main", "git:main"},
		{"branch", "dev", "branch dev"},
		{"git:", "", ""},
	}
	for _, tc := range cases {
		if got := Format(tc.symbol, tc.branch); got != tc.want {
			t.Fatalf("Format(%q, %q) = %q, want %q", tc.symbol, tc.branch, got, tc.want)
		}
	}
}
