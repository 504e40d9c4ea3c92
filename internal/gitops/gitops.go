// Package gitops puts a book directory under git.
package gitops

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Available reports whether a git binary is on PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// IsRepo reports whether dir is the root of a git repository.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

func run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), strings.TrimSpace(string(out)), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Init initializes a git repository in dir unless one already exists.
func Init(ctx context.Context, dir string) error {
	if IsRepo(dir) {
		return nil
	}
	_, err := run(ctx, dir, "init", "--quiet")
	return err
}

// CommitAll stages everything in dir and commits it with the given author.
// Returns the short commit hash.
func CommitAll(ctx context.Context, dir, message, authorName, authorEmail string) (string, error) {
	if _, err := run(ctx, dir, "add", "-A"); err != nil {
		return "", err
	}

	author := fmt.Sprintf("%s <%s>", authorName, authorEmail)
	// -c keeps the commit working on machines with no global identity.
	if _, err := run(ctx, dir,
		"-c", "user.name="+authorName,
		"-c", "user.email="+authorEmail,
		"-c", "commit.gpgsign=false",
		"commit", "--quiet", "-m", message, "--author", author,
	); err != nil {
		return "", err
	}

	return run(ctx, dir, "rev-parse", "--short", "HEAD")
}
