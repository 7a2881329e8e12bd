package fix

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// contextLines is the number of context lines to show around changes.
const contextLines = 3

// Diff is a unified diff between original and modified content.
type Diff struct {
	// Path is the file path for the diff header.
	Path string

	// Unified is the diff body, starting with the "---" and "+++" headers.
	Unified string

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines deleted.
	Deletions int
}

// GenerateDiff creates a unified diff between original and modified content.
// Returns nil if there are no changes.
func GenerateDiff(path, original, modified string) (*Diff, error) {
	if original == modified {
		return nil, nil //nolint:nilnil // no diff for identical content
	}

	name := strings.TrimPrefix(path, "/")
	unified, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(modified),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  contextLines,
	})
	if err != nil {
		return nil, fmt.Errorf("diff %s: %w", path, err)
	}

	diff := &Diff{Path: path, Unified: unified}
	// The first two lines are the file headers.
	lines := strings.Split(unified, "\n")
	for _, line := range lines[min(2, len(lines)):] {
		switch {
		case strings.HasPrefix(line, "+"):
			diff.Additions++
		case strings.HasPrefix(line, "-"):
			diff.Deletions++
		}
	}

	return diff, nil
}

// GitHeader returns the "diff --git" header line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String returns the diff in unified diff format (without the git header).
func (d *Diff) String() string {
	if d == nil {
		return ""
	}
	return d.Unified
}

// FullString returns the complete diff including the git header.
func (d *Diff) FullString() string {
	if !d.HasChanges() {
		return ""
	}
	return d.GitHeader() + "\n" + d.Unified
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && d.Unified != ""
}
