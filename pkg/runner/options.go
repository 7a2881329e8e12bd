// Package runner replays keystroke script files concurrently.
package runner

import "github.com/yaklabco/blockcont/pkg/script"

// Options controls discovery and replay.
type Options struct {
	// Paths are the files or directories to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Suffixes are the file name suffixes of script files.
	// Defaults to DefaultSuffixes().
	Suffixes []string

	// ExcludeGlobs skip matching files or directories, relative to WorkingDir.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Replay configures each script replay.
	Replay script.Options
}

// DefaultSuffixes returns the default script file suffixes.
func DefaultSuffixes() []string {
	return []string{".replay.yml", ".replay.yaml"}
}

func (o Options) effectiveSuffixes() []string {
	if len(o.Suffixes) == 0 {
		return DefaultSuffixes()
	}
	return o.Suffixes
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
