package runner

import "github.com/yaklabco/blockcont/pkg/script"

// FileOutcome holds the replay results of one script file.
type FileOutcome struct {
	// Path is the script file.
	Path string

	// Results holds one result per script in the file, in file order.
	Results []*script.Result

	// Error is set if the file could not be loaded or replayed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of script files found.
	FilesDiscovered int

	// FilesErrored is the number of files that could not be replayed.
	FilesErrored int

	// ScriptsRun is the number of scripts replayed.
	ScriptsRun int

	// ScriptsPassed is the number of scripts whose expectations held.
	ScriptsPassed int

	// ScriptsFailed is the number of scripts with unmet expectations.
	ScriptsFailed int
}

// Result is the overall runner result.
type Result struct {
	// Files are ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any script failed or any file errored.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.ScriptsFailed > 0 || r.Stats.FilesErrored > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	for _, res := range outcome.Results {
		r.Stats.ScriptsRun++
		if res.Passed() {
			r.Stats.ScriptsPassed++
		} else {
			r.Stats.ScriptsFailed++
		}
	}
}
