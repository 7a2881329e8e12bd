package fix_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/blockcont/pkg/fix"
)

func FuzzApplyEdits(f *testing.F) {
	f.Add("/* abc", 6, 6, "\n * ")
	f.Add("/** abc */", 7, 10, "\n * */")
	f.Add("/*\n * ", 5, 6, "/")
	f.Add("abcdef", 0, 0, "prefix")
	f.Add("abcdef", 2, 4, "")

	f.Fuzz(func(t *testing.T, content string, start, end int, newText string) {
		if start < 0 || end < start || end > len(content) {
			return
		}

		edits := []fix.TextEdit{
			{StartOffset: start, EndOffset: end, NewText: newText},
		}

		result := fix.ApplyEdits(content, edits)

		if want := len(content) + edits[0].Delta(); len(result) != want {
			t.Fatalf("result length = %d, want %d", len(result), want)
		}
		if !strings.HasPrefix(result, content[:start]) {
			t.Errorf("content before edit modified: %q", result)
		}
		if !strings.HasSuffix(result, content[end:]) {
			t.Errorf("content after edit modified: %q", result)
		}
	})
}
