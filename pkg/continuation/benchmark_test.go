package continuation_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/blockcont/pkg/continuation"
)

// largeSource ends inside an open doc comment after many closed ones.
var largeSource = strings.Repeat("/**\n * Adds two numbers.\n */\nint add(int a, int b) { return a + b; }\n", 500) +
	"/** trailing"

func BenchmarkContinueCommentLargeDocument(b *testing.B) {
	for range b.N {
		state := scanned(largeSource, len(largeSource))
		if result := continuation.ContinueComment(state); !result.Handled {
			b.Fatalf("not handled: %s", result.Reason)
		}
	}
}

func BenchmarkCloseCommentLargeDocument(b *testing.B) {
	content := largeSource + "\n * "
	for range b.N {
		state := scanned(content, len(content))
		if result := continuation.CloseComment(state); !result.Handled {
			b.Fatalf("not handled: %s", result.Reason)
		}
	}
}
