package session_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/blockcont/internal/logging"
	"github.com/yaklabco/blockcont/pkg/continuation"
	"github.com/yaklabco/blockcont/pkg/langdata"
	"github.com/yaklabco/blockcont/pkg/session"
)

func language(t *testing.T, name string) *langdata.Language {
	t.Helper()

	lang, ok := langdata.Default().Lookup(name)
	require.True(t, ok, "language %s not registered", name)
	return lang
}

func TestEditorPress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		lang        string
		key         string
		want        string
		wantCursors []int
		wantHandled bool
		wantReason  continuation.Reason
	}{
		{
			name:        "continues doc comment",
			content:     "/** abc",
			lang:        langdata.NameTypeScript,
			key:         continuation.KeyEnter,
			want:        "/** abc\n * ",
			wantCursors: []int{11},
			wantHandled: true,
		},
		{
			name:        "enter outside comment inserts line break",
			content:     "let a = 1;",
			lang:        langdata.NameTypeScript,
			key:         continuation.KeyEnter,
			want:        "let a = 1;\n",
			wantCursors: []int{11},
			wantReason:  continuation.ReasonNotComment,
		},
		{
			name:        "enter without block comments",
			content:     "# /* abc",
			lang:        langdata.NamePython,
			key:         continuation.KeyEnter,
			want:        "# /* abc\n",
			wantCursors: []int{9},
			wantReason:  continuation.ReasonLanguage,
		},
		{
			name:        "closes bare continuation line",
			content:     "/** doc\n * ",
			lang:        langdata.NameGo,
			key:         continuation.KeySlash,
			want:        "/** doc\n */",
			wantCursors: []int{11},
			wantHandled: true,
		},
		{
			name:        "slash outside comment inserts slash",
			content:     "a ",
			lang:        langdata.NameGo,
			key:         continuation.KeySlash,
			want:        "a /",
			wantCursors: []int{3},
			wantReason:  continuation.ReasonNotComment,
		},
		{
			name:        "enter keeps CRLF",
			content:     "int x;\r\n/* abc",
			lang:        langdata.NameC,
			key:         continuation.KeyEnter,
			want:        "int x;\r\n/* abc\r\n * ",
			wantCursors: []int{19},
			wantHandled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			editor := session.New(tt.content, session.WithLanguage(language(t, tt.lang)))

			outcome, err := editor.Press(tt.key)
			require.NoError(t, err)

			assert.Equal(t, tt.wantHandled, outcome.Handled)
			assert.Equal(t, tt.wantReason, outcome.Reason)
			assert.Equal(t, tt.want, editor.Text())
			assert.Equal(t, tt.wantCursors, editor.Cursors())
			assert.NotEmpty(t, outcome.Edits)
		})
	}
}

func TestEditorTypingSequence(t *testing.T) {
	t.Parallel()

	editor := session.New("/** doc", session.WithLanguage(language(t, langdata.NameJavaScript)))

	_, err := editor.Press(continuation.KeyEnter)
	require.NoError(t, err)
	require.NoError(t, editor.Type("more"))
	_, err = editor.Press(continuation.KeyEnter)
	require.NoError(t, err)

	outcome, err := editor.Press(continuation.KeySlash)
	require.NoError(t, err)

	assert.True(t, outcome.Handled)
	assert.Equal(t, "/** doc\n * more\n */", editor.Text())
	assert.Equal(t, []int{19}, editor.Cursors())

	outcome, err = editor.Press(continuation.KeyEnter)
	require.NoError(t, err)
	assert.Equal(t, continuation.ReasonAtClose, outcome.Reason)
	assert.Equal(t, "/** doc\n * more\n */\n", editor.Text())
}

func TestEditorWithoutLanguage(t *testing.T) {
	t.Parallel()

	editor := session.New("/* abc")
	assert.Nil(t, editor.Language())

	outcome, err := editor.Press(continuation.KeyEnter)
	require.NoError(t, err)
	assert.False(t, outcome.Handled)
	assert.Equal(t, continuation.ReasonLanguage, outcome.Reason)
	assert.Equal(t, "/* abc\n", editor.Text())
}

func TestEditorMarkdown(t *testing.T) {
	t.Parallel()

	content := "Intro /* not code\n\n```go\n/* abc\n```\n"
	markdown := language(t, langdata.NameMarkdown)

	t.Run("code region", func(t *testing.T) {
		t.Parallel()

		editor := session.New(content, session.WithLanguage(markdown))
		require.NoError(t, editor.SetCursors(continuation.Cursor(31)))

		outcome, err := editor.Press(continuation.KeyEnter)
		require.NoError(t, err)
		assert.True(t, outcome.Handled)
		assert.Equal(t, "Intro /* not code\n\n```go\n/* abc\n * \n```\n", editor.Text())
		assert.Equal(t, []int{35}, editor.Cursors())
	})

	t.Run("prose", func(t *testing.T) {
		t.Parallel()

		editor := session.New(content, session.WithLanguage(markdown))
		require.NoError(t, editor.SetCursors(continuation.Cursor(17)))

		outcome, err := editor.Press(continuation.KeyEnter)
		require.NoError(t, err)
		assert.False(t, outcome.Handled)
		assert.Equal(t, continuation.ReasonLanguage, outcome.Reason)
	})
}

func TestEditorMultipleCursors(t *testing.T) {
	t.Parallel()

	editor := session.New("/* a\n/* b", session.WithLanguage(language(t, langdata.NameC)))
	require.NoError(t, editor.SetCursors(continuation.Cursor(9), continuation.Cursor(4)))

	outcome, err := editor.Press(continuation.KeyEnter)
	require.NoError(t, err)
	assert.True(t, outcome.Handled)
	assert.Equal(t, "/* a\n * \n/* b\n * ", editor.Text())
	assert.Equal(t, []int{8, 17}, editor.Cursors())

	require.NoError(t, editor.Type("x"))
	assert.Equal(t, "/* a\n * x\n/* b\n * x", editor.Text())
	assert.Equal(t, []int{9, 19}, editor.Cursors())
}

func TestEditorSelection(t *testing.T) {
	t.Parallel()

	editor := session.New("/* abc", session.WithLanguage(language(t, langdata.NameC)))
	require.NoError(t, editor.SetCursors(continuation.Range{Anchor: 3, Head: 0}))

	outcome, err := editor.Press(continuation.KeyEnter)
	require.NoError(t, err)
	assert.Equal(t, continuation.ReasonSelection, outcome.Reason)
	assert.Equal(t, "\nabc", editor.Text())
	assert.Equal(t, []int{1}, editor.Cursors())
}

func TestEditorOptions(t *testing.T) {
	t.Parallel()

	t.Run("line break override", func(t *testing.T) {
		t.Parallel()

		editor := session.New("/* abc",
			session.WithLanguage(language(t, langdata.NameC)),
			session.WithLineBreak("\r\n"))

		_, err := editor.Press(continuation.KeyEnter)
		require.NoError(t, err)
		assert.Equal(t, "/* abc\r\n * ", editor.Text())
	})

	t.Run("line indentation", func(t *testing.T) {
		t.Parallel()

		editor := session.New("/* a\n    * b",
			session.WithLanguage(language(t, langdata.NameC)),
			session.WithIndent(continuation.IndentLine))

		_, err := editor.Press(continuation.KeyEnter)
		require.NoError(t, err)
		assert.Equal(t, "/* a\n    * b\n    * ", editor.Text())
	})

	t.Run("logs fall-through reason", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		editor := session.New("x",
			session.WithLanguage(language(t, langdata.NameC)),
			session.WithLogger(logging.NewWithWriter(&buf, "debug")))

		_, err := editor.Press(continuation.KeyEnter)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "reason=not-comment")
	})
}

func TestEditorErrors(t *testing.T) {
	t.Parallel()

	editor := session.New("abc")

	_, err := editor.Press("Tab")
	require.ErrorIs(t, err, session.ErrUnknownKey)

	require.ErrorIs(t, editor.SetCursors(), session.ErrNoCursors)
	require.ErrorIs(t, editor.SetCursors(continuation.Cursor(4)), session.ErrOutOfRange)
	require.ErrorIs(t, editor.SetCursors(
		continuation.Range{Anchor: 0, Head: 2},
		continuation.Range{Anchor: 1, Head: 3},
	), session.ErrOverlappingRanges)

	require.NoError(t, editor.SetCursors(continuation.Cursor(2), continuation.Cursor(2)))
	assert.Equal(t, []int{2}, editor.Cursors())
	assert.Equal(t, []continuation.Range{continuation.Cursor(2)}, editor.Ranges())

	require.NoError(t, editor.Type(""))
	assert.Equal(t, "abc", editor.Text())
}
