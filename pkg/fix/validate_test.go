package fix_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/blockcont/pkg/fix"
)

func TestValidateEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		edits      []fix.TextEdit
		contentLen int
		wantErr    bool
	}{
		{
			name:       "empty edits",
			edits:      nil,
			contentLen: 10,
		},
		{
			name:       "insertion at end",
			edits:      []fix.TextEdit{{StartOffset: 10, EndOffset: 10, NewText: "x"}},
			contentLen: 10,
		},
		{
			name:       "negative start",
			edits:      []fix.TextEdit{{StartOffset: -1, EndOffset: 2}},
			contentLen: 10,
			wantErr:    true,
		},
		{
			name:       "end before start",
			edits:      []fix.TextEdit{{StartOffset: 5, EndOffset: 3}},
			contentLen: 10,
			wantErr:    true,
		},
		{
			name:       "end past content",
			edits:      []fix.TextEdit{{StartOffset: 5, EndOffset: 11}},
			contentLen: 10,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fix.ValidateEdits(tt.edits, tt.contentLen)
			if !tt.wantErr {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			var validationErr *fix.ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("expected ValidationError, got %T", err)
			}
		})
	}
}

func TestDetectConflicts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		edits   []fix.TextEdit
		wantErr bool
	}{
		{
			name:  "empty",
			edits: nil,
		},
		{
			name: "adjacent",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5},
				{StartOffset: 5, EndOffset: 10},
			},
		},
		{
			name: "insertion after replacement",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5},
				{StartOffset: 5, EndOffset: 5, NewText: "x"},
			},
		},
		{
			name: "overlapping",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 7},
				{StartOffset: 5, EndOffset: 10},
			},
			wantErr: true,
		},
		{
			name: "contained",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 10},
				{StartOffset: 3, EndOffset: 7},
			},
			wantErr: true,
		},
		{
			name: "two insertions at one offset",
			edits: []fix.TextEdit{
				{StartOffset: 4, EndOffset: 4, NewText: "a"},
				{StartOffset: 4, EndOffset: 4, NewText: "b"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fix.DetectConflicts(tt.edits)
			if !tt.wantErr {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			var conflictErr *fix.ConflictError
			if !errors.As(err, &conflictErr) {
				t.Errorf("expected ConflictError, got %T", err)
			}
		})
	}
}

func TestPrepareEdits(t *testing.T) {
	t.Parallel()

	edits := []fix.TextEdit{
		{StartOffset: 8, EndOffset: 9, NewText: "b"},
		{StartOffset: 1, EndOffset: 2, NewText: "a"},
	}

	got, err := fix.PrepareEdits(edits, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].StartOffset != 1 || got[1].StartOffset != 8 {
		t.Errorf("edits not sorted: %+v", got)
	}
	if edits[0].StartOffset != 8 {
		t.Error("input slice was reordered")
	}
}
