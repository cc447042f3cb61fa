package graph_test

import (
	"strings"
	"testing"

	"github.com/voxkit/voxdoc/internal/presentation/graph"
	"github.com/voxkit/voxdoc/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name      string
		edges     []domain.Edge
		accepting []domain.StateID
		contains  []string
	}{
		{
			name:      "state shapes",
			edges:     []domain.Edge{{From: 0, To: 1}, {From: 1, To: 2}},
			accepting: []domain.StateID{2},
			contains: []string{
				`s0(("0"))`,
				`s1["1"]`,
				`s2((("2")))`,
			},
		},
		{
			name:      "labeled edge",
			edges:     []domain.Edge{{From: 0, To: 1, Label: "open {file_type}"}},
			accepting: []domain.StateID{1},
			contains: []string{
				`s0 -- "open {file_type}" --> s1`,
			},
		},
		{
			name:      "label escaping",
			edges:     []domain.Edge{{From: 0, To: 1, Label: `say "hi"`}},
			accepting: []domain.StateID{1},
			contains: []string{
				`s0 -- "say 'hi'" --> s1`,
			},
		},
		{
			name:      "unlabeled edge",
			edges:     []domain.Edge{{From: 0, To: 1}},
			accepting: []domain.StateID{1},
			contains: []string{
				"s0 --> s1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := domain.NewAutomaton("t.gv", tt.edges, tt.accepting)
			got := graph.GenerateMermaid(a)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
		})
	}
}
