package models

import (
	"reflect"
	"testing"
)

func TestMissingFields(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected []string
	}{
		{"generate ok", GenerateRequest{Prompt: "hi"}, nil},
		{"generate empty", GenerateRequest{}, []string{"prompt"}},
		{"summarize empty", SummarizeRequest{Text: ""}, []string{"text"}},
		{"summarize whitespace is present", SummarizeRequest{Text: "   \n"}, nil},
		{"viva ok", VivaRequest{Text: "essay"}, nil},
		{"simplify empty", SimplifyRequest{}, []string{"text"}},
		{"chat ok", ChatRequest{Prompt: "hello"}, nil},
		{"grade all present", GradeRequest{Question: "q", ModelAnswer: "m", StudentAnswer: "s"}, nil},
		{"grade missing question", GradeRequest{ModelAnswer: "m", StudentAnswer: "s"}, []string{"question"}},
		{"grade missing two", GradeRequest{Question: "q"}, []string{"modelAnswer", "studentAnswer"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.task.MissingFields()
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestAllTaskKinds(t *testing.T) {
	kinds := AllTaskKinds()
	if len(kinds) != 6 {
		t.Fatalf("Expected 6 task kinds, got %d", len(kinds))
	}
	seen := map[TaskKind]bool{}
	for _, k := range kinds {
		if seen[k] {
			t.Errorf("Duplicate task kind %q", k)
		}
		seen[k] = true
	}
}
