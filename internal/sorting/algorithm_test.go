package sorting

import "testing"

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input   string
		want    Algorithm
		wantErr bool
	}{
		{"bubble", Bubble, false},
		{"Selection", Selection, false},
		{"  insertion ", Insertion, false},
		{"Bubble Sort", Bubble, false},
		{"insertion sort", Insertion, false},
		{"1", Bubble, false},
		{"2", Selection, false},
		{"3", Insertion, false},
		{"bub", Bubble, false},
		{"sel", Selection, false},
		{"ins", Insertion, false},
		{"", 0, true},
		{"quicksort", 0, true},
		{"zzz", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseAlgorithm(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAlgorithm(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAlgorithm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAlgorithm_Next(t *testing.T) {
	if Bubble.Next() != Selection {
		t.Errorf("Bubble.Next() = %v", Bubble.Next())
	}
	if Selection.Next() != Insertion {
		t.Errorf("Selection.Next() = %v", Selection.Next())
	}
	if Insertion.Next() != Bubble {
		t.Errorf("Insertion.Next() = %v", Insertion.Next())
	}
}

func TestAlgorithm_Strings(t *testing.T) {
	tests := []struct {
		alg   Algorithm
		name  string
		title string
	}{
		{Bubble, "bubble", "Bubble Sort"},
		{Selection, "selection", "Selection Sort"},
		{Insertion, "insertion", "Insertion Sort"},
	}

	for _, tt := range tests {
		if tt.alg.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.alg.String(), tt.name)
		}
		if tt.alg.Title() != tt.title {
			t.Errorf("Title() = %q, want %q", tt.alg.Title(), tt.title)
		}
	}

	if Algorithm(9).Valid() {
		t.Error("Algorithm(9) should not be valid")
	}
}
