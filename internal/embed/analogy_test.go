package embed

import (
	"errors"
	"testing"
)

func TestAnalogyFiltersGivenWords(t *testing.T) {
	s := fixtureSearcher(t)

	// The table holds 8 words, so n=5 must survive filtering exactly.
	results, err := s.Analogy("dog", "puppy", "cat", 5, true)
	if err != nil {
		t.Fatalf("analogy: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Word == "dog" || r.Word == "puppy" || r.Word == "cat" {
			t.Errorf("input word %q leaked into results", r.Word)
		}
	}
}

func TestAnalogySymmetry(t *testing.T) {
	s := fixtureSearcher(t)

	tests := []struct {
		w1, w2, w3 string
		want       string
	}{
		{"dog", "puppy", "cat", "kitten"},
		{"cat", "kitten", "dog", "puppy"},
	}
	for _, tc := range tests {
		results, err := s.Analogy(tc.w1, tc.w2, tc.w3, 5, true)
		if err != nil {
			t.Fatalf("analogy(%s,%s,%s): %v", tc.w1, tc.w2, tc.w3, err)
		}
		if len(results) == 0 || results[0].Word != tc.want {
			t.Errorf("analogy(%s,%s,%s): expected %q at rank 1, got %v", tc.w1, tc.w2, tc.w3, tc.want, results)
		}
	}
}

func TestAnalogyKingManWoman(t *testing.T) {
	s := fixtureSearcher(t)

	// king - man + woman lands on queen exactly in the fixture geometry.
	results, err := s.Analogy("man", "king", "woman", 1, false)
	if err != nil {
		t.Fatalf("analogy: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Word != "queen" {
		t.Fatalf("expected queen, got %q", results[0].Word)
	}
	if results[0].Distance > 1e-5 {
		t.Errorf("expected near-zero distance, got %f", results[0].Distance)
	}
}

func TestAnalogyUnfilteredKeepsGivenWords(t *testing.T) {
	s := fixtureSearcher(t)

	// Without filtering, kitten resolves exactly and cat sits one unit away,
	// so an input word appears in the top results.
	results, err := s.Analogy("dog", "puppy", "cat", 2, false)
	if err != nil {
		t.Fatalf("analogy: %v", err)
	}
	if len(results) != 2 || results[0].Word != "kitten" || results[1].Word != "cat" {
		t.Fatalf("expected [kitten cat], got %v", results)
	}
}

func TestAnalogyUnknownWord(t *testing.T) {
	s := fixtureSearcher(t)
	for _, args := range [][3]string{
		{"doesnotexist", "puppy", "cat"},
		{"dog", "doesnotexist", "cat"},
		{"dog", "puppy", "doesnotexist"},
	} {
		_, err := s.Analogy(args[0], args[1], args[2], 3, true)
		var unknownErr *UnknownWordError
		if !errors.As(err, &unknownErr) {
			t.Fatalf("analogy(%v): expected UnknownWordError, got %v", args, err)
		}
		if unknownErr.Word != "doesnotexist" {
			t.Errorf("analogy(%v): expected offending word in error, got %q", args, unknownErr.Word)
		}
	}
}

func TestAnalogyZeroN(t *testing.T) {
	s := fixtureSearcher(t)
	results, err := s.Analogy("dog", "puppy", "cat", 0, true)
	if err != nil {
		t.Fatalf("analogy: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty result for n=0, got %v", results)
	}
}

func TestAnalogyIsIdempotent(t *testing.T) {
	s := fixtureSearcher(t)
	first, err := s.Analogy("man", "king", "woman", 3, true)
	if err != nil {
		t.Fatalf("first analogy: %v", err)
	}
	second, err := s.Analogy("man", "king", "woman", 3, true)
	if err != nil {
		t.Fatalf("second analogy: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("repeated analogy diverged: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeated analogy diverged at %d: %v vs %v", i, first[i], second[i])
		}
	}
}
