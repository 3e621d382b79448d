package embed

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// fixtureTable lays out two analogy families on a 2D grid: a gender/royalty
// pair and two species/age pairs, spaced apart so queries resolve exactly.
func fixtureTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable([]Entry{
		{Word: "man", Vector: []float32{1, 0}},
		{Word: "woman", Vector: []float32{-1, 0}},
		{Word: "king", Vector: []float32{1, 1}},
		{Word: "queen", Vector: []float32{-1, 1}},
		{Word: "dog", Vector: []float32{3, 0}},
		{Word: "puppy", Vector: []float32{3, 1}},
		{Word: "cat", Vector: []float32{5, 0}},
		{Word: "kitten", Vector: []float32{5, 1}},
	})
	if err != nil {
		t.Fatalf("build fixture table: %v", err)
	}
	return table
}

func fixtureSearcher(t *testing.T) *Searcher {
	t.Helper()
	s, err := NewSearcher(fixtureTable(t), MetricEuclidean)
	if err != nil {
		t.Fatalf("build searcher: %v", err)
	}
	return s
}

func TestEveryWordIsItsOwnNearestNeighbor(t *testing.T) {
	s := fixtureSearcher(t)
	for _, word := range s.Table().Words() {
		results, err := s.Neighbors(word, 1)
		if err != nil {
			t.Fatalf("neighbors(%q): %v", word, err)
		}
		if len(results) != 1 {
			t.Fatalf("neighbors(%q): expected 1 result, got %d", word, len(results))
		}
		if results[0].Word != word {
			t.Errorf("neighbors(%q): expected itself first, got %q", word, results[0].Word)
		}
		if results[0].Distance != 0 {
			t.Errorf("neighbors(%q): expected zero distance, got %f", word, results[0].Distance)
		}
	}
}

func TestNearestToOrdersAscending(t *testing.T) {
	s := fixtureSearcher(t)
	for _, n := range []int{1, 3, 8, 100} {
		results, err := s.NearestTo([]float32{0.2, 0.7}, n)
		if err != nil {
			t.Fatalf("nearestTo(n=%d): %v", n, err)
		}
		want := n
		if size := s.Table().Len(); want > size {
			want = size
		}
		if len(results) != want {
			t.Fatalf("nearestTo(n=%d): expected %d results, got %d", n, want, len(results))
		}
		for i := 1; i < len(results); i++ {
			if results[i].Distance < results[i-1].Distance {
				t.Errorf("nearestTo(n=%d): result %d out of order: %f < %f", n, i, results[i].Distance, results[i-1].Distance)
			}
		}
	}
}

func TestNearestToZeroN(t *testing.T) {
	s := fixtureSearcher(t)
	for _, n := range []int{0, -1} {
		results, err := s.NearestTo([]float32{1, 1}, n)
		if err != nil {
			t.Fatalf("nearestTo(n=%d): %v", n, err)
		}
		if len(results) != 0 {
			t.Errorf("nearestTo(n=%d): expected empty result, got %d entries", n, len(results))
		}
	}
}

func TestNearestToDimensionMismatch(t *testing.T) {
	s := fixtureSearcher(t)
	_, err := s.NearestTo([]float32{1, 2, 3}, 5)
	var dimErr *DimensionMismatchError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected DimensionMismatchError, got %v", err)
	}
	if dimErr.Got != 3 || dimErr.Want != 2 {
		t.Errorf("expected got=3 want=2, got %+v", dimErr)
	}
}

func TestNearestToIsIdempotent(t *testing.T) {
	s := fixtureSearcher(t)
	query := []float32{2.5, 0.5}
	first, err := s.NearestTo(query, 4)
	if err != nil {
		t.Fatalf("first query: %v", err)
	}
	second, err := s.NearestTo(query, 4)
	if err != nil {
		t.Fatalf("second query: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated query diverged: %v vs %v", first, second)
	}
}

func TestNearestToStableTieBreak(t *testing.T) {
	table, err := NewTable([]Entry{
		{Word: "north", Vector: []float32{0, 1}},
		{Word: "east", Vector: []float32{1, 0}},
		{Word: "south", Vector: []float32{0, -1}},
		{Word: "west", Vector: []float32{-1, 0}},
	})
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	s, err := NewSearcher(table, MetricEuclidean)
	if err != nil {
		t.Fatalf("build searcher: %v", err)
	}

	// All four are equidistant from the origin, so ranking must keep
	// enumeration order.
	results, err := s.NearestTo([]float32{0, 0}, 4)
	if err != nil {
		t.Fatalf("nearestTo: %v", err)
	}
	want := []string{"north", "east", "south", "west"}
	for i, w := range want {
		if results[i].Word != w {
			t.Fatalf("expected tie order %v, got %v", want, results)
		}
	}
}

func TestCosineMetricRanksByAngle(t *testing.T) {
	table, err := NewTable([]Entry{
		{Word: "near", Vector: []float32{10, 0.1}},
		{Word: "far", Vector: []float32{0.5, 0.5}},
	})
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	s, err := NewSearcher(table, MetricCosine)
	if err != nil {
		t.Fatalf("build searcher: %v", err)
	}

	// "near" is farther away in Euclidean terms but almost collinear with
	// the query, so cosine distance must rank it first.
	results, err := s.NearestTo([]float32{1, 0}, 2)
	if err != nil {
		t.Fatalf("nearestTo: %v", err)
	}
	if results[0].Word != "near" {
		t.Errorf("expected near first under cosine metric, got %v", results)
	}
}

func TestNewSearcherRejectsUnknownMetric(t *testing.T) {
	if _, err := NewSearcher(fixtureTable(t), Metric("manhattan")); err == nil {
		t.Fatal("expected error for unknown metric")
	}
}

func TestEuclideanDistanceMatchesDefinition(t *testing.T) {
	got := euclideanDistance([]float32{1, 2, 3}, []float32{4, 6, 3})
	want := float32(5)
	if math.Abs(float64(got-want)) > 1e-5 {
		t.Errorf("expected distance %f, got %f", want, got)
	}
}

func TestCosineDistanceMatchesDefinition(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 1},
		{name: "identical", a: []float32{2, 3}, b: []float32{2, 3}, want: 0},
		{name: "45 degrees", a: []float32{1, 0}, b: []float32{1, 1}, want: 1 - 1/math.Sqrt2},
	}
	for _, tt := range tests {
		got := cosineDistance(tt.a, tt.b)
		if math.Abs(float64(got)-tt.want) > 1e-5 {
			t.Errorf("%s: expected distance %f, got %f", tt.name, tt.want, got)
		}
	}
}

func TestCosineDistanceZeroVector(t *testing.T) {
	if got := cosineDistance([]float32{0, 0}, []float32{1, 2}); got != 1 {
		t.Errorf("expected distance 1 for zero query, got %f", got)
	}
	if got := cosineDistance([]float32{1, 2}, []float32{0, 0}); got != 1 {
		t.Errorf("expected distance 1 for zero entry, got %f", got)
	}
}
