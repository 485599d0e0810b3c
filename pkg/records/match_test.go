package records_test

import (
	"testing"

	"github.com/yaklabco/topview/pkg/records"
)

func TestMatchTriplet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		serials []int
		want    bool
	}{
		{"forward", []int{3, 1, 2}, true},
		{"reversed", []int{2, 1, 3}, true},
		{"rotated", []int{1, 3, 2}, false},
		{"too short", []int{3, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := records.MatchTriplet(3, 1, 2, tt.serials); got != tt.want {
				t.Errorf("MatchTriplet(3,1,2, %v) = %v, want %v", tt.serials, got, tt.want)
			}
		})
	}
}

func TestMatchTripletUnordered(t *testing.T) {
	t.Parallel()

	if !records.MatchTripletUnordered(3, 1, 2, []int{1, 3, 2}) {
		t.Error("expected permuted serials to match")
	}
	if records.MatchTripletUnordered(3, 1, 2, []int{1, 1, 2}) {
		t.Error("expected multiset mismatch to fail")
	}
}

func TestMatchQuad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		serials []int
		want    bool
	}{
		{"forward", []int{3, 1, 2, 4}, true},
		{"reversed", []int{4, 2, 1, 3}, true},
		{"shuffled", []int{3, 2, 1, 4}, false},
		{"too short", []int{3, 1, 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := records.MatchQuad(3, 1, 2, 4, tt.serials); got != tt.want {
				t.Errorf("MatchQuad(3,1,2,4, %v) = %v, want %v", tt.serials, got, tt.want)
			}
		})
	}
}

func TestMatchQuadUnordered(t *testing.T) {
	t.Parallel()

	if !records.MatchQuadUnordered(3, 1, 2, 4, []int{4, 3, 2, 1}) {
		t.Error("expected permuted serials to match")
	}
	if records.MatchQuadUnordered(3, 1, 2, 4, []int{4, 3, 2, 2}) {
		t.Error("expected multiset mismatch to fail")
	}
}
