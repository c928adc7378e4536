package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func allIntersectors() []Intersector {
	return []Intersector{
		scalarIntersector{},
		bulkCompareIntersector{lanes: 4},
		bulkCompareIntersector{lanes: 16},
		gallopingIntersector{},
		noBoundIntersector{},
	}
}

func TestIntersectorsAgreeOnFixedCases(t *testing.T) {
	cases := []struct {
		name      string
		nu, nv    []int32
		threshold int32
		want      bool
	}{
		{"empty intersection", []int32{1, 2, 3}, []int32{4, 5, 6}, 3, false},
		{"exact threshold met", []int32{1, 2, 3, 4}, []int32{2, 3, 4, 5}, 5, true},
		{"threshold not met", []int32{1, 2}, []int32{3, 4}, 3, false},
		{"below min bound always similar", []int32{}, []int32{}, 2, true},
		{"one exhausted first", []int32{1}, []int32{1, 2, 3, 4, 5}, 4, false},
		{"full overlap", []int32{1, 2, 3}, []int32{1, 2, 3}, 5, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, isect := range allIntersectors() {
				got := isect.Intersect(tc.nu, tc.nv, tc.threshold)
				require.Equal(t, tc.want, got, "%T disagreed", isect)
			}
		})
	}
}

func TestIntersectorsAgreeOnRandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	randomSortedSet := func(maxVal, count int) []int32 {
		seen := make(map[int32]struct{})
		for len(seen) < count {
			seen[int32(rng.Intn(maxVal))] = struct{}{}
		}
		out := make([]int32, 0, len(seen))
		for v := range seen {
			out = append(out, v)
		}
		for i := 1; i < len(out); i++ {
			for j := i; j > 0 && out[j-1] > out[j]; j-- {
				out[j-1], out[j] = out[j], out[j-1]
			}
		}
		return out
	}

	for trial := 0; trial < 200; trial++ {
		nu := randomSortedSet(50, 1+rng.Intn(15))
		nv := randomSortedSet(50, 1+rng.Intn(15))
		threshold := int32(2 + rng.Intn(10))

		want := scalarIntersector{}.Intersect(nu, nv, threshold)
		for _, isect := range allIntersectors() {
			got := isect.Intersect(nu, nv, threshold)
			require.Equal(t, want, got, "trial %d: %T disagreed with scalar reference", trial, isect)
		}
	}
}

func TestSelectIntersectorNeverNil(t *testing.T) {
	require.NotNil(t, SelectIntersector())
}
