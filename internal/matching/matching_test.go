package matching_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fornada/fornada/internal/matching"
)

type named struct {
	id   int
	name string
}

func nameOf(n named) string { return n.name }

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{a: "kitten", b: "sitting", want: 3},
		{a: "", b: "", want: 0},
		{a: "", b: "abc", want: 3},
		{a: "abc", b: "", want: 3},
		{a: "flaw", b: "lawn", want: 2},
		{a: "açúcar", b: "acucar", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, matching.Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, matching.Levenshtein(tt.b, tt.a))
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Run("Reflexive", func(t *testing.T) {
		for _, s := range []string{"a", "Farinha de Trigo", "Fermento Biológico", "x y z"} {
			assert.Equal(t, 1.0, matching.Similarity(s, s), s)
		}
	})

	t.Run("Symmetric", func(t *testing.T) {
		pairs := [][2]string{
			{"Farinha de Trigo", "Farinha Integral"},
			{"Açúcar Refinado", "acucar cristal"},
			{"Ovo", "Ovos Brancos"},
			{"", "Manteiga"},
		}
		for _, p := range pairs {
			assert.Equal(t, matching.Similarity(p[0], p[1]), matching.Similarity(p[1], p[0]), p)
		}
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		assert.Equal(t, 1.0, matching.Similarity("ABC", "abc"))
	})

	t.Run("NoOverlap", func(t *testing.T) {
		assert.Equal(t, 0.0, matching.Similarity("abc", "xyz"))
	})

	t.Run("EmptyStrings", func(t *testing.T) {
		assert.Equal(t, 1.0, matching.Similarity("", ""))
		assert.Equal(t, 0.0, matching.Similarity("", "Sal"))
	})

	t.Run("Range", func(t *testing.T) {
		s := matching.Similarity("Farinha de Trigo", "Farinha de Trigo Especial")
		assert.InDelta(t, 0.64, s, 1e-9)
	})
}

func TestFindBestMatch(t *testing.T) {
	type args struct {
		candidates []named
		query      string
		threshold  float64
	}

	type testCase struct {
		name           string
		args           args
		wantKind       matching.Kind
		wantBest       int
		wantCandidates []int
	}

	tests := []testCase{
		{
			name:     "EmptyCandidates",
			args:     args{candidates: nil, query: "anything", threshold: 0.6},
			wantKind: matching.KindUnresolved,
		},
		{
			name: "ClosestWins",
			args: args{
				candidates: []named{{1, "Farinha de Trigo"}, {2, "Farinha Integral"}},
				query:      "Farinha de Trigo Especial",
				threshold:  0.6,
			},
			wantKind: matching.KindResolved,
			wantBest: 1,
		},
		{
			name: "IdenticalNamesTie",
			args: args{
				candidates: []named{{1, "Leite Integral"}, {2, "Manteiga"}, {3, "Leite Integral"}},
				query:      "Leite Integral",
				threshold:  0.6,
			},
			wantKind:       matching.KindAmbiguous,
			wantCandidates: []int{1, 3},
		},
		{
			name: "BelowThreshold",
			args: args{
				candidates: []named{{1, strings.Repeat("a", 100)}},
				query:      strings.Repeat("a", 59) + strings.Repeat("b", 41),
				threshold:  0.6,
			},
			wantKind: matching.KindUnresolved,
		},
		{
			name: "ExactlyAtThreshold",
			args: args{
				candidates: []named{{1, "abcdefghij"}},
				query:      "abcdefWXYZ",
				threshold:  0.6,
			},
			wantKind: matching.KindResolved,
			wantBest: 1,
		},
		{
			name: "CaseOnlyDifference",
			args: args{
				candidates: []named{{1, "FERMENTO"}, {2, "Sal"}},
				query:      "fermento",
				threshold:  0.6,
			},
			wantKind: matching.KindResolved,
			wantBest: 1,
		},
		{
			name: "StrictlyHigherResetsTie",
			args: args{
				candidates: []named{{1, "Ovo"}, {2, "Ovo"}, {3, "Ovos"}},
				query:      "Ovos",
				threshold:  0.6,
			},
			wantKind: matching.KindResolved,
			wantBest: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matching.FindBestMatch(tt.args.candidates, nameOf, tt.args.query, tt.args.threshold)

			assert.Equal(t, tt.wantKind, got.Kind())

			best, ok := got.Resolved()
			if tt.wantKind == matching.KindResolved {
				require.True(t, ok)
				assert.Equal(t, tt.wantBest, best.id)
			} else {
				assert.False(t, ok)
			}

			var ids []int
			for _, c := range got.Candidates() {
				ids = append(ids, c.id)
			}

			assert.Equal(t, tt.wantCandidates, ids)
		})
	}
}

func TestFindBestMatch_DoesNotMutateCandidates(t *testing.T) {
	candidates := []named{{1, "Sal"}, {2, "Sal"}, {3, "Açúcar"}}
	snapshot := append([]named(nil), candidates...)

	got := matching.FindBestMatch(candidates, nameOf, "Sal", 0.6)
	require.Equal(t, matching.KindAmbiguous, got.Kind())

	assert.Equal(t, snapshot, candidates)
}

func TestFindBestMatch_Deterministic(t *testing.T) {
	candidates := []named{{1, "Creme"}, {2, "Crema"}, {3, "Creme"}, {4, "Cremo"}}

	first := matching.FindBestMatch(candidates, nameOf, "Crem", 0.6)
	for range 10 {
		assert.Equal(t, first, matching.FindBestMatch(candidates, nameOf, "Crem", 0.6))
	}
}

func TestResult_ZeroValueIsUnresolved(t *testing.T) {
	var r matching.Result[named]

	assert.Equal(t, matching.KindUnresolved, r.Kind())
	assert.Nil(t, r.Candidates())

	_, ok := r.Resolved()
	assert.False(t, ok)
}
