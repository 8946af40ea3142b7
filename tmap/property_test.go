package tmap

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/tmapkit/tmap/alloc"
	"github.com/joshuapare/tmapkit/tmap/cmpfn"
)

// TestMap_MatchesBuiltinMap inserts random keys, with many repeats, and
// checks the map against a Go map after every phase.
func TestMap_MatchesBuiltinMap(t *testing.T) {
	for _, tc := range []struct {
		name  string
		alloc func() alloc.Allocator
	}{
		{"heap", func() alloc.Allocator { return alloc.NewHeap() }},
		{"arena", func() alloc.Allocator {
			a := alloc.NewArena(alloc.DefaultArenaOptions())
			t.Cleanup(func() { _ = a.Close() })
			return a
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(1, 2))

			var replacedCalls, erasedCalls int
			opts := Options{
				Allocator: tc.alloc(),
				Destructor: func(reason DiscardReason, _, _ []byte) {
					if reason == DiscardReplaced {
						replacedCalls++
					} else {
						erasedCalls++
					}
				},
			}
			m := newIntMap(t, opts)

			want := make(map[int32]int32)
			repeats := 0
			for i := 0; i < 3000; i++ {
				k := rng.Int32N(1001) - 500
				v := rng.Int32()
				_, exists := want[k]
				replaced, err := m.Insert(i32(k), i32(v))
				require.NoError(t, err)
				require.Equal(t, exists, replaced, "key %d", k)
				if exists {
					repeats++
				}
				want[k] = v
			}

			assert.Equal(t, len(want), m.Len())
			assert.Equal(t, repeats, replacedCalls)

			keys := make([]int32, 0, len(want))
			for k := range want {
				keys = append(keys, k)
			}
			slices.Sort(keys)

			expect := make([]visit, 0, len(keys))
			for _, k := range keys {
				expect = append(expect, visit{Key: k, Val: want[k]})
			}
			got := collect(t, m, WalkForward)
			if diff := cmp.Diff(expect, got, cmpopts.IgnoreFields(visit{}, "Depth")); diff != "" {
				t.Fatalf("forward walk mismatch (-want +got):\n%s", diff)
			}

			for _, dir := range []Direction{WalkForward, WalkBackward, WalkDownward} {
				if diff := cmp.Diff(reference(m, dir), collect(t, m, dir)); diff != "" {
					t.Fatalf("%s walk mismatch (-want +got):\n%s", dir, diff)
				}
			}

			for k, v := range want {
				got, ok := m.Get(i32(k))
				require.True(t, ok)
				require.Equal(t, v, cmpfn.DecodeInt32(got))
			}
			for _, k := range []int32{-501, 501, 1 << 20} {
				assert.False(t, m.Contains(i32(k)))
			}

			require.NoError(t, m.Clear())
			assert.Equal(t, len(want), erasedCalls)
		})
	}
}

func BenchmarkInsert(b *testing.B) {
	rng := rand.New(rand.NewPCG(3, 4))
	keys := make([][]byte, 1<<14)
	for i := range keys {
		keys[i] = i32(rng.Int32())
	}
	val := i32(1)

	b.ReportAllocs()
	for b.Loop() {
		m, err := New(4, 4, cmpfn.Int32, DefaultOptions())
		if err != nil {
			b.Fatal(err)
		}
		for _, k := range keys {
			if _, err := m.Insert(k, val); err != nil {
				b.Fatal(err)
			}
		}
		_ = m.Close()
	}
}

func BenchmarkFind(b *testing.B) {
	rng := rand.New(rand.NewPCG(5, 6))
	m, err := New(4, 4, cmpfn.Int32, DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	defer m.Close()

	keys := make([][]byte, 1<<14)
	for i := range keys {
		keys[i] = i32(rng.Int32())
		if _, err := m.Insert(keys[i], keys[i]); err != nil {
			b.Fatal(err)
		}
	}

	i := 0
	for b.Loop() {
		m.Contains(keys[i&(len(keys)-1)])
		i++
	}
}

func BenchmarkWalk(b *testing.B) {
	m, err := New(4, 4, cmpfn.Int32, DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	defer m.Close()
	rng := rand.New(rand.NewPCG(7, 8))
	for range 1 << 14 {
		if _, err := m.Insert(i32(rng.Int32()), i32(0)); err != nil {
			b.Fatal(err)
		}
	}

	for b.Loop() {
		_ = m.Walk(WalkForward, func(int, []byte, []byte) error { return nil })
	}
}
