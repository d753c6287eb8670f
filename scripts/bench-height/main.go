// bench-height compares tree heights between the balanced map and the plain
// binary search tree across growing key counts, in both shuffled and sorted
// insertion order.
//
// Usage:
//
//	go run ./scripts/bench-height --max-keys 65536 --bst-cap 16384 --seed 42
package main

import (
	"flag"
	"fmt"
	"log"
	"math/bits"
	"math/rand"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/treemap/internal/simplebst"
	"github.com/Sumatoshi-tech/treemap/pkg/treemap"
)

// minSampleKeys is the smallest sampled key count; sampling quadruples from
// here up to --max-keys.
const minSampleKeys = 16

type heightSample struct {
	keys          int
	mapRandom     int
	mapAscending  int
	bstRandom     int
	bstAscending  int
	bstSkipped    bool
	heightBound   int
	mapValidation error
}

func main() {
	maxKeys := flag.Int("max-keys", 65536, "Largest key count to sample")
	bstCap := flag.Int("bst-cap", 16384, "Skip the baseline's sorted-order run above this count (it is quadratic)")
	seed := flag.Int64("seed", 42, "Seed for the shuffled insertion order")

	flag.Parse()

	if *maxKeys < minSampleKeys {
		log.Fatalf("--max-keys must be at least %d", minSampleKeys)
	}

	var samples []heightSample

	for _, keys := range sampleSizes(*maxKeys) {
		log.Printf("sampling %s keys", humanize.Comma(int64(keys)))
		samples = append(samples, sample(keys, *bstCap, *seed))
	}

	for _, s := range samples {
		if s.mapValidation != nil {
			log.Fatalf("map invariants broken at %d keys: %v", s.keys, s.mapValidation)
		}
	}

	render(samples)
}

// sampleSizes returns the key counts to sample: minSampleKeys, quadrupling,
// up to and including maxKeys.
func sampleSizes(maxKeys int) []int {
	var sizes []int

	for keys := minSampleKeys; keys <= maxKeys; keys *= 4 {
		sizes = append(sizes, keys)
	}

	return sizes
}

// sample builds both trees at the given size in both insertion orders and
// records the resulting heights.
func sample(keys, bstCap int, seed int64) heightSample {
	rng := rand.New(rand.NewSource(seed))
	shuffled := rng.Perm(keys)

	s := heightSample{
		keys: keys,

		// A red-black tree with N nodes never exceeds 2*log2(N+1).
		heightBound: 2 * bits.Len(uint(keys+1)),
	}

	mapRandom := treemap.New[int, int]()
	for _, k := range shuffled {
		mapRandom.Insert(k, k)
	}

	s.mapRandom = mapRandom.Stats().Height
	s.mapValidation = mapRandom.Validate()

	mapAscending := treemap.New[int, int]()
	for k := range keys {
		mapAscending.Insert(k, k)
	}

	s.mapAscending = mapAscending.Stats().Height

	if err := mapAscending.Validate(); err != nil && s.mapValidation == nil {
		s.mapValidation = err
	}

	bstRandom := simplebst.New[int, int]()
	for _, k := range shuffled {
		bstRandom.Insert(k, k)
	}

	s.bstRandom = bstRandom.Height()

	if keys > bstCap {
		s.bstSkipped = true

		return s
	}

	bstAscending := simplebst.New[int, int]()
	for k := range keys {
		bstAscending.Insert(k, k)
	}

	s.bstAscending = bstAscending.Height()

	return s
}

func render(samples []heightSample) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Keys", "Map Random", "Map Ascending", "Bound", "BST Random", "BST Ascending"})

	for _, s := range samples {
		bstAscending := humanize.Comma(int64(s.bstAscending))
		if s.bstSkipped {
			bstAscending = "skipped"
		}

		t.AppendRow(table.Row{
			humanize.Comma(int64(s.keys)),
			s.mapRandom,
			s.mapAscending,
			s.heightBound,
			s.bstRandom,
			bstAscending,
		})
	}

	fmt.Println()
	t.Render()
}
