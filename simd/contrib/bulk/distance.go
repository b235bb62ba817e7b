package bulk

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexxy/gromacs/simd/contrib/workerpool"
	"github.com/alexxy/gromacs/simd/simd4"
)

// ErrPairIndex is returned when a pair refers to a coordinate that does not
// exist.
var ErrPairIndex = errors.New("bulk: pair index out of range")

// pairGrain is the number of pairs a worker takes at a time.
const pairGrain = 256

// DistancesSquared sets out[i] to the squared distance between the i-th
// xyz triple of coords and ref. A nil pool runs on the calling goroutine.
func DistancesSquared(pool *workerpool.Pool, coords []float32, ref [3]float32, out []float32) {
	n := min(len(coords)/3, len(out))
	r := simd4.Load3(ref[:])
	kernel := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			d := simd4.Load3(coords[3*i:]).Sub(r)
			out[i] = simd4.DotProduct3(d, d)
		}
	}
	if pool == nil {
		kernel(0, n)
		return
	}
	pool.Blocks(n, kernel)
}

// PairDistancesSquared sets out[k] to the squared distance between the
// atoms pairs[k][0] and pairs[k][1], where atom i occupies coords[3i:3i+3].
// Pairs are processed in chunks on pool; a nil pool runs on the calling
// goroutine. The first invalid pair aborts the call with an error wrapping
// ErrPairIndex; out may then be partly written.
func PairDistancesSquared(ctx context.Context, pool *workerpool.Pool, coords []float32, pairs [][2]int32, out []float32) error {
	if len(out) < len(pairs) {
		return fmt.Errorf("bulk: output holds %d distances, need %d", len(out), len(pairs))
	}
	atoms := int32(len(coords) / 3)
	kernel := func(_ context.Context, lo, hi int) error {
		for k := lo; k < hi; k++ {
			i, j := pairs[k][0], pairs[k][1]
			if i < 0 || i >= atoms || j < 0 || j >= atoms {
				return fmt.Errorf("pair %d (%d, %d) with %d atoms: %w", k, i, j, atoms, ErrPairIndex)
			}
			d := simd4.Load3(coords[3*i:]).Sub(simd4.Load3(coords[3*j:]))
			out[k] = simd4.DotProduct3(d, d)
		}
		return nil
	}
	if pool == nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		return kernel(ctx, 0, len(pairs))
	}
	return pool.ChunksContext(ctx, len(pairs), pairGrain, kernel)
}
