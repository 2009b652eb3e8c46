package recovery

import (
	"github.com/katalvlaran/quasitile/tile"
)

// Recover returns the reconstructed tile collection for an erased index set.
//
// Penrose mode: a fresh copy with geometry untouched — the aperiodic
// matching rules force a unique completion, and it is definitionally
// whatever the generator produced.
//
// Periodic mode: a fresh copy where every tile at an erased index has its
// vertices and center translated by opts.Shift; all other entries are
// bit-identical. This presents a different but equally valid completion.
//
// The output always has the same length, order, and indexing as the input.
// A nil opts uses DefaultOptions. Returns ErrUnknownMode for an unknown
// mode and ErrIndexOutOfRange if any erased index does not address tiles.
//
// Time: O(n). Memory: O(n).
func Recover(tiles []tile.Tile, erased []int, mode Mode, opts *Options) ([]tile.Tile, error) {
	if mode != Penrose && mode != Periodic {
		return nil, ErrUnknownMode
	}
	for _, i := range erased {
		if i < 0 || i >= len(tiles) {
			return nil, ErrIndexOutOfRange
		}
	}

	out := make([]tile.Tile, len(tiles))
	copy(out, tiles)
	if mode == Penrose {
		return out, nil
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	for _, i := range erased {
		out[i] = out[i].Translate(o.Shift)
	}
	return out, nil
}
