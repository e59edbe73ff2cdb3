package stroke

import (
	"encoding/binary"
	"math"

	"github.com/dchest/siphash"
	"github.com/google/btree"

	"github.com/andybalaam/graft/internal/glog"
)

// hashKey is fixed (not random) so that two Optimiser instances run
// against the same program produce the same dedup decisions —
// determinism is a stated design property of the whole core
// (spec.md section 5).
var hashKey = [16]byte{0x67, 0x72, 0x61, 0x66, 0x74, 0x2d, 0x6f, 0x70, 0x74, 0x2d, 0x6b, 0x65, 0x79, 0x21, 0x21, 0x21}

// canonItem is one entry in the optimiser's ordered "already emitted"
// set: a SipHash of a canonical stroke's fields, ordered in a
// google/btree.BTree so membership, insertion and deletion are all
// O(log n) and iteration order is stable — the Go shape of the
// Python `Set[Union[Dot, Line]]` in
// original_source/graftlib/strokeoptimiser.py.
type canonItem uint64

func (c canonItem) Less(than btree.Item) bool {
	return c < than.(canonItem)
}

// key computes the SipHash-2-4 of a stroke already in canonical
// (rounded, folded) form. Hashing fixed-width float64 bit patterns
// rather than comparing structs means the dedup key doesn't depend on
// how Go would print or compare the floats.
func key(s Stroke) canonItem {
	var buf []byte
	putFloat := func(f float64) {
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], math.Float64bits(f))
		buf = append(buf, b[:]...)
	}
	putColor := func(c Color) {
		putFloat(c.R)
		putFloat(c.G)
		putFloat(c.B)
		putFloat(c.A)
	}
	switch v := s.(type) {
	case *Line:
		buf = append(buf, 'L')
		putFloat(v.Start.X)
		putFloat(v.Start.Y)
		putFloat(v.End.X)
		putFloat(v.End.Y)
		putColor(v.Color)
		putFloat(v.Size)
	case *Dot:
		buf = append(buf, 'D')
		putFloat(v.Pos.X)
		putFloat(v.Pos.Y)
		putColor(v.Color)
		putFloat(v.Size)
	default:
		panic("stroke: key called on a non-Line/Dot stroke")
	}
	return canonItem(siphash.Hash(
		binary.BigEndian.Uint64(hashKey[0:8]),
		binary.BigEndian.Uint64(hashKey[8:16]),
		buf,
	))
}

// Optimiser rounds geometry/colour and elides strokes that repeat an
// already-emitted canonical stroke, grounded in
// original_source/graftlib/strokeoptimiser.py's StrokeOptimiser.
type Optimiser struct {
	seen *btree.BTree
}

// NewOptimiser creates an Optimiser with an empty canonical set.
func NewOptimiser() *Optimiser {
	return &Optimiser{seen: btree.New(32)}
}

// Process rounds s and, if its canonical form was already emitted,
// wraps it in an Elided; otherwise records it as seen and returns it
// unwrapped. A nil stroke (no drawing this tick) passes through
// unchanged.
func (o *Optimiser) Process(s Stroke) Stroke {
	if s == nil {
		return nil
	}
	canon := Round(s)
	k := key(canon)
	if o.seen.Get(k) != nil {
		glog.Warnf("optimiser: eliding repeat of %v", canon)
		return NewElided(canon)
	}
	o.seen.ReplaceOrInsert(k)
	return canon
}

// DeleteStroke forgets that s (or, if s is an Elided, its inner
// stroke) has been drawn, so a future repeat of it is emitted again
// instead of elided. Grounded in strokeoptimiser.py's delete_stroke,
// fixed to unwrap Elided first: the Python original calls
// seen_strokes.remove(stroke) with whatever the animation's bounded
// list happened to hold, which raises KeyError when that happens to
// be an Elided (seen_strokes only ever stores canonical, non-Elided
// strokes).
func (o *Optimiser) DeleteStroke(s Stroke) {
	if e, ok := s.(*Elided); ok {
		s = e.Inner
	}
	if s == nil {
		return
	}
	if o.seen.Delete(key(s)) == nil {
		glog.Warnf("optimiser: delete_stroke called on a stroke not in the seen set: %v", s)
	}
}
