package stroke

import "math"

// roundFloat rounds to one decimal place (spec.md section 4.5),
// grounded in original_source/graftlib/round_.py's round_float.
func roundFloat(x float64) float64 {
	return math.Round(x*10) / 10
}

// roundPt rounds both components of p.
func roundPt(p Pt) Pt {
	return Pt{X: roundFloat(p.X), Y: roundFloat(p.Y)}
}

// foldChannel folds a colour/size channel into (-100, 100], per
// round_.py's _modulo_100: `((x + 100) % 200) - 100`, with the
// boundary value -100 mapped to +100 so the half-open interval stays
// on the "lands on a valid colour" side.
func foldChannel(x float64) float64 {
	ret := math.Mod(x+100.0, 200.0) - 100.0
	if ret < -100.0 {
		// math.Mod can return a negative result for a negative x;
		// Python's % never does, so we re-fold into [0, 200) first.
		ret += 200.0
	}
	ret = roundFloat(ret)
	if ret == -100.0 {
		return 100.0
	}
	return ret
}

func foldColor(c Color) Color {
	return Color{
		R: foldChannel(c.R),
		G: foldChannel(c.G),
		B: foldChannel(c.B),
		A: foldChannel(c.A),
	}
}

// Round produces the canonical (rounded, folded) form of s. Returns
// nil for a nil input (a tick that produced no stroke). s must be a
// *Line or *Dot — never an *Elided (rounding happens before elision
// is decided).
func Round(s Stroke) Stroke {
	switch v := s.(type) {
	case nil:
		return nil
	case *Line:
		return &Line{
			Start: roundPt(v.Start),
			End:   roundPt(v.End),
			Color: foldColor(v.Color),
			Size:  foldChannel(v.Size),
		}
	case *Dot:
		return &Dot{
			Pos:   roundPt(v.Pos),
			Color: foldColor(v.Color),
			Size:  foldChannel(v.Size),
		}
	default:
		panic("stroke: Round called on a non-Line/Dot stroke")
	}
}
