package scheduler

// FramesCounter decides when a run has produced enough output frames
// to stop, folding runs of all-nil ticks into a single synthetic
// frame rather than letting them count individually. Grounded in
// graftrun.py's FramesCounter.next_frame.
type FramesCounter struct {
	maxCount  *int
	nonFrames int
	count     int
}

// NewFramesCounter builds a counter that stops after maxCount frames,
// or never stops if maxCount is nil (graftrun.py's `n=None`).
func NewFramesCounter(maxCount *int) *FramesCounter {
	return &FramesCounter{maxCount: maxCount}
}

// NextFrame folds one tick's worth of TickEntries into the frame
// count. A tick where every fork drew nothing only counts once it
// has been preceded by ten other blank ticks in a row — this keeps
// genuinely idle stretches of a program from exhausting a frame
// budget that was meant to bound visible output. Returns
// ErrMaxFramesReached once the budget is spent.
func (f *FramesCounter) NextFrame(tick []TickEntry) error {
	isRealFrame := false
	for _, e := range tick {
		if e.Stroke != nil {
			isRealFrame = true
			break
		}
	}

	if !isRealFrame {
		f.nonFrames++
	}

	if isRealFrame || f.nonFrames > 10 {
		f.count++
		f.nonFrames = 0
	}

	if f.maxCount != nil && f.count >= *f.maxCount {
		return ErrMaxFramesReached
	}
	return nil
}
