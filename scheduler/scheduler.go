package scheduler

import (
	"errors"

	memdb "github.com/hashicorp/go-memdb"

	"github.com/andybalaam/graft/ast"
	"github.com/andybalaam/graft/eval"
	"github.com/andybalaam/graft/internal/glog"
	"github.com/andybalaam/graft/rng"
	"github.com/andybalaam/graft/stroke"
	"github.com/andybalaam/graft/value"
)

// V1Statement and CellStatement adapt the two dialect evaluators to
// StatementFn.
func V1Statement(penv *value.ProgramEnv, node ast.Node) error {
	return eval.EvalV1Statement(penv, node)
}

func CellStatement(penv *value.ProgramEnv, node ast.Node) error {
	_, err := eval.EvalCellStatement(penv, node)
	return err
}

// slot pairs a RunningProgram with the queue of not-yet-emitted
// commands it owes the scheduler — graftrun.py's `(prog, queue)` pair.
// A queue entry of nil stands in for Python's `None` placeholder: a
// tick in which that program drew nothing.
type slot struct {
	id    int
	rp    *RunningProgram
	queue []stroke.Stroke
}

// slotRecord is what actually lives in the go-memdb active-fork table:
// go-memdb indexes and stores the record by value, so the live *slot it
// points at is what callers mutate tick to tick.
type slotRecord struct {
	ID    int
	Order int
	Slot  *slot
}

var forkSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		"fork": {
			Name: "fork",
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.IntFieldIndex{Field: "ID"},
				},
				"order": {
					Name:    "order",
					Unique:  true,
					Indexer: &memdb.IntFieldIndex{Field: "Order"},
				},
			},
		},
	},
}

// Scheduler is graftrun.py's MultipleRunningPrograms: it keeps every
// active fork's program counter advancing in lockstep, admits staged
// forks at the end of each tick, and evicts the oldest fork once
// MaxForks is exceeded. The active-fork table is a go-memdb database
// (a teacher dependency with no other home in this codebase) indexed
// by fork id and by admission order, replacing the original's
// list-of-tuples-plus-slice-eviction.
type Scheduler struct {
	db            *memdb.MemDB
	maxForks      int
	orderCounter  int
	forkIDCounter int
	pendingInsert []*slotRecord
}

// ErrMaxFramesReached is returned by FramesCounter.NextFrame once the
// requested number of frames has been produced, graftrun.py's
// `StopIteration`.
var ErrMaxFramesReached = errors.New("scheduler: reached max frame count")

// TickEntry is one fork's contribution to a single tick: the stroke it
// drew (nil if it drew nothing this tick) plus its ProgramEnv, so
// callers (the optimiser, the animator) can read its current turtle
// state. Grounded in graftrun.py's `(stroke, env)` pairs.
type TickEntry struct {
	ForkID int
	Stroke stroke.Stroke
	Penv   *value.ProgramEnv
}

// NewScheduler builds a scheduler running program against rootEnv
// using statementFn, with fork id 0 for the initial (un-forked)
// program. Grounded in graftrun.py's `MultipleRunningPrograms.__init__`.
func NewScheduler(program []ast.Node, rootEnv *value.Env, r rng.Source, maxForks int, statementFn StatementFn) *Scheduler {
	db, err := memdb.NewMemDB(forkSchema)
	if err != nil {
		// forkSchema is a package-level literal validated at init time
		// in every unit test that constructs a Scheduler; a schema
		// error here means the schema itself is broken, not bad input.
		panic(err)
	}
	s := &Scheduler{db: db, maxForks: maxForks}

	penv := value.NewProgramEnv(rootEnv, r, nil)
	root := &slot{id: 0, rp: &RunningProgram{Program: program, Penv: penv, Eval: statementFn}}
	penv.Fork = s.forkFuncFor(root)

	s.insert(&slotRecord{ID: 0, Order: s.nextOrder(), Slot: root})
	return s
}

func (s *Scheduler) nextOrder() int {
	s.orderCounter++
	return s.orderCounter
}

func (s *Scheduler) nextForkID() int {
	s.forkIDCounter++
	return s.forkIDCounter
}

func (s *Scheduler) insert(rec *slotRecord) {
	txn := s.db.Txn(true)
	if err := txn.Insert("fork", rec); err != nil {
		panic(err)
	}
	txn.Commit()
}

func (s *Scheduler) deleteRecord(rec *slotRecord) {
	txn := s.db.Txn(true)
	if err := txn.Delete("fork", rec); err != nil {
		panic(err)
	}
	txn.Commit()
}

// activeInOrder returns every active slotRecord, oldest admission
// first (the "order" index's IntFieldIndex orders ascending).
func (s *Scheduler) activeInOrder() []*slotRecord {
	txn := s.db.Txn(false)
	it, err := txn.Get("fork", "order")
	if err != nil {
		panic(err)
	}
	var recs []*slotRecord
	for raw := it.Next(); raw != nil; raw = it.Next() {
		recs = append(recs, raw.(*slotRecord))
	}
	return recs
}

// forkFuncFor returns the ForkFunc bound to sl: calling it clones sl's
// RunningProgram (a fresh Env, a fresh stroke buffer, PC/Label
// preserved), assigns the clone the next fork id, and stages it for
// admission at the end of the current tick. Grounded in
// graftrun.py's `RunningProgram.fork`/`MultipleRunningPrograms.fork`
// and functions.py's `set_fork_id`.
func (s *Scheduler) forkFuncFor(sl *slot) value.ForkFunc {
	return func() (value.Value, error) {
		id := s.nextForkID()
		clonePenv := sl.rp.Penv.Clone(nil)
		clonePenv.Env.Set("f", value.Number(id)) // set_fork_id: a plain Env.Set, not the x/y-style magic Set
		clone := &slot{
			id: id,
			rp: &RunningProgram{
				Program: sl.rp.Program,
				Penv:    clonePenv,
				Eval:    sl.rp.Eval,
				PC:      sl.rp.PC,
				Label:   sl.rp.Label,
			},
		}
		clonePenv.Fork = s.forkFuncFor(clone)
		s.pendingInsert = append(s.pendingInsert, &slotRecord{ID: id, Order: s.nextOrder(), Slot: clone})
		glog.Debugf("scheduler: forked id=%d", id)
		// A fork call draws no stroke of its own; the caller's tick for
		// this statement stays empty, the same as the original's SKIPPED
		// sentinel collapsing to a single None per tick.
		return value.None{}, nil
	}
}

// Next advances every active fork by one queued command and returns
// one TickEntry per fork, then admits any forks staged this tick and
// evicts the oldest forks past MaxForks. Grounded in
// graftrun.py's `MultipleRunningPrograms.next`.
func (s *Scheduler) Next() ([]TickEntry, error) {
	recs := s.activeInOrder()

	for _, rec := range recs {
		sl := rec.Slot
		if len(sl.queue) == 0 {
			strokes, err := sl.rp.Next()
			if err != nil {
				return nil, err
			}
			if len(strokes) == 0 {
				sl.queue = append(sl.queue, nil)
			} else {
				sl.queue = append(sl.queue, strokes...)
			}
		}
	}

	ret := make([]TickEntry, len(recs))
	for i, rec := range recs {
		sl := rec.Slot
		cmd := sl.queue[0]
		sl.queue = sl.queue[1:]
		ret[i] = TickEntry{ForkID: rec.ID, Stroke: cmd, Penv: sl.rp.Penv}
	}

	for _, rec := range s.pendingInsert {
		s.insert(rec)
	}
	s.pendingInsert = nil

	s.evictToMaxForks()

	return ret, nil
}

// evictToMaxForks drops the oldest admitted forks once the active
// count exceeds MaxForks, mirroring graftrun.py's
// `self.programs[len(self.programs) - self.max_forks:]` slice.
func (s *Scheduler) evictToMaxForks() {
	if s.maxForks <= 0 {
		return
	}
	recs := s.activeInOrder()
	over := len(recs) - s.maxForks
	for i := 0; i < over; i++ {
		glog.Warnf("scheduler: evicting fork id=%d, over max_forks=%d", recs[i].ID, s.maxForks)
		s.deleteRecord(recs[i])
	}
}
