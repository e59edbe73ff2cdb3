package eval

import "github.com/andybalaam/graft/value"

// cellIf is cell's `If(cond, thenFn, elseFn)`, grounded in
// cellfunctions.py's `if_`.
func cellIf(penv *value.ProgramEnv, args []value.Value) (value.Value, error) {
	if len(args) != 3 {
		return nil, newErrf(Arity, "If takes 3 arguments, got %d", len(args))
	}
	if value.Truthy(args[0]) {
		return CallCell(penv, args[1], nil)
	}
	return CallCell(penv, args[2], nil)
}

// cellTimes is cell's `T(reps, fn)`: call fn reps times, discarding
// all but the last result. Grounded in cellfunctions.py's `times`.
func cellTimes(penv *value.ProgramEnv, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, newErrf(Arity, "T takes 2 arguments, got %d", len(args))
	}
	reps, ok := args[0].(value.Number)
	if !ok {
		return nil, newErrf(TypeMismatch, "T's first argument must be a number, got %T", args[0])
	}
	var result value.Value = value.None{}
	for i := 0; i < int(reps); i++ {
		v, err := CallCell(penv, args[1], nil)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// cellFor is cell's `For(source, fn)`: source is either an array
// (fn is called once per element) or a zero-argument function that is
// called repeatedly until it returns `endofloop` (fn is called once per
// value it returns before that). Either way fn's per-call results are
// collected into an Array. Grounded in
// cellfunctions.py's `for_`/`until_endofloop`.
func cellFor(penv *value.ProgramEnv, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, newErrf(Arity, "For takes 2 arguments, got %d", len(args))
	}
	fn := args[1]
	switch src := args[0].(type) {
	case *value.Array:
		results := make([]value.Value, 0, len(src.Elems))
		for _, item := range src.Elems {
			v, err := CallCell(penv, fn, []value.Value{item})
			if err != nil {
				return nil, err
			}
			results = append(results, v)
		}
		return &value.Array{Elems: results}, nil
	case *value.NativeFunction, *value.UserFunction:
		var results []value.Value
		for {
			v, err := CallCell(penv, src, nil)
			if err != nil {
				return nil, err
			}
			if _, done := v.(value.EndOfLoop); done {
				break
			}
			r, err := CallCell(penv, fn, []value.Value{v})
			if err != nil {
				return nil, err
			}
			results = append(results, r)
		}
		return &value.Array{Elems: results}, nil
	default:
		return nil, newErrf(TypeMismatch, "For's first argument must be an array or a function, got %T", args[0])
	}
}

// cellGet is cell's `Get(array, index)`, wrapping the index modulo
// the array's length (grafting an infinite sequence onto a finite
// array, cellfunctions.py's `get`).
func cellGet(penv *value.ProgramEnv, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, newErrf(Arity, "Get takes 2 arguments, got %d", len(args))
	}
	arr, ok := args[0].(*value.Array)
	if !ok {
		return nil, newErrf(TypeMismatch, "Get's first argument must be an array, got %T", args[0])
	}
	idx, ok := args[1].(value.Number)
	if !ok {
		return nil, newErrf(TypeMismatch, "Get's second argument must be a number, got %T", args[1])
	}
	if len(arr.Elems) == 0 {
		return nil, newErr(TypeMismatch, "Get called on an empty array")
	}
	i := int(idx) % len(arr.Elems)
	if i < 0 {
		i += len(arr.Elems)
	}
	return arr.Elems[i], nil
}

// cellAdd is cell's `Add(array, item)`: appends item in place and
// returns the same array. Grounded in cellfunctions.py's `add`.
func cellAdd(penv *value.ProgramEnv, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, newErrf(Arity, "Add takes 2 arguments, got %d", len(args))
	}
	arr, ok := args[0].(*value.Array)
	if !ok {
		return nil, newErrf(TypeMismatch, "Add's first argument must be an array, got %T", args[0])
	}
	arr.Elems = append(arr.Elems, args[1])
	return arr, nil
}

// cellLen is cell's `Len(array)`.
func cellLen(penv *value.ProgramEnv, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, newErrf(Arity, "Len takes 1 argument, got %d", len(args))
	}
	arr, ok := args[0].(*value.Array)
	if !ok {
		return nil, newErrf(TypeMismatch, "Len's argument must be an array, got %T", args[0])
	}
	return value.Number(len(arr.Elems)), nil
}
