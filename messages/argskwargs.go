package messages

// parseTrailingArgsKwargs parses the optional trailing Args/Kwargs pair
// shared by CALL, ERROR, PUBLISH, EVENT, INVOCATION, RESULT and YIELD. raw is
// the full positional sequence; argsIdx is the index Args would occupy if
// present. Kwargs may only appear when Args is also present, per the
// marshal-symmetry rule (an empty Args slice is inserted when only Kwargs was
// supplied on the way out).
func parseTrailingArgsKwargs(raw []any, argsIdx int) (args []any, kwargs map[string]any, errs []error) {
	if a := elem(raw, argsIdx); a != nil {
		parsed, err := validOptionalSlice(argsIdx, "args", a)
		if err != nil {
			errs = append(errs, err)
		} else {
			args = parsed
		}
	}
	if k := elem(raw, argsIdx+1); k != nil {
		parsed, err := validOptionalMap(argsIdx+1, "kwargs", k)
		if err != nil {
			errs = append(errs, err)
		} else {
			kwargs = parsed
		}
	}
	return args, kwargs, errs
}

// marshalTrailingArgsKwargs appends the Args/Kwargs tail to seq following the
// symmetry rule: when Kwargs is non-empty, emit Args (an empty slice if Args
// was absent) followed by Kwargs; otherwise emit Args only when it is
// non-empty, and omit both when both are empty.
func marshalTrailingArgsKwargs(seq []any, args []any, kwargs map[string]any) []any {
	if len(kwargs) > 0 {
		if args == nil {
			args = []any{}
		}
		return append(seq, args, kwargs)
	}
	if len(args) > 0 {
		return append(seq, args)
	}
	return seq
}
