package utilities

// Map applies fn to every element. The result is never nil, so an empty input still
// encodes as a JSON array.
func Map[In any, Out any](items []In, fn func(In) Out) []Out {
	out := make([]Out, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
