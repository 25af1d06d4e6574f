package content

// EnsureVariability reports whether every variant in the batch has a distinct
// title and a distinct body. Comparison is exact string equality; near
// duplicates are considered distinct.
func EnsureVariability(variants []Variant) bool {
	titles := make(map[string]struct{}, len(variants))
	bodies := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		titles[v.Title] = struct{}{}
		bodies[v.Body] = struct{}{}
	}
	return len(titles) == len(variants) && len(bodies) == len(variants)
}
