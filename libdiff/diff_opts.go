package libdiff

type diffOpts struct {
	text      bool
	unchanged bool
	budget    int
}

type DiffOption func(*diffOpts)

// WithTextCompare computes inline ranges for replaced string and number
// leaves.
func WithTextCompare(v bool) DiffOption {
	return func(o *diffOpts) { o.text = v }
}

// WithUnchanged also reports matched nodes without differences as None.
func WithUnchanged(v bool) DiffOption {
	return func(o *diffOpts) { o.unchanged = v }
}

// DiffBudget bounds the sequence diffs: an array pair with more than n
// elements in total is reported as a single replace, and text compare is
// skipped for leaves with more than n runes in total. 0 means no bound.
func DiffBudget(n int) DiffOption {
	return func(o *diffOpts) { o.budget = n }
}
