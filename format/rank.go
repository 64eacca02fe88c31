package format

import "github.com/vscope-cli/vscope/constant"

// TopN is the default size of the highlighted bucket.
const TopN = constant.CarouselSize

// Rank splits items into the first topN and the remainder without reordering.
// Both buckets are capped so appending to one never writes into the other.
func Rank[T any](items []T, topN int) (top, rest []T) {
	n := max(0, min(topN, len(items)))
	return items[:n:n], items[n:len(items):len(items)]
}
