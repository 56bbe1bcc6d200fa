package textutil

import (
	"strings"

	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// Width is the number of terminal cells s occupies.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// Truncate shortens s to at most limit cells, replacing the tail with an
// ellipsis. Grapheme clusters are never split.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= limit {
		return s
	}
	budget := limit - uniseg.StringWidth(ellipsis)
	var b strings.Builder
	used := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > budget {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	return b.String() + ellipsis
}

// TruncateLeft keeps the end of s, which is the useful part of a path.
func TruncateLeft(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= limit {
		return s
	}
	var clusters []string
	var widths []int
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		clusters = append(clusters, cluster)
		widths = append(widths, w)
	}
	budget := limit - uniseg.StringWidth(ellipsis)
	used := 0
	start := len(clusters)
	for start > 0 && used+widths[start-1] <= budget {
		start--
		used += widths[start]
	}
	return ellipsis + strings.Join(clusters[start:], "")
}
