// Package grapheme converts between character offsets, measured in extended
// grapheme clusters, and byte offsets into Go strings.
package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Boundaries returns the byte offset at which each cluster starts, followed
// by len(text). The result always has Count(text)+1 entries.
func Boundaries(text string) []int {
	out := make([]int, 0, len(text)+1)
	if text != "" {
		g := uniseg.NewGraphemes(text)
		for g.Next() {
			from, _ := g.Positions()
			out = append(out, from)
		}
	}
	return append(out, len(text))
}

// ByteOffset returns the byte offset of the n-th cluster boundary.
// n is clamped to [0, Count(text)].
func ByteOffset(text string, n int) int {
	if n <= 0 || text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	idx := 0
	for g.Next() {
		if idx == n {
			from, _ := g.Positions()
			return from
		}
		idx++
	}
	return len(text)
}

// Index returns the number of clusters that lie fully before byte offset off.
func Index(text string, off int) int {
	if off <= 0 {
		return 0
	}
	if off > len(text) {
		off = len(text)
	}
	return Count(text[:off])
}

// Slice returns the grapheme-safe substring for [start, end).
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}

	g := uniseg.NewGraphemes(text)
	idx := 0
	var sb strings.Builder
	for g.Next() {
		if idx >= end {
			break
		}
		if idx >= start {
			sb.WriteString(g.Str())
		}
		idx++
	}
	return sb.String()
}
