package ravel

import (
	"fmt"
	"log/slog"

	"github.com/kmicklas/ravel/backend"
)

// KeyedItem pairs a stable identity with the view descriptor currently
// associated with it, the element type of a Keyed sequence.
type KeyedItem[K comparable, V any] struct {
	Key   K
	Value V
}

type keyedEntry[S any] struct {
	start, end backend.Handle
	state      S
}

// KeyedState is Keyed's retained state: the set of live entries, each
// still bracketed by its own marker pair, in current backend order.
type KeyedState[K comparable, S any] struct {
	order   []K
	entries map[K]*keyedEntry[S]
}

// Keyed reconciles a sequence of views by stable key rather than by
// position: an entry whose key survives between cycles has its content
// rebuilt in place and is moved only if its relative order actually
// changed, using a longest-increasing-subsequence pass to compute the
// minimal set of physical moves. Grounded directly on spec §4.3's
// three-step description (match by key, rebuild content, reorder with
// minimal moves) — no pack example performs keyed-list reconciliation, so
// the LIS/patience-sort technique itself is sourced from the general
// algorithm, not the corpus; see DESIGN.md.
type Keyed[K comparable, S any, V View[S]] struct {
	Items []KeyedItem[K, V]
}

func (k Keyed[K, S, V]) Build(cx Cx) *KeyedState[K, S] {
	items := dedupeKeyed(k.Items, cx.Debug)
	st := &KeyedState[K, S]{entries: make(map[K]*keyedEntry[S], len(items))}
	for _, item := range items {
		start := cx.Cursor.InsertMarker()
		state := item.Value.Build(cx)
		end := cx.Cursor.InsertMarker()
		st.entries[item.Key] = &keyedEntry[S]{start: start, end: end, state: state}
		st.order = append(st.order, item.Key)
	}
	return st
}

func (k Keyed[K, S, V]) Rebuild(s *KeyedState[K, S], cx Cx) {
	items := dedupeKeyed(k.Items, cx.Debug)

	be := cx.Cursor.Backend()
	parent := cx.Cursor.Parent()

	oldIndex := make(map[K]int, len(s.order))
	for i, key := range s.order {
		oldIndex[key] = i
	}

	newEntries := make([]*keyedEntry[S], len(items))
	newOrder := make([]K, len(items))
	remaining := make(map[K]*keyedEntry[S], len(s.entries))
	for key, e := range s.entries {
		remaining[key] = e
	}

	// Phase A: rebuild each entry's content in place, matched by key,
	// independent of final order.
	for i, item := range items {
		newOrder[i] = item.Key
		if old, ok := remaining[item.Key]; ok {
			startIdx := be.IndexOf(parent, old.start)
			assert(startIdx != -1, "ravel: keyed entry marker for key %v not found in backend", item.Key)
			inner := backend.NewCursorAt(be, parent, startIdx+1)
			item.Value.Rebuild(old.state, cx.withCursor(inner))
			newEntries[i] = old
			delete(remaining, item.Key)
			continue
		}

		// Brand-new key: stage content at the end of the parent's
		// children; Phase B moves its bracketed range into place.
		end := backend.NewCursorAtEnd(be, parent)
		start := end.InsertMarker()
		state := item.Value.Build(cx.withCursor(end))
		endMarker := end.InsertMarker()
		newEntries[i] = &keyedEntry[S]{start: start, end: endMarker, state: state}
	}

	// Entries whose key didn't survive this cycle: tear down their
	// content (Teardown operates purely on retained state, via a
	// zero-valued view of the right static type, since there's no live
	// descriptor for a removed entry) then remove their own markers.
	for _, old := range remaining {
		var zero V
		zero.Teardown(old.state, cx)
		old.start.Remove()
		old.end.Remove()
	}

	// Phase B: compute the minimal move set via LIS over old indices,
	// then emit moves right-to-left using the next correctly placed
	// entry as anchor.
	candidateOldIdx := make([]int, 0, len(newEntries))
	candidateOrigIdx := make([]int, 0, len(newEntries))
	for i, key := range newOrder {
		if oi, ok := oldIndex[key]; ok {
			candidateOldIdx = append(candidateOldIdx, oi)
			candidateOrigIdx = append(candidateOrigIdx, i)
		}
	}
	keepPositions := lisKeepPositions(candidateOldIdx)
	keep := make(map[int]bool, len(keepPositions))
	for pos := range keepPositions {
		keep[candidateOrigIdx[pos]] = true
	}

	var anchor backend.Handle
	hasAnchor := false
	for i := len(newEntries) - 1; i >= 0; i-- {
		e := newEntries[i]
		if keep[i] {
			anchor = e.start
			hasAnchor = true
			continue
		}
		be.MoveRange(e.start, e.end, anchor, hasAnchor)
		anchor = e.start
		hasAnchor = true
	}

	total := 0
	for _, e := range newEntries {
		total += be.RangeLen(e.start, e.end)
	}
	cx.Cursor.AdvanceBy(total)

	s.order = newOrder
	s.entries = make(map[K]*keyedEntry[S], len(newEntries))
	for i, e := range newEntries {
		s.entries[newOrder[i]] = e
	}
}

func (k Keyed[K, S, V]) Teardown(s *KeyedState[K, S], cx Cx) {
	var zero V
	for _, key := range s.order {
		e := s.entries[key]
		zero.Teardown(e.state, cx)
		e.start.Remove()
		e.end.Remove()
	}
}

// dedupeKeyed enforces spec §7's duplicate-key policy: with cx.Debug set,
// a duplicate key is a fatal misuse; otherwise the last occurrence wins
// and earlier ones are dropped, with a logged warning.
func dedupeKeyed[K comparable, V any](items []KeyedItem[K, V], debug bool) []KeyedItem[K, V] {
	lastIdx := make(map[K]int, len(items))
	for i, it := range items {
		if _, dup := lastIdx[it.Key]; dup && debug {
			panic(fmt.Sprintf("ravel: duplicate key %v in Keyed sequence", it.Key))
		}
		lastIdx[it.Key] = i
	}
	if len(lastIdx) == len(items) {
		return items
	}
	slog.Warn("ravel: duplicate key in Keyed sequence, keeping last occurrence",
		"total", len(items), "distinct", len(lastIdx))
	out := make([]KeyedItem[K, V], 0, len(lastIdx))
	for i, it := range items {
		if lastIdx[it.Key] == i {
			out = append(out, it)
		}
	}
	return out
}

// lisKeepPositions returns the set of positions (indices into vals) that
// form a longest strictly increasing subsequence of vals, computed by
// patience sorting in O(n log n).
func lisKeepPositions(vals []int) map[int]bool {
	tails := make([]int, 0, len(vals))
	tailPos := make([]int, 0, len(vals))
	prev := make([]int, len(vals))

	for i, v := range vals {
		prev[i] = -1
		lo, hi := 0, len(tails)
		for lo < hi {
			mid := (lo + hi) / 2
			if tails[mid] < v {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo > 0 {
			prev[i] = tailPos[lo-1]
		}
		if lo == len(tails) {
			tails = append(tails, v)
			tailPos = append(tailPos, i)
		} else {
			tails[lo] = v
			tailPos[lo] = i
		}
	}

	keep := make(map[int]bool, len(tailPos))
	if len(tailPos) == 0 {
		return keep
	}
	for p := tailPos[len(tailPos)-1]; p != -1; p = prev[p] {
		keep[p] = true
	}
	return keep
}
