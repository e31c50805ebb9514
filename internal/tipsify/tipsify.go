// Package tipsify implements the post-transform vertex-cache optimizer
// described by spec §4.2: a linear-time greedy fan-out walk over triangle
// adjacency, guided by a windowed approximation of a FIFO vertex cache.
package tipsify

import "github.com/gogpu/meshopt/internal/adjacency"

// cacheAdvantage is the constant k from spec §4.2's FIFO membership test:
// "a vertex is in cache iff (current_timestamp - its_timestamp) + k <
// cache_size" — Tipsify's convention for crediting the three vertices of
// the triangle just emitted.
const cacheAdvantage = 3

// Result is the outcome of a Tipsify walk.
type Result struct {
	// Order holds triangle numbers (not vertex indices) in emission order.
	Order []int32
	// Clusters holds triangle offsets at which a walk restarted without a
	// cached candidate. Nil unless collectClusters was set; otherwise it
	// always starts with 0.
	Clusters []uint32
}

// Optimize runs the greedy Tipsify walk over a triangle list expressed as
// a flat index slice, returning the emission order as triangle numbers
// (the caller expands these back into vertex indices) plus the cluster
// boundaries if collectClusters is set.
func Optimize[I ~uint16 | ~uint32](indices []I, vertexCount, cacheSize int, collectClusters bool) Result {
	triangleCount := len(indices) / 3
	adj := adjacency.Build(indices, vertexCount)

	live := make([]int32, vertexCount)
	for v := 0; v < vertexCount; v++ {
		live[v] = int32(adj.Degree(v))
	}

	timestamp := make([]int32, vertexCount)
	for v := range timestamp {
		timestamp[v] = -1
	}

	emitted := make([]bool, triangleCount)
	order := make([]int32, 0, triangleCount)
	var clusters []uint32
	if collectClusters {
		clusters = append(clusters, 0)
	}

	w := newWindow(cacheSize + cacheAdvantage + 1)
	var cacheTime int32
	cursor := 0
	firstFan := true

	emitTriangle := func(t int32) {
		order = append(order, t)
		emitted[t] = true
		base := int(t) * 3
		for c := 0; c < 3; c++ {
			v := int(indices[base+c])
			live[v]--
			timestamp[v] = cacheTime
			cacheTime++
			w.touch(int32(v))
		}
	}

	for len(order) < triangleCount {
		f := int32(-1)
		if !firstFan {
			f = selectCandidate(w, live, timestamp, cacheTime, cacheSize)
		}

		if f < 0 {
			for cursor < vertexCount && live[cursor] == 0 {
				cursor++
			}
			f = int32(cursor)
			if !firstFan && collectClusters {
				clusters = append(clusters, uint32(len(order)))
			}
		}
		firstFan = false

		for _, t := range adj.Triangles(int(f)) {
			if emitted[t] {
				continue
			}
			emitTriangle(t)
		}
	}

	return Result{Order: order, Clusters: clusters}
}

// selectCandidate returns the highest-priority not-yet-exhausted vertex
// currently within the cache window, or -1 if none qualifies. Priority is
// spec §4.2's "estimated cache position minus 2 × live-count penalty";
// ties broken by lowest vertex index.
func selectCandidate(w *window, live, timestamp []int32, cacheTime int32, cacheSize int) int32 {
	best := int32(-1)
	bestPriority := 0
	for _, v := range w.order {
		if live[v] <= 0 {
			continue
		}
		age := (cacheTime - timestamp[v]) + cacheAdvantage
		if int(age) >= cacheSize {
			continue // no longer in cache
		}
		cachePosition := int32(cacheSize) - age
		priority := int(cachePosition) - 2*int(live[v])

		if best < 0 || priority > bestPriority || (priority == bestPriority && v < best) {
			best = v
			bestPriority = priority
		}
	}
	return best
}

// window tracks the most recently touched distinct vertices, bounded to a
// size that safely covers everything the FIFO membership test could ever
// call "in cache". It plays the role of the teacher's intrusive
// doubly-linked LRU list (gogpu/gg's internal/cache.lruList) but as a
// small dedup slice: the candidate set here is bounded by cache_size, not
// by an arbitrary shard capacity, so a linear scan costs nothing.
type window struct {
	order    []int32
	present  map[int32]bool
	capacity int
}

func newWindow(capacity int) *window {
	if capacity < 1 {
		capacity = 1
	}
	return &window{present: make(map[int32]bool, capacity), capacity: capacity}
}

func (w *window) touch(v int32) {
	if w.present[v] {
		for i, id := range w.order {
			if id == v {
				w.order = append(w.order[:i], w.order[i+1:]...)
				break
			}
		}
		w.order = append(w.order, v)
		return
	}

	w.order = append(w.order, v)
	w.present[v] = true
	if len(w.order) > w.capacity {
		oldest := w.order[0]
		w.order = w.order[1:]
		delete(w.present, oldest)
	}
}
