package ctl

// markEU computes E[φ U ψ] as a least fixpoint by propagating backwards
// from the ψ-states along predecessor edges. A predecessor joins the result
// as soon as it satisfies φ and has one successor already in the result.
//
// seen is kept apart from the result so that a predecessor failing φ is
// examined once rather than once per marked successor. Every state is
// pushed at most once, which keeps the routine in O(|S|+|E|).
func (c *Checker[S]) markEU(phi, psi Marking[S]) Marking[S] {
	result := psi.clone()
	seen := make(map[S]struct{}, len(psi))
	work := make([]S, 0, len(psi))
	for s := range psi {
		seen[s] = struct{}{}
		work = append(work, s)
	}

	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]

		for _, p := range c.st.predecessors[s] {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			if phi.Contains(p) {
				result.add(p)
				work = append(work, p)
			}
		}
	}
	return result
}

// markAU computes A[φ U ψ] with out-degree counting. remaining[s] starts at
// the out-degree of s and is decremented once per edge from s into the
// result. A φ-state joins the result only when the counter reaches zero,
// that is when every one of its successors is already known to satisfy
// A[φ U ψ].
//
// Parallel edges appear once per copy in both adjacency lists, so the
// counter and the decrements stay in step. A state whose only successor is
// itself can never reach zero unless it is a ψ-state.
func (c *Checker[S]) markAU(phi, psi Marking[S]) Marking[S] {
	remaining := make(map[S]int, len(c.st.labels))
	for s := range c.st.labels {
		remaining[s] = len(c.st.successors[s])
	}

	result := psi.clone()
	work := make([]S, 0, len(psi))
	for s := range psi {
		work = append(work, s)
	}

	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]

		for _, p := range c.st.predecessors[s] {
			remaining[p]--
			if remaining[p] == 0 && phi.Contains(p) && !result.Contains(p) {
				result.add(p)
				work = append(work, p)
			}
		}
	}
	return result
}
