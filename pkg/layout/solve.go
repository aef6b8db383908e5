package layout

// Solve distributes an available length among children described by
// rules, returning one allocation per child.
//
// When available covers every minimum, each child receives at least its
// minimum and the sum of allocations equals available exactly. Surplus
// beyond the minima first fills the gaps between minimum and ideal,
// proportionally to gap size; anything left after every child reaches
// its ideal is split equally among the children sharing the highest
// stretch priority present.
//
// When available is below the sum of minima, each child receives the
// floor of its proportional share available*min/summin, with the
// remaining pixels handed out one at a time left to right. Allocations
// are never negative and never exceed the child's minimum in this case.
//
// Solve is deterministic: it iterates slices in index order only, so
// repeated calls with equal inputs yield equal outputs.
func Solve(rules []SizeRules, available int) []int {
	n := len(rules)
	out := make([]int, n)
	if n == 0 {
		return out
	}
	if available < 0 {
		available = 0
	}

	sumMin := 0
	for _, r := range rules {
		sumMin += r.min
	}

	if available < sumMin {
		solveStarved(rules, available, sumMin, out)
		return out
	}

	for i, r := range rules {
		out[i] = r.min
	}
	budget := available - sumMin

	// Fill min..ideal gaps proportionally.
	sumGap := 0
	for _, r := range rules {
		sumGap += r.ideal - r.min
	}
	if sumGap > 0 {
		if budget >= sumGap {
			for i, r := range rules {
				out[i] = r.ideal
			}
			budget -= sumGap
		} else {
			distributed := 0
			for i, r := range rules {
				share := int(int64(budget) * int64(r.ideal-r.min) / int64(sumGap))
				out[i] += share
				distributed += share
			}
			// Rounding remainder: one pixel at a time, left to right,
			// to children still below their ideal.
			rest := budget - distributed
			for i, r := range rules {
				if rest == 0 {
					break
				}
				if out[i] < r.ideal {
					out[i]++
					rest--
				}
			}
			return out
		}
	}

	if budget > 0 {
		growGroup(rules, budget, out)
	}
	return out
}

// solveStarved handles available < summin: proportional shares of the
// minima, floored, remainder left to right among children with nonzero
// minima.
func solveStarved(rules []SizeRules, available, sumMin int, out []int) {
	distributed := 0
	for i, r := range rules {
		share := int(int64(available) * int64(r.min) / int64(sumMin))
		out[i] = share
		distributed += share
	}
	rest := available - distributed
	for i, r := range rules {
		if rest == 0 {
			break
		}
		if r.min > 0 && out[i] < r.min {
			out[i]++
			rest--
		}
	}
}

// growGroup hands all remaining budget to the children holding the
// highest stretch priority present, split equally with the remainder
// going left to right. When every child is StretchNone the whole set
// forms the group, so the allocation still sums to available.
func growGroup(rules []SizeRules, budget int, out []int) {
	top := StretchNone
	for _, r := range rules {
		top = max(top, r.stretch)
	}
	members := 0
	for _, r := range rules {
		if r.stretch == top {
			members++
		}
	}
	each := budget / members
	rest := budget % members
	for i, r := range rules {
		if r.stretch != top {
			continue
		}
		out[i] += each
		if rest > 0 {
			out[i]++
			rest--
		}
	}
}
