package corequisite

import "github.com/alexanderramin/pathway/internal/domain"

// Bundle unlocks Target once every antecedent is completed or eligible.
type Bundle struct {
	Antecedents []string
	Target      string
}

// Options controls how many scans the combiner makes over the bundle table.
// The zero value is a single pass.
type Options struct {
	// Passes is the number of scans; values below 1 mean one.
	Passes int
	// FixedPoint keeps scanning until a pass fires nothing new. It
	// overrides Passes.
	FixedPoint bool
}

// Result is the expanded eligible set and the bundles that fired, in
// table order.
type Result struct {
	Eligible     domain.CourseSet
	Combinations []domain.CoRequisiteCombination
}

// Combine expands eligible with the targets of satisfied bundles. Each pass
// tests bundles against the set as it stood when the pass began, so a
// bundle whose antecedent is another bundle's target needs a further pass.
// Targets already completed are never added.
func Combine(bundles []Bundle, completed, eligible domain.CourseSet, opts Options) Result {
	out := eligible.Difference(completed)
	var combos []domain.CoRequisiteCombination
	fired := make(map[int]bool)

	passes := opts.Passes
	if passes < 1 {
		passes = 1
	}

	for pass := 0; opts.FixedPoint || pass < passes; pass++ {
		reachable := completed.Union(out)
		added := false
		for i, b := range bundles {
			if fired[i] || b.Target == "" {
				continue
			}
			if !reachable.ContainsAll(b.Antecedents) {
				continue
			}
			fired[i] = true
			combos = append(combos, combination(b))
			if completed.Contains(b.Target) || out.Contains(b.Target) {
				continue
			}
			out.Add(b.Target)
			added = true
		}
		if !added {
			break
		}
	}

	return Result{Eligible: out, Combinations: combos}
}

func combination(b Bundle) domain.CoRequisiteCombination {
	c := make(domain.CoRequisiteCombination, 0, len(b.Antecedents)+1)
	c = append(c, b.Antecedents...)
	return append(c, b.Target)
}
