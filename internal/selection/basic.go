// Package selection implements the candidate selection strategy: given
// every candidate import for a batch of unresolved identifiers, pick
// exactly one winner per identifier using a deterministic composite rank.
package selection

import (
	"sort"
	"strings"

	"github.com/Songmu/javaimports/internal/candidates"
	"github.com/Songmu/javaimports/internal/common"
)

// Strategy picks one winning import per identifier from its candidates.
type Strategy interface {
	Select(cands candidates.Candidates, filePackage common.Selector) map[string]common.Import
}

// Basic ranks candidates by source class, then same-scope affinity, then a
// source-specific subpriority, then lexicographic fallback.
type Basic struct{}

// NewBasic creates the basic selection strategy.
func NewBasic() *Basic {
	return &Basic{}
}

// Select implements Strategy.
func (b *Basic) Select(cands candidates.Candidates, filePackage common.Selector) map[string]common.Import {
	affinity := packageAffinity(cands)

	winners := make(map[string]common.Import, len(cands))
	for identifier, list := range cands {
		if len(list) == 0 {
			continue
		}
		ranked := make([]candidates.Candidate, len(list))
		copy(ranked, list)

		sort.SliceStable(ranked, func(i, j int) bool {
			return preferred(ranked[i], ranked[j], identifier, affinity, filePackage)
		})

		winners[identifier] = ranked[0].Import
	}
	return winners
}

// packageAffinity maps a package string (the dotted prefix before a
// selector's rightmost segment) to the set of identifiers that have at
// least one candidate living in that package. It is computed once over the
// whole batch so that affinity scoring never has to consult the winners it
// is itself deciding: the vote is cast by candidates, not winners, so no
// fixed point is required.
func packageAffinity(cands candidates.Candidates) map[string]map[string]struct{} {
	byPackage := map[string]map[string]struct{}{}
	for identifier, list := range cands {
		for _, c := range list {
			pkg := packageOf(c.Import.Selector)
			if pkg == "" {
				continue
			}
			if byPackage[pkg] == nil {
				byPackage[pkg] = map[string]struct{}{}
			}
			byPackage[pkg][identifier] = struct{}{}
		}
	}
	return byPackage
}

// affinityScore counts how many OTHER identifiers in the batch also have a
// candidate sharing c's package.
func affinityScore(c candidates.Candidate, identifier string, byPackage map[string]map[string]struct{}) int {
	pkg := packageOf(c.Import.Selector)
	if pkg == "" {
		return 0
	}
	sharers := byPackage[pkg]
	score := len(sharers)
	if _, ok := sharers[identifier]; ok {
		score--
	}
	return score
}

// sourceRank ranks by source class: SIBLING > STDLIB > EXTERNAL, lower is
// better.
func sourceRank(s candidates.Source) int {
	switch s {
	case candidates.Sibling:
		return 0
	case candidates.Stdlib:
		return 1
	case candidates.External:
		return 2
	default:
		return 3
	}
}

// preferred reports whether a should sort before b (a is the more
// preferred candidate) under the composite ranking.
func preferred(a, b candidates.Candidate, identifier string, affinity map[string]map[string]struct{}, filePackage common.Selector) bool {
	if ra, rb := sourceRank(a.Source), sourceRank(b.Source); ra != rb {
		return ra < rb
	}

	if sa, sb := affinityScore(a, identifier, affinity), affinityScore(b, identifier, affinity); sa != sb {
		return sa > sb
	}

	switch a.Source {
	case candidates.Stdlib:
		if less, ok := stdlibLess(a.Import.Selector, b.Import.Selector); ok {
			return less
		}
	case candidates.External:
		pa := filePackage.CommonPrefixLen(packageSelector(a.Import.Selector))
		pb := filePackage.CommonPrefixLen(packageSelector(b.Import.Selector))
		if pa != pb {
			return pa > pb
		}
	}

	return a.Import.Selector.String() < b.Import.Selector.String()
}

// stdlibLess ranks java.util.X over any other stdlib
// A.B.X of equal length; otherwise shorter selectors win. ok is false when
// neither sub-rule distinguishes a from b, leaving the lexicographic
// fallback to decide.
func stdlibLess(a, b common.Selector) (less bool, ok bool) {
	aJavaUtil := packageOf(a) == "java.util"
	bJavaUtil := packageOf(b) == "java.util"
	if aJavaUtil != bJavaUtil {
		return aJavaUtil, true
	}
	if a.Size() != b.Size() {
		return a.Size() < b.Size(), true
	}
	return false, false
}

func packageOf(sel common.Selector) string {
	segs := sel.Segments()
	if len(segs) <= 1 {
		return ""
	}
	return strings.Join(segs[:len(segs)-1], ".")
}

func packageSelector(sel common.Selector) common.Selector {
	segs := sel.Segments()
	if len(segs) <= 1 {
		return common.NewSelector(segs...)
	}
	return common.NewSelector(segs[:len(segs)-1]...)
}
