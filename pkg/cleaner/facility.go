// pkg/cleaner/facility.go
package cleaner

import (
	"regexp"
	"strings"
)

// emailShapedPattern matches candidates that look like an address but
// whose domain lacks a dotted suffix; only these are eligible for
// facility-based inference.
var emailShapedPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+$`)

// FacilityTLDIndex maps a facility to the most frequent domain suffix
// among its validated emails. Built once in pass 1, read-only in
// pass 2; no locking is needed because the two phases never interleave.
type FacilityTLDIndex map[string]string

// suffixCount tracks how often a suffix was seen within a facility and
// the earliest record index that produced it. Carrying the index keeps
// the first-seen tie-break deterministic even when pass 1 runs on
// multiple workers.
type suffixCount struct {
	count     int
	firstSeen int
}

// facilityCounter accumulates suffix frequencies per facility.
type facilityCounter map[string]map[string]*suffixCount

func newFacilityCounter() facilityCounter {
	return make(facilityCounter)
}

// observe records the domain suffix of a validated email.
func (fc facilityCounter) observe(facilityID, email string, recordIdx int) {
	if facilityID == "" {
		return
	}

	suffix := domainSuffix(email)
	if suffix == "" {
		return
	}

	suffixes, ok := fc[facilityID]
	if !ok {
		suffixes = make(map[string]*suffixCount)
		fc[facilityID] = suffixes
	}

	if sc, ok := suffixes[suffix]; ok {
		sc.count++
		if recordIdx < sc.firstSeen {
			sc.firstSeen = recordIdx
		}
	} else {
		suffixes[suffix] = &suffixCount{count: 1, firstSeen: recordIdx}
	}
}

// merge folds another counter into this one, keeping the earliest
// first-seen index for each suffix.
func (fc facilityCounter) merge(other facilityCounter) {
	for facilityID, suffixes := range other {
		dst, ok := fc[facilityID]
		if !ok {
			fc[facilityID] = suffixes
			continue
		}
		for suffix, sc := range suffixes {
			if existing, ok := dst[suffix]; ok {
				existing.count += sc.count
				if sc.firstSeen < existing.firstSeen {
					existing.firstSeen = sc.firstSeen
				}
			} else {
				dst[suffix] = sc
			}
		}
	}
}

// buildIndex selects the highest-frequency suffix per facility. Ties go
// to the suffix first seen in record order; this is a provisional
// policy, not a confirmed contract.
func (fc facilityCounter) buildIndex() FacilityTLDIndex {
	index := make(FacilityTLDIndex, len(fc))

	for facilityID, suffixes := range fc {
		var best string
		bestCount := 0
		bestFirst := 0

		for suffix, sc := range suffixes {
			if sc.count > bestCount ||
				(sc.count == bestCount && (best == "" || sc.firstSeen < bestFirst)) {
				best = suffix
				bestCount = sc.count
				bestFirst = sc.firstSeen
			}
		}

		if best != "" {
			index[facilityID] = best
		}
	}

	return index
}

// domainSuffix returns the trailing .xyz suffix of an email's domain,
// or "" when the domain has no interior dot.
func domainSuffix(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return ""
	}

	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 {
		return ""
	}

	return domain[dot:]
}

// applyInferredTLD appends the facility's majority suffix to a
// candidate that is email-shaped but lacks a dotted suffix. Returns the
// amended candidate and whether inference applied. A facility with no
// index entry is the common "cannot infer" case, not an error.
func applyInferredTLD(candidate, facilityID string, index FacilityTLDIndex) (string, bool) {
	if !emailShapedPattern.MatchString(candidate) {
		return candidate, false
	}

	suffix, ok := index[facilityID]
	if !ok {
		return candidate, false
	}

	return candidate + suffix, true
}
