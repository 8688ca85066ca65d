// Package culture defines the domain-preference model shared by every
// generator and adapter: the five cultural domains, the per-domain default
// preference text, and the fixed pairwise affinity tables.
package culture

// The five cultural domains.
const (
	DomainMusic   = "music"
	DomainFashion = "fashion"
	DomainFood    = "food"
	DomainTravel  = "travel"
	DomainBooks   = "books"
)

// Domains lists the known domains in canonical order.
var Domains = []string{DomainMusic, DomainFashion, DomainFood, DomainTravel, DomainBooks}

// defaultPreferences holds the example text substituted wherever a caller
// left a domain's preference empty.
var defaultPreferences = map[string]string{
	DomainMusic:   "indie, alternative",
	DomainFashion: "vintage, sustainable",
	DomainFood:    "plant-based, fusion",
	DomainTravel:  "eco-tourism, cultural",
	DomainBooks:   "self-help, cultural",
}

// KnownDomain reports whether name is one of the five domains.
func KnownDomain(name string) bool {
	_, ok := defaultPreferences[name]
	return ok
}

// DefaultPreference returns the documented default example text for a domain.
// Unknown domains echo back their own name, so callers never interpolate an
// empty string into generated prose.
func DefaultPreference(domain string) string {
	if pref, ok := defaultPreferences[domain]; ok {
		return pref
	}
	return domain
}

// Preference resolves a domain's preference text from prefs, falling back to
// the domain default when the value is absent or empty.
func Preference(prefs map[string]string, domain string) string {
	if prefs != nil {
		if p, ok := prefs[domain]; ok && p != "" {
			return p
		}
	}
	return DefaultPreference(domain)
}

// Contains reports whether the domain set includes domain.
func Contains(domains []string, domain string) bool {
	for _, d := range domains {
		if d == domain {
			return true
		}
	}
	return false
}

// DomainPair is an ordered source/target pair from the affinity tables.
type DomainPair struct {
	Source string
	Target string
}

// PairOrder fixes the priority ordering of the ten pairwise connections.
// Generators iterate this slice so insertion order is stable across calls.
var PairOrder = []DomainPair{
	{DomainMusic, DomainFashion},
	{DomainMusic, DomainFood},
	{DomainMusic, DomainTravel},
	{DomainMusic, DomainBooks},
	{DomainFashion, DomainFood},
	{DomainFashion, DomainTravel},
	{DomainFashion, DomainBooks},
	{DomainFood, DomainTravel},
	{DomainFood, DomainBooks},
	{DomainTravel, DomainBooks},
}

// PairAffinity holds the fixed percentage cited in qloo-style insight prose
// for each known pair.
var PairAffinity = map[DomainPair]int{
	{DomainMusic, DomainFashion}:  87,
	{DomainMusic, DomainFood}:     73,
	{DomainMusic, DomainTravel}:   68,
	{DomainMusic, DomainBooks}:    65,
	{DomainFashion, DomainFood}:   79,
	{DomainFashion, DomainTravel}: 82,
	{DomainFashion, DomainBooks}:  71,
	{DomainFood, DomainTravel}:    92,
	{DomainFood, DomainBooks}:     76,
	{DomainTravel, DomainBooks}:   69,
}

// PairsIn returns the known pairs, in priority order, whose domains are both
// present in the requested set.
func PairsIn(domains []string) []DomainPair {
	var pairs []DomainPair
	for _, p := range PairOrder {
		if Contains(domains, p.Source) && Contains(domains, p.Target) {
			pairs = append(pairs, p)
		}
	}
	return pairs
}
