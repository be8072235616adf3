package validation

import "strings"

// MaxSeeds caps how many seed keywords a single run accepts.
const MaxSeeds = 5

// ParseSeeds splits raw textarea input into seed keywords: one per line,
// whitespace-trimmed, empty lines dropped, capped at MaxSeeds. No uniqueness
// constraint; a repeated seed is queried again.
func ParseSeeds(raw string) []string {
	var seeds []string
	for _, line := range strings.Split(raw, "\n") {
		seed := strings.TrimSpace(line)
		if seed == "" {
			continue
		}
		seeds = append(seeds, seed)
		if len(seeds) == MaxSeeds {
			break
		}
	}
	return seeds
}
