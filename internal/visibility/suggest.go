package visibility

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"anatomy-engine/internal/anatomy"
)

// suggestThreshold is the minimum Jaro-Winkler similarity for a
// display name to count as a plausible intended match.
const suggestThreshold = 0.78

// Suggest returns up to limit display names closest to a query that
// matched nothing, for "did you mean" UI. Empty when the query is too
// short or nothing is plausibly close. Ties break alphabetically so
// the suggestion list is stable.
func Suggest(reg *anatomy.Registry, query string, limit int) []string {
	if len(query) < MinQueryLen || limit <= 0 {
		return nil
	}
	q := strings.ToLower(query)
	jw := metrics.NewJaroWinkler()

	type scored struct {
		name  string
		score float64
	}
	var candidates []scored
	for _, meta := range reg.Structures {
		name := strings.ToLower(meta.DisplayName)
		score := strutil.Similarity(q, name, jw)
		if s := strutil.Similarity(q, strings.ToLower(meta.Key), jw); s > score {
			score = s
		}
		if score >= suggestThreshold {
			candidates = append(candidates, scored{name: meta.DisplayName, score: score})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].name < candidates[j].name
	})

	seen := make(map[string]bool)
	var out []string
	for _, c := range candidates {
		if seen[c.name] {
			continue
		}
		seen[c.name] = true
		out = append(out, c.name)
		if len(out) == limit {
			break
		}
	}
	return out
}
