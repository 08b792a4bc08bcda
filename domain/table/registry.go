package table

// Column pairs a normalized key with the display label from its first
// encounter.
type Column struct {
	Key   string
	Label string
}

// Registry counts, per normalized header key, the number of sheets in which
// the key appears at least once. Keys keep first-encounter order and remember
// the label they first appeared under. Built during phase one of a
// consolidation run, read-only afterwards.
type Registry struct {
	order  []string
	labels map[string]string
	counts map[string]int
}

func NewRegistry() *Registry {
	return &Registry{
		labels: make(map[string]string),
		counts: make(map[string]int),
	}
}

// Observe folds one sheet's header into the registry. A key occurring several
// times in the same header still counts once for that sheet.
func (r *Registry) Observe(t *Table) {
	seen := make(map[string]bool, len(t.Header))
	for _, label := range t.Header {
		key := Normalize(label)
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, known := r.counts[key]; !known {
			r.order = append(r.order, key)
			r.labels[key] = label
		}
		r.counts[key]++
	}
}

// Count reports how many sheets contained key.
func (r *Registry) Count(key string) int {
	return r.counts[key]
}

// Len reports the number of distinct keys observed.
func (r *Registry) Len() int {
	return len(r.order)
}

// Retained resolves the policy against the completed registry: every key for
// union, keys seen in two or more sheets for common. Order is first-encounter
// order in both cases. Resolved once per run; the result stays fixed for the
// whole merge phase.
func (r *Registry) Retained(p Policy) []Column {
	cols := make([]Column, 0, len(r.order))
	for _, key := range r.order {
		if p == PolicyCommon && r.counts[key] < 2 {
			continue
		}
		cols = append(cols, Column{Key: key, Label: r.labels[key]})
	}
	return cols
}
