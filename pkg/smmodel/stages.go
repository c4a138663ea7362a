package smmodel

import (
	"slices"

	"github.com/samber/lo"
)

// VersionStages maps a secret version ID to the staging labels attached to it.
//
// Secrets Manager guarantees that a label is attached to at most one version
// of a secret. The map does not enforce that; Duplicates reports violations
// found in a received mapping.
type VersionStages map[string][]string

// Clone returns a deep copy of m. A nil map stays nil.
func (m VersionStages) Clone() VersionStages {
	if m == nil {
		return nil
	}

	out := make(VersionStages, len(m))
	for id, stages := range m {
		out[id] = slices.Clone(stages)
	}

	return out
}

// Add records stages for versionID, copying the slice.
// It returns ErrDuplicateKey if versionID already has an entry.
func (m *VersionStages) Add(versionID string, stages []string) error {
	if _, ok := (*m)[versionID]; ok {
		return duplicateKeyError(versionID)
	}

	if *m == nil {
		*m = make(VersionStages)
	}

	(*m)[versionID] = slices.Clone(stages)

	return nil
}

// VersionIDs returns the version IDs in ascending order.
func (m VersionStages) VersionIDs() []string {
	ids := lo.Keys(m)
	slices.Sort(ids)

	return ids
}

// VersionFor returns the version that holds label.
// If several versions hold it, the smallest version ID wins.
func (m VersionStages) VersionFor(label string) (string, bool) {
	for _, id := range m.VersionIDs() {
		if slices.Contains(m[id], label) {
			return id, true
		}
	}

	return "", false
}

// Duplicates returns every label attached to more than one version,
// mapped to the sorted IDs of the versions holding it.
func (m VersionStages) Duplicates() map[string][]string {
	holders := make(map[string][]string)

	for _, id := range m.VersionIDs() {
		for _, label := range lo.Uniq(m[id]) {
			holders[label] = append(holders[label], id)
		}
	}

	return lo.PickBy(holders, func(_ string, ids []string) bool {
		return len(ids) > 1
	})
}
