package diff

import (
	"sort"

	"github.com/lensport/catalog-sync-v2/internal/domain"
)

// Item is one normalized batch entry entering the diff
type Item struct {
	CatalogID string
	Hash      string
	Product   *domain.CanonicalProduct
	Raw       map[string]any
}

// PersistedItem is the minimal snapshot row the differ compares against
type PersistedItem struct {
	CatalogID string
	Hash      string
}

// Counts summarizes a changeset per class
type Counts struct {
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Removed   int `json:"removed"`
	Unchanged int `json:"unchanged"`
}

// Changeset classifies every catalog id of a batch against the persisted
// snapshot. Created ∪ Updated ∪ Unchanged partitions the (deduplicated)
// batch; Removed is exactly the persisted ids absent from the batch.
type Changeset struct {
	// Items is the deduplicated batch the classification ran over
	Items []Item

	Created   []Item
	Updated   []Item
	Unchanged []string // catalog ids, sorted
	Removed   []string // catalog ids, sorted

	Counts Counts
}

// Compute classifies a freshly normalized batch against the persisted
// snapshot in one pass over each set. Duplicate catalog ids in the batch are
// resolved by DedupeLastWins before classification.
func Compute(batch []Item, persisted []PersistedItem) Changeset {
	deduped := DedupeLastWins(batch)

	persistedHashes := make(map[string]string, len(persisted))
	for _, p := range persisted {
		persistedHashes[p.CatalogID] = p.Hash
	}

	cs := Changeset{Items: deduped}
	visited := make(map[string]bool, len(deduped))

	for _, item := range deduped {
		visited[item.CatalogID] = true

		priorHash, exists := persistedHashes[item.CatalogID]
		switch {
		case !exists:
			cs.Created = append(cs.Created, item)
		case priorHash != item.Hash:
			cs.Updated = append(cs.Updated, item)
		default:
			cs.Unchanged = append(cs.Unchanged, item.CatalogID)
		}
	}

	for _, p := range persisted {
		if !visited[p.CatalogID] {
			cs.Removed = append(cs.Removed, p.CatalogID)
		}
	}

	// classification order follows the batch; id lists are sorted so output
	// is deterministic for any persisted-set iteration order
	sort.Strings(cs.Unchanged)
	sort.Strings(cs.Removed)

	cs.Counts = Counts{
		Created:   len(cs.Created),
		Updated:   len(cs.Updated),
		Removed:   len(cs.Removed),
		Unchanged: len(cs.Unchanged),
	}

	return cs
}

// DedupeLastWins collapses duplicate catalog ids, keeping the LAST occurrence
// of each. Vendor feeds contain accidental duplicates and last-write-wins is
// the declared policy, not an iteration-order accident. Relative order of the
// surviving occurrences is preserved.
func DedupeLastWins(batch []Item) []Item {
	if len(batch) < 2 {
		return batch
	}

	lastIndex := make(map[string]int, len(batch))
	for i, item := range batch {
		lastIndex[item.CatalogID] = i
	}

	if len(lastIndex) == len(batch) {
		return batch
	}

	deduped := make([]Item, 0, len(lastIndex))
	for i, item := range batch {
		if lastIndex[item.CatalogID] == i {
			deduped = append(deduped, item)
		}
	}
	return deduped
}
