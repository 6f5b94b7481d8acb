/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package diff

import (
	"maps"
	"slices"
)

// compareValues compares current and proposed key/value sets such as stack
// parameters or tags. Diffs are sorted by key.
func compareValues(current, proposed map[string]string) []ValueDiff {
	keys := slices.Sorted(maps.Keys(current))
	for key := range proposed {
		if _, ok := current[key]; !ok {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	var diffs []ValueDiff
	for _, key := range keys {
		currentValue, inCurrent := current[key]
		proposedValue, inProposed := proposed[key]

		switch {
		case !inCurrent:
			diffs = append(diffs, ValueDiff{Key: key, ProposedValue: proposedValue, ChangeType: ChangeTypeAdd})
		case !inProposed:
			diffs = append(diffs, ValueDiff{Key: key, CurrentValue: currentValue, ChangeType: ChangeTypeRemove})
		case currentValue != proposedValue:
			diffs = append(diffs, ValueDiff{Key: key, CurrentValue: currentValue, ProposedValue: proposedValue, ChangeType: ChangeTypeModify})
		}
	}
	return diffs
}
