package scoring

import "strings"

// CriteriaMismatch lists the differences between configured weights and the
// criteria the model actually scored.
type CriteriaMismatch struct {
	// Unscored are configured weight names with no matching score.
	Unscored []string
	// Unexpected are scored criteria with no matching weight.
	Unexpected []string
}

func (m CriteriaMismatch) Empty() bool {
	return len(m.Unscored) == 0 && len(m.Unexpected) == 0
}

// CheckCriteria compares criterion names after normalizeCriterion. Names are
// reported in their original spelling and order.
func CheckCriteria(result *Result, weightNames []string) CriteriaMismatch {
	var mismatch CriteriaMismatch
	if result == nil {
		mismatch.Unscored = append(mismatch.Unscored, weightNames...)
		return mismatch
	}

	configured := make(map[string]struct{}, len(weightNames))
	for _, name := range weightNames {
		configured[normalizeCriterion(name)] = struct{}{}
	}

	scored := make(map[string]struct{}, len(result.Scores))
	for _, s := range result.Scores {
		key := normalizeCriterion(s.Criterion)
		scored[key] = struct{}{}
		if _, ok := configured[key]; !ok {
			mismatch.Unexpected = append(mismatch.Unexpected, s.Criterion)
		}
	}

	for _, name := range weightNames {
		if _, ok := scored[normalizeCriterion(name)]; !ok {
			mismatch.Unscored = append(mismatch.Unscored, name)
		}
	}

	return mismatch
}

// normalizeCriterion maps "Spelling & Grammar" and "spelling_grammar" to the same key.
func normalizeCriterion(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " & ", "_")
	return strings.Join(strings.Fields(name), "_")
}
