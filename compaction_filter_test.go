package coralkv

// compaction_filter_test.go implements tests for the compaction filter contract.

import (
	"testing"
)

// TestBaseCompactionFilterKeepsEverything verifies that the embeddable base
// filter preserves every entry and every merge operand.
func TestBaseCompactionFilterKeepsEverything(t *testing.T) {
	filter := &BaseCompactionFilter{}

	decision, newValue := filter.Filter(0, []byte("key"), []byte("value"))
	if decision != FilterKeep {
		t.Errorf("Filter decision = %v, want %v", decision, FilterKeep)
	}
	if newValue != nil {
		t.Errorf("Filter newValue = %v, want nil", newValue)
	}

	if d := filter.FilterMergeOperand(0, []byte("key"), []byte("operand")); d != FilterKeep {
		t.Errorf("FilterMergeOperand = %v, want %v", d, FilterKeep)
	}

	if filter.Name() != "BaseCompactionFilter" {
		t.Errorf("Name = %q, want %q", filter.Name(), "BaseCompactionFilter")
	}
}

// TestCompactionFilterDecisionString verifies the diagnostic names of the
// decision values.
func TestCompactionFilterDecisionString(t *testing.T) {
	tests := []struct {
		decision CompactionFilterDecision
		want     string
	}{
		{FilterKeep, "Keep"},
		{FilterRemove, "Remove"},
		{FilterChange, "Change"},
		{CompactionFilterDecision(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.decision.String(); got != tc.want {
			t.Errorf("decision %d String() = %q, want %q", int(tc.decision), got, tc.want)
		}
	}
}
