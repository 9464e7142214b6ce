// compaction_filter.go defines the compaction-filter contract consumed by the
// underlying ordered key/value engine.
//
// During background compaction the engine streams every candidate key/value
// pair through a filter, which decides whether the record survives into the
// rewritten data. This is how logically-dead records (expired strings,
// zero-count container metadata, corrupted values) are physically reclaimed.
package coralkv

// CompactionFilterDecision represents the decision made by a compaction filter
// for a single key/value pair.
type CompactionFilterDecision int

const (
	// FilterKeep keeps the key-value pair unchanged.
	FilterKeep CompactionFilterDecision = iota

	// FilterRemove removes the key-value pair from the database.
	FilterRemove

	// FilterChange replaces the value of the key-value pair with the new
	// value returned alongside the decision. No filter in this module uses
	// it, but engines with RocksDB-shaped filters support it, so the
	// decision type carries it.
	FilterChange
)

// String returns a human-readable representation of the decision.
func (d CompactionFilterDecision) String() string {
	switch d {
	case FilterKeep:
		return "Keep"
	case FilterRemove:
		return "Remove"
	case FilterChange:
		return "Change"
	default:
		return "Unknown"
	}
}

// CompactionFilter is the interface the engine calls for each key/value pair
// during compaction.
//
// Implementations must be side-effect-free on storage state: a filter only
// returns a decision, it never rewrites bytes itself. The engine may
// reconsider the same logical key multiple times across compaction runs, so
// the decision must depend only on the (key, value, current time) triple and
// never on filter-instance state.
type CompactionFilter interface {
	// Name returns the name of the compaction filter.
	// The engine uses it for logging and diagnostics.
	Name() string

	// Filter is called for each key-value pair during compaction.
	//
	// Parameters:
	//   - level: the compaction output level
	//   - key: the raw engine key bytes
	//   - oldValue: the current value bytes
	//
	// Returns the decision and, if the decision is FilterChange, the
	// replacement value.
	Filter(level int, key, oldValue []byte) (decision CompactionFilterDecision, newValue []byte)

	// FilterMergeOperand is called for merge operands, allowing individual
	// operands to be filtered. Embedding BaseCompactionFilter gives the
	// default keep-everything behavior.
	FilterMergeOperand(level int, key, operand []byte) CompactionFilterDecision
}

// CompactionFilterFactory creates compaction filters. The engine creates a
// fresh filter per compaction job, so filters may keep per-job scratch state
// without synchronization. Factories must be cheap and side-effect-free to
// construct and to invoke repeatedly.
type CompactionFilterFactory interface {
	// Name returns the name of the factory.
	Name() string

	// CreateCompactionFilter creates a new compaction filter for one
	// compaction job. The context describes the compaction being run.
	CreateCompactionFilter(context CompactionFilterContext) CompactionFilter
}

// CompactionFilterContext provides context about the current compaction.
type CompactionFilterContext struct {
	// IsFull is true if this is a full compaction (all levels).
	IsFull bool

	// IsManual is true if this is a manually triggered compaction.
	IsManual bool

	// ColumnFamilyID is the ID of the column family being compacted.
	ColumnFamilyID uint32
}

// BaseCompactionFilter provides a keep-everything implementation of
// CompactionFilter that can be embedded in custom filters.
type BaseCompactionFilter struct{}

// Name returns "BaseCompactionFilter".
func (b *BaseCompactionFilter) Name() string {
	return "BaseCompactionFilter"
}

// Filter default implementation keeps all entries.
func (b *BaseCompactionFilter) Filter(level int, key, oldValue []byte) (CompactionFilterDecision, []byte) {
	return FilterKeep, nil
}

// FilterMergeOperand default implementation keeps all operands.
func (b *BaseCompactionFilter) FilterMergeOperand(level int, key, operand []byte) CompactionFilterDecision {
	return FilterKeep
}
