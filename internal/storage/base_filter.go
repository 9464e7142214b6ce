package storage

import (
	"github.com/coralkv/coralkv"
	"github.com/coralkv/coralkv/internal/keyformat"
	"github.com/coralkv/coralkv/internal/logging"
)

// BaseMetaFilter decides, for each candidate key/value pair streamed through
// background compaction, whether the record survives into the rewritten
// data. It dispatches on the leading type byte to the matching record
// parser and applies the same liveness predicate as the read path: strings
// survive until stale, container metadata survives while valid (not stale
// and non-empty).
//
// Parse failures, empty values, and unrecognized type bytes all decide
// Remove: reclaiming ambiguous or corrupted data is preferred over retaining
// it indefinitely. Removals are logged at Debug.
//
// The filter holds no per-key state; a decision depends only on the
// (key, value, current time) triple, so compaction may safely reconsider the
// same logical key across runs.
type BaseMetaFilter struct {
	coralkv.BaseCompactionFilter
	logger logging.Logger
}

var _ coralkv.CompactionFilter = (*BaseMetaFilter)(nil)

// NewBaseMetaFilter creates a filter logging its decisions to logger.
// A nil logger discards the diagnostics.
func NewBaseMetaFilter(logger logging.Logger) *BaseMetaFilter {
	if logging.IsNil(logger) {
		logger = logging.Discard
	}
	return &BaseMetaFilter{logger: logger}
}

// Name returns the filter name used by the engine's diagnostics.
func (f *BaseMetaFilter) Name() string {
	return "BaseMetaFilter"
}

// Filter returns the keep/remove decision for one key/value pair. The key is
// the raw engine key; it is parsed only to name the user key in diagnostics.
func (f *BaseMetaFilter) Filter(level int, key, oldValue []byte) (coralkv.CompactionFilterDecision, []byte) {
	now := nowMicros()
	userKey := keyformat.UserKey(key)

	if len(oldValue) == 0 {
		f.logger.Debugf(logging.NSCompact+"empty value for key %q, remove", userKey)
		return coralkv.FilterRemove, nil
	}

	dataType, err := ParseDataType(oldValue[0])
	if err != nil {
		f.logger.Debugf(logging.NSCompact+"invalid data type byte %d for key %q, remove", oldValue[0], userKey)
		return coralkv.FilterRemove, nil
	}

	switch dataType {
	case DataTypeString:
		parsed, err := NewParsedStringsValue(oldValue)
		if err != nil {
			f.logger.Debugf(logging.NSCompact+"failed to parse strings value for key %q: %v, remove", userKey, err)
			return coralkv.FilterRemove, nil
		}
		decision := parsed.FilterDecision(now)
		if decision == coralkv.FilterRemove {
			f.logger.Debugf(logging.NSCompact+"stale strings value for key %q (etime %d), remove", userKey, parsed.Etime())
		}
		return decision, nil

	case DataTypeHash, DataTypeSet, DataTypeZSet:
		parsed, err := NewParsedBaseMetaValue(oldValue)
		if err != nil {
			f.logger.Debugf(logging.NSCompact+"failed to parse %s meta value for key %q: %v, remove", dataType, userKey, err)
			return coralkv.FilterRemove, nil
		}
		if !parsed.IsValidAt(now) {
			f.logger.Debugf(logging.NSCompact+"dead %s meta value for key %q (count %d, etime %d), remove",
				dataType, userKey, parsed.Count(), parsed.Etime())
			return coralkv.FilterRemove, nil
		}
		return coralkv.FilterKeep, nil

	case DataTypeList:
		parsed, err := NewParsedListsMetaValue(oldValue)
		if err != nil {
			f.logger.Debugf(logging.NSCompact+"failed to parse lists meta value for key %q: %v, remove", userKey, err)
			return coralkv.FilterRemove, nil
		}
		if !parsed.IsValidAt(now) {
			f.logger.Debugf(logging.NSCompact+"dead lists meta value for key %q (count %d, etime %d), remove",
				userKey, parsed.Count(), parsed.Etime())
			return coralkv.FilterRemove, nil
		}
		return coralkv.FilterKeep, nil

	default:
		// DataTypeNone round-trips as a tag but no stored record should
		// carry it.
		f.logger.Debugf(logging.NSCompact+"untyped value for key %q, remove", userKey)
		return coralkv.FilterRemove, nil
	}
}

// BaseMetaFilterFactory creates a fresh BaseMetaFilter per compaction job.
// The factory is cheap and side-effect-free; the engine may construct and
// invoke it repeatedly.
type BaseMetaFilterFactory struct {
	// Logger receives the filters' Debug diagnostics. Nil discards them.
	Logger logging.Logger
}

var _ coralkv.CompactionFilterFactory = (*BaseMetaFilterFactory)(nil)

// Name returns the factory name used by the engine's diagnostics.
func (f *BaseMetaFilterFactory) Name() string {
	return "BaseMetaFilterFactory"
}

// CreateCompactionFilter creates a new filter for one compaction job.
func (f *BaseMetaFilterFactory) CreateCompactionFilter(context coralkv.CompactionFilterContext) coralkv.CompactionFilter {
	return NewBaseMetaFilter(f.Logger)
}
