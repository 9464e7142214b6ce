/*
Package coralkv provides the value-encoding and liveness-management layer of
a Redis-semantics storage engine built on an ordered, log-structured
key/value store.

Every logical Redis value (a scalar string, or the per-collection metadata
record for a hash, set, sorted set, or list) is serialized into a single
opaque byte string stored under one engine key. This package defines the
contract the underlying engine consults during background compaction; the
concrete record layouts, the zero-copy parsers, and the liveness predicates
live in internal/storage.

The engine itself (get/put, compaction scheduling, write batches, read
options) is an external collaborator. This package only exposes the
compaction-filter interface the engine calls per candidate key/value pair,
so that any engine with RocksDB-shaped compaction filters can plug in.

# Concurrency

Compaction filters are invoked by the engine's background compaction
threads, potentially many in parallel across key ranges. A fresh filter is
created per compaction job by the filter factory; a single filter instance
is never shared across jobs.
*/
package coralkv
