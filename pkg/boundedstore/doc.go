// Package boundedstore persists fixed-capacity, newest-first record lists.
//
// A bounded list is the storage primitive of both collectors: insertion
// always prepends, the list is truncated to its capacity on every write, and
// the oldest entries are silently evicted once the cap is exceeded. Records
// are JSON documents kept under a fixed storage key; a missing or corrupt
// list reads as empty rather than failing.
//
// The typed API is List[T], generic over the record type. It delegates raw
// element storage to a Backend:
//
//   - FileBackend keeps one JSON array file per key under a base directory.
//   - RedisBackend maps the same contract onto LPUSH/LTRIM/LRANGE, for
//     deployments where collector instances share state.
//
// # Usage
//
//	backend, err := boundedstore.NewFileBackend("./data")
//	visitors, err := boundedstore.NewList[VisitorRecord](backend, "visitors", 500)
//
//	err = visitors.Append(ctx, rec)      // prepend, evict beyond cap
//	recs, err := visitors.ReadAll(ctx)   // newest first
//	ok, err := visitors.Clear(ctx)       // drop the whole key
package boundedstore
