// Package nilfacts resolves effective nullability contracts for the
// procedures of an analyzed project.
//
// A procedure's contract is assembled from up to three knowledge sources,
// merged in a fixed order with additive (union) semantics:
//
//  1. Explicit source annotations (the base signature, supplied by the caller)
//  2. Curated library tables (hand-authored Nullable/Present/Strict marks)
//  3. Inferred facts, learned by earlier analysis runs and persisted to a
//     store directory shared by all analyzer worker processes
//
// # Quick Start
//
//	tbls, _ := tables.Load("./curated")
//	engine, _ := nilfacts.New(
//	    nilfacts.WithCuratedTables(tbls),
//	    nilfacts.WithStoreDir("./facts"),
//	)
//
//	// Resolution side: feed contracts to the dataflow engine.
//	sig, _ := engine.Resolve(proc, base)
//
//	// Learning side: persist facts a learning pass discovered.
//	_ = engine.MarkReturnNullable(proc)
//	_ = engine.MarkParameterNullable(proc, 1, 3)
//
// # Concurrency Model
//
// Independent worker processes analyze disjoint procedures of the same
// project and share one store directory. All writes go through per-key
// advisory file locks with rename-atomic commits (see [kvstore]), so
// concurrent marks are never lost and readers never observe torn values.
// Curated tables are loaded once and are read-only afterwards.
//
// # Merge Semantics
//
// Overlays only ever add annotation facets, never remove them. Machine-
// inferred facts may therefore refine curated knowledge but can never
// override it, and resolution is idempotent and order-stable for same-kind
// overlays.
package nilfacts
