// Package enrichment derives the employee report from raw records.
//
// # Pipeline
//
// Enrichment runs in two phases over an in-memory table:
//
//  1. Per record: full name, title affixes, role category and timestamp
//     repair. These depend on nothing but the record and the run's "now".
//  2. Table wide: ResolveDuplicates counts every exact job title and numbers
//     repeated titles in input order. Unique role keys are composed from
//     that aggregate, so they can only be built after the whole table is seen.
//
// # Timestamp repair
//
// Missing dates are backfilled with a random weekday (Monday to Friday) and a
// random time between 08:00:00 and 18:59:59. A date recorded at exactly
// midnight keeps its weekday but gets a synthesized time. Randomness comes
// from an injectable *rand.Rand so tests can seed it.
//
// # Classification
//
// Role categories come from an ordered keyword list; the first keyword found
// in the lowercased title decides the category.
package enrichment
