// Package journey persists per-broker removal progress in SQLite and
// drives the step state machine.
//
// A journey is a pair of parallel step lists (English and Spanish, always
// the same length and order), a current step index, and a sticky completed
// flag. Journeys are created lazily from curated seed steps or a
// synthesized fallback, advanced and rewound one step at a time, reordered
// in lockstep across both languages, and extended with user-authored steps.
// Completion is reached only by advancing past the last step and is never
// cleared by this package.
//
// The Store is the single source of truth for journey semantics. Every
// mutating operation loads the entry, applies the transition, and writes it
// back; a file lock taken at Open enforces the single-writer assumption
// across processes. Entries are never deleted here.
package journey
