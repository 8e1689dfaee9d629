// Package catalog turns the remote broker document into the category and
// broker records the rest of the tool works from.
//
// The document is semi-structured markdown: level-2 headings delimit
// categories, level-3 headings delimit brokers within a category. Parsing is
// lenient and never fails; malformed input yields fewer records. A curated
// override table supplies bilingual instructions, contacts, and journey
// seeds for the high-value People Search brokers; the merger overlays it by
// case-insensitive substring match on broker names, first key wins.
//
// The Loader fetches the document over HTTP and degrades in order: live
// fetch, last cached copy on disk, built-in catalog derived from the curated
// table alone.
package catalog
