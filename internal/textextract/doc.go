// Package textextract pulls structured contact fields out of free-form
// opt-out text and prepares that text for display.
//
// Extraction is deliberately lexical: a narrow set of fixed patterns for
// emails, phone numbers, and URLs, with no semantic validation. Sanitize
// flattens markdown emphasis and link syntax into plain readable text and is
// idempotent. Linkify converts plain text into anchor markup, applying its
// passes in a fixed order (URL, email, phone, newline) so digits inside a
// URL path are never mistaken for a phone number.
package textextract
