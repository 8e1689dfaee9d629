// Package language defines the two display languages the tool supports and
// helpers to resolve user-supplied language identifiers.
//
// English is the canonical language: broker instructions and journey steps
// always exist in English, with Spanish carried alongside when available.
// Resolution accepts ISO codes, full words, and BCP 47 tags ("es-MX"),
// falling back to English for anything unrecognized.
package language
