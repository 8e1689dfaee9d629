// Package translate provides the two translation paths the tool needs.
//
// A small fixed phrase table projects English instructions and journey
// steps into Spanish for brokers that carry no curated Spanish text;
// parenthesized segments (usually URLs) pass through verbatim. This is a
// readability aid, not a faithful translation.
//
// Service converts Spanish output back to English through a remote
// LibreTranslate endpoint before sending or printing; a noop implementation
// returns text unchanged when the service is disabled or unreachable.
package translate
