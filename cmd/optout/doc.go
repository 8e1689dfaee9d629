// Command optout is a terminal helper for removing personal data from data
// broker sites. It downloads the community opt-out list, tracks per-broker
// removal journeys, and generates request emails and letters.
package main
