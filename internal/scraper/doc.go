// Package scraper fetches and parses event listings from third-party
// web sources.
//
// Each source implements the same cascade strategy: markup shape varies
// across site versions and experiments, so every field is extracted by
// trying an ordered list of selectors and taking the first one that
// yields non-empty text. A card that produces no title is skipped; a
// source that cannot be fetched or parsed contributes nothing. Parsing
// is split from fetching so it can be exercised against HTML fixtures.
package scraper
