// Package event defines the normalized event record and the pure text
// helpers that produce it: free-text date/time resolution, location
// cleanup, and keyword-based categorization.
//
// Everything here is side-effect free. Scrapers hand raw strings in and
// get canonical values back; nothing in this package performs I/O.
package event
