// Package tothepoint locates the primary narrative content of a single
// structured document and ranks passages of that content against a short
// query string (typically the page title). It is the analytic core behind
// a "jump to the relevant part of this page" feature: container scoring
// picks the element most likely to hold the article body, block extraction
// segments it into clean text blocks, and a BM25-derived ranker selects a
// non-redundant top-K list of matching passages.
//
// This package contains domain types, interfaces, and the core algorithms
// following Ben Johnson's Standard Package Layout. Code that depends on a
// concrete document backend or transport lives in subdirectories named
// after their primary dependency (e.g., goquery/, httpapi/).
//
// The core is stateless and side-effect-free: every operation is a pure
// function of the document tree snapshot and the title string, and the
// tree is never mutated.
package tothepoint
