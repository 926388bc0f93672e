// Package search queries a frame graph by slot name or by slot value.
//
// [Syntactic] matches literal slots whose name is one of the query terms.
// The pseudo name "Frame reference" selects every reference slot instead.
// [Semantic] matches literal slots by text and reference slots by the name of
// the frame they point at, grouping results per frame.
//
// Both traversals are read-only and visit each slot once. Results follow the
// graph's insertion order, so they are deterministic.
//
// Queries typed by users are semicolon-separated lists; [ParseTerms] splits
// them. [SyntacticReport] and [SemanticReport] render results as plain text.
package search
