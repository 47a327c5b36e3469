// Package resolve maps a query to a single saved project.
//
// A query is interpreted in three stages, first match wins:
//
//   - Index: a plain run of decimal digits addresses a project by position.
//     "+1", "-1" or " 1" are not indexes and fall through to name matching.
//   - Exact name: the query equals the basename of exactly one project,
//     ignoring case.
//   - Fuzzy: every character of the query appears in the basename in order.
//     Candidates are ranked by (match kind, basename length, index) where
//     prefix beats substring beats subsequence and shorter names win.
//
// When the best fuzzy candidates tie on match kind and basename length the
// query is ambiguous and all tied projects are reported. The index only
// orders that report; it never picks a winner among ties.
package resolve
