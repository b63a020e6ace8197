// Package diagnostic provides structured warnings and notes collected
// while an inventory run classifies names.
//
// Key capabilities:
//   - Malformed name warnings carrying the offending raw name
//   - Source-level notes (which source produced how many names)
//   - Merging of per-worker diagnostics
package diagnostic
