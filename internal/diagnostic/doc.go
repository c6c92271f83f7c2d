// Package diagnostic provides structured warnings, errors and notes
// produced while generating selectors.
//
// Key capabilities:
//   - Skipped type and field reports with the reason they were skipped
//   - Rename notices when a selector name collides with a declaration
//   - Errors for requested types that do not exist
package diagnostic
