// Package utils contains small helpers shared across the application:
// cross-platform filename sanitization, file existence checks,
// extension handling, and the User-Agent provider abstraction.
package utils
