// Package kernel provides value objects shared across the order domain.
//
// The package includes:
//   - Location: a delivery target (free-text address plus latitude/longitude)
//   - Amount: a non-negative money value with two fraction digits
//
// Both are immutable and can only be obtained through their constructors; their
// zero values fail Validate.
package kernel
