// Package testutil provides testing utilities and helpers.
//
// This package contains fixture types with known package paths and shapes,
// so tests across the SDK can assert on qualified and simple names.
//
// This package is internal and should not be imported by external code.
package testutil
