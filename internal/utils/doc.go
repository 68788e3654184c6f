// Package utils holds JoinMapped, the order-preserving mapped join that
// backs every classsupport formatting call.
//
// This package is internal and should not be imported by external code.
package utils
