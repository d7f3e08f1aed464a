// Package domain contains shared domain types used across entity sub-packages.
// Batch-specific types live in the domain/batch sub-package. This root package
// holds the sentinel errors and the field-level ValidationError that every
// layer maps to and from.
package domain
