// Package docid defines the identifier that names a bundle on disk.
//
// A DocID is a random 128-bit value. Its textual form, used verbatim as the
// bundle's directory name, is the Base58 encoding of the raw bytes, so it is
// filesystem-safe on every platform papervault targets. Identifiers are
// generated without any collision check; the random space makes a clash
// statistically negligible and the repository carries no index that could
// enforce uniqueness anyway.
package docid
