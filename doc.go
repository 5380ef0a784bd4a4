// Package lsp defines the data types of the Language Server Protocol:
// the structures exchanged between language clients and servers, the
// per-method parameter and result bindings, and the handful of custom
// wire encodings the protocol uses (numeric enums, untagged unions,
// watch-kind bitflags and packed semantic token data).
//
// The package contains no transport and no dispatcher. Values are plain
// data; every encode and decode is a pure function of its input, so
// they may be used freely from multiple goroutines.
package lsp
