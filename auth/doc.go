// Package auth provides caller identity for endpoint invocations.
//
// It defines the Identity type, the SecurityContext capability consumed
// by invocation contexts, JWT-based identity parsing, and helpers for
// carrying an identity through a context.Context.
package auth
