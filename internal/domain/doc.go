// Package domain contains shared domain types used across the domain
// sub-packages. The Project aggregate lives in domain/project, the Result
// sum type in domain/result and the event-carrying execution context in
// domain/execution. This root package holds sentinel errors, validation
// types, failure classification and the Event interface.
package domain
