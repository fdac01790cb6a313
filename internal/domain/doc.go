// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/book, domain/person) and
// identifier rules live in domain/identifier. This root package holds sentinel
// errors, the field-level ValidationError and the coded library errors that
// travel unchanged from the point of detection to the API boundary.
package domain
