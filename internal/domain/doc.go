// Package domain defines the core business entities of the application.
//
// The central entity is Task, the structured record produced by the
// extraction pipeline. Producers feed inconsistent field values (status
// labels, category strings, urgency scales), so this package also owns the
// normalization tables that coerce everything into one canonical schema at
// the builder boundary.
package domain
