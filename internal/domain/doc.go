// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (series, fitted lines) and contracts (interfaces) only.
package domain
