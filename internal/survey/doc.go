// Package survey holds the canonical anomaly records for one inspection run.
//
// Anomalies arrive as canonical CSV tables produced by the upstream extraction
// tooling, one table per survey year. Loading assigns each record a stable
// sequential ID, coerces the optional numeric fields, converts hh:mm clock
// readings to decimal hours, and drops rows without a longitudinal position.
// Records are immutable once loaded; the matcher only ever reads them.
package survey
