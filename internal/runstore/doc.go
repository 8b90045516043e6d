// Package runstore persists evaluation runs to SQLite so defect growth can
// be compared across invocations. Each run stores its summary KPIs and the
// accepted matches; anomaly tables themselves stay in their canonical CSVs.
package runstore
