// Package report turns a matching result into growth and risk reporting.
//
// Evaluate drives the whole batch: it runs the base matching, joins accepted
// pairs into defect families with per-year depth growth, aggregates families
// into fixed-width pipeline segments scored for risk, runs the stability
// probe, and computes the run KPIs. Artifact writing (CSV tables plus a JSON
// KPI snapshot) lives here too so the CLI stays a thin shell.
package report
