// Package finance holds the pure money arithmetic of the application: exchange-rate
// resolution, multi-currency aggregation, display formatting, the document totals cascade
// and contract composition.
//
// Every function here is a deterministic function of its arguments. Nothing performs I/O,
// logs, or reads ambient state; the organization's current rate and preferences are always
// passed in explicitly.
package finance
