// Package parser turns the raw CSV text served by the upstream into
// [models.MedicationRecord] values.
//
// Only the small subset needed by the gateway is supported: comma separated
// values with a header row, RFC 4180 quoting and a bounded number of data
// rows. Cell values are returned as-is; no type coercion is attempted.
package parser
