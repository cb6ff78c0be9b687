// Package present turns a calculation.Result into display values.
//
// This is the only place where statistics are rounded. Rounded values are
// for display and are never fed back into a calculation.
package present
