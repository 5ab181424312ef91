// Package utils provides small helpers shared by the analyzer packages.
// It holds the address transforms used to line up WASON node addresses with
// the hex-encoded addresses printed by the APOPLUS och-inst dump.
package utils
