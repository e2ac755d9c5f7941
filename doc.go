// Package pcst's repository root. The module ships one algorithm family
// and a thin command-line front door:
//
//	pcst/        — the Prize-Collecting Steiner Tree/Forest solver:
//	               moat-growing primal-dual approximation, four pruning
//	               strategies, a structured error taxonomy, functional
//	               options.
//	cmd/pcstcli/ — a thin JSON-in/JSON-out host adapter exercising pcst
//	               from the command line.
//
//	go get github.com/prizesteiner/pcst/pcst
package pcst
