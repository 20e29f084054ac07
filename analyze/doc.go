// Package analyze implements the combinational-logic inference core.
//
// Given a capture whose records walk every combination of the driven
// pins in binary counting order, the core classifies each pin,
// determines which inputs affect which outputs from adjacent
// bit-flipped record pairs, collects a sum-of-products term table per
// output pin, and then simplifies: adjacent terms merging away one
// variable, absorption and one-variable complementation, and
// cross-pin substitution of whole output equations.
//
// # Usage
//
//	a, err := analyze.Run(cap)
//	for _, b := range a.Class().Output.Bits() {
//		for _, t := range a.Table(b).Live() {
//			...
//		}
//	}
//
// All state lives in the Analysis context; multiple captures can be
// analyzed concurrently from separate contexts.
package analyze
