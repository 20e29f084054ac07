// Package pins provides the 28-bit pin mask representation shared by
// the whole analyzer, the built-in device packages with their bit to
// physical-pin tables, and the Namer which resolves symbolic pin names
// and pin-level inversion.
//
// # Usage
//
//	dev, err := pins.Lookup("G22V10")
//	n := pins.NewNamer(dev)
//	n.SetName(3, "CS", true) // pin named !CS in the config
//	n.Name(3, false)         // "!CS"
//
// # Related Packages
//
//   - github.com/cdhooper/brutus28/analyze - the inference core
//   - github.com/cdhooper/brutus28/emit - equation listing output
package pins
