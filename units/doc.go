// Package units collects the physical constants used across dotarray and
// the one derivation the toolkit needs from them: the thermal energy kT
// of an electron reservoir at a given effective temperature.
//
// All energies in dotarray are expressed in µeV, gate voltages in mV and
// temperatures in K. Keeping the unit system fixed here avoids unit
// arguments threading through every API.
package units
