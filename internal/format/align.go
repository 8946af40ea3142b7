package format

// Alignment utilities for node blocks.
// Key regions are padded so the value region always starts on a Quantum boundary.

// AlignQuantum returns n aligned up to the next Quantum (8-byte) boundary.
//
// Example:
//
//	AlignQuantum(1)  = 8
//	AlignQuantum(8)  = 8
//	AlignQuantum(9)  = 16
//	AlignQuantum(16) = 16
func AlignQuantum(n int) int {
	return (n + QuantumMask) & ^QuantumMask
}

// QuantaFor returns the number of Quantum-sized units needed to hold n bytes.
func QuantaFor(n int) int {
	return (n + QuantumMask) / Quantum
}
