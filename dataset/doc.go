// Package dataset reads and writes knapsack instances as YAML documents:
//
//	name: p01
//	capacity: 165
//	items:
//	  - {value: 92, weight: 23}
//	  - {value: 57, weight: 31}
//	optimum: 309                # optional known objective
//	selection: [1, 1, 0, 1]     # optional known optimal selection
//
// Unknown keys are rejected. Fingerprint identifies an instance by its
// capacity and item list only, so renaming a file or annotating the optimum
// does not change it.
package dataset
