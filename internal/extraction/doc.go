// Package extraction normalizes heterogeneous study material into a uniform
// text record and enforces a minimum quality gate before generation.
package extraction
