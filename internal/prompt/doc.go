// Package prompt assembles model instructions from a generation request and
// its classification context. Instruction variants live in a lookup table
// keyed by subject and input type rather than cascading conditionals.
package prompt
