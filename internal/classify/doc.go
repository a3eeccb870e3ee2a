// Package classify derives language, input shape, and subject domain from
// extracted study text. Classification is deterministic for identical input.
package classify
