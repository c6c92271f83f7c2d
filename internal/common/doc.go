// Package common holds small naming helpers shared by the selector loader,
// the generator and the configuration validator: identifier validation,
// unique-name stems and default import aliases.
package common
