// Package core defines the shared vocabulary of the Whoswho system: role
// markers, interaction log entries, completed messages and the sentinel
// errors used across package boundaries. It has no dependencies on the
// provider or controller layers so every other package can import it freely.
package core
