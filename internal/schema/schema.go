// Package schema provides the principal schematics for all other packages. It
// defines the move request handed to the engine, the source it resolves to,
// the outcome it reports and the typed errors it fails with. The package
// serves as the foundational layer shared by the engine's components.
package schema
