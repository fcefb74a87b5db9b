// Package environment defines the external-environment candidate source
// contract: an environment indexes every class visible via the module's
// resolved dependencies, keyed by simple name, and exposes it
// through the same uniform find(identifiers) contract every candidate
// source shares.
package environment

import "github.com/Songmu/javaimports/internal/candidates"

// Environment is the external environment contract (Maven today, but
// pluggable). It is structurally identical to candidates.Finder; it
// exists as its own name
// so call sites read as "the module's external environment" rather than
// "a candidate finder".
type Environment interface {
	candidates.Finder
}
