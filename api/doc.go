// Package api
// Author: theMoor9
//
// Shared types and the error taxonomy for the SolidArx framework.
// Concrete components (core/memory, network, registry) exchange these
// types; the package itself carries no behavior beyond parsing and
// formatting.
package api
