// Package webpack derives a complete webpack configuration from a small
// declarative description of entry points and path options.
//
// The derivation is a single synchronous pass with no I/O beyond reading the
// working directory:
//
//  1. options are normalized (every field gets a concrete value),
//  2. entries are resolved to absolute paths and prefixed with bootstrap modules,
//  3. one shared source alias is derived from the entry directories,
//  4. module rules are assembled (raw-text, then TypeScript),
//  5. output naming and plugins are wired.
//
// Loaders and plugins appear in the result as opaque identifiers; nothing in
// this package executes them.
package webpack
