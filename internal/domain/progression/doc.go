// Package progression implements the pure computation core of the
// questline engine: weighted mission selection, streak and multiplier
// derivation, XP application with skill-tree unlocking, infinite per-node
// leveling, overall officer ranking, phase timelines and reflection drift
// analysis.
//
// All engines are pure functions over in-memory snapshots. They never
// perform I/O, never read the wall clock or a global random source (both
// are injected), never mutate their inputs, and every internal loop
// carries an explicit bound so computations terminate on any input.
// Missing or malformed data is absorbed into safe neutral results rather
// than surfaced as errors.
package progression
