// Package domain contains the core entities of the questline progression
// engine: the User aggregate and the static content types (Card,
// SkillNode, Phase, ReflectionEntry) it progresses against.
//
// Entities carry their own validation rules as sentinel errors so callers
// can use errors.Is to classify failures. The User aggregate is treated as
// an immutable snapshot: engine code never mutates a User it received but
// clones it and returns the modified copy. See the progression package for
// the pure computation engines operating on these types.
package domain
