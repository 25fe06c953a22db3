package store

import (
	"context"

	"github.com/phrazzld/questline/internal/domain"
)

// ContentSource defines the interface for the static content the engines
// progress against: the card pool, the skill tree, the phase plan and
// reflection templates. Content is read-only bulk data; implementations
// typically load JSON documents from disk.
type ContentSource interface {
	// Cards returns the full card pool, including disabled cards.
	Cards(ctx context.Context) ([]domain.Card, error)

	// SkillTree returns all skill nodes.
	SkillTree(ctx context.Context) ([]domain.SkillNode, error)

	// Phases returns the long-term phase plan.
	Phases(ctx context.Context) ([]domain.Phase, error)

	// ReflectionTemplates returns the static reflection prompts.
	ReflectionTemplates(ctx context.Context) ([]domain.ReflectionTemplate, error)
}
