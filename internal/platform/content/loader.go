// Package content loads the engine's static data (cards, skill tree,
// phases, reflection templates) from JSON documents on a filesystem. It
// implements store.ContentSource.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/phrazzld/questline/internal/domain"
	"github.com/phrazzld/questline/internal/store"
)

// Document names expected in the content directory.
const (
	cardsFile     = "cards.json"
	skillTreeFile = "skill_tree.json"
	phasesFile    = "phases.json"
	templatesFile = "reflection_templates.json"
)

// Loader reads content documents from a filesystem.
type Loader struct {
	fsys   fs.FS
	logger *slog.Logger
}

// NewLoader creates a content loader over the given filesystem.
// If logger is nil, a default logger will be used.
func NewLoader(fsys fs.FS, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		fsys:   fsys,
		logger: logger.With(slog.String("component", "content_loader")),
	}
}

// NewDirLoader creates a content loader over a directory on disk.
func NewDirLoader(dir string, logger *slog.Logger) *Loader {
	return NewLoader(os.DirFS(dir), logger)
}

// Ensure Loader implements store.ContentSource interface
var _ store.ContentSource = (*Loader)(nil)

// Cards implements store.ContentSource.Cards
// Cards failing domain validation are skipped with a warning instead of
// poisoning the whole pool.
func (l *Loader) Cards(ctx context.Context) ([]domain.Card, error) {
	var cards []domain.Card
	if err := l.load(cardsFile, &cards); err != nil {
		return nil, err
	}

	valid := cards[:0]
	for _, card := range cards {
		if err := card.Validate(); err != nil {
			l.logger.Warn("skipping invalid card",
				slog.String("card_id", card.ID),
				slog.String("error", err.Error()))
			continue
		}
		valid = append(valid, card)
	}

	return valid, nil
}

// SkillTree implements store.ContentSource.SkillTree
func (l *Loader) SkillTree(ctx context.Context) ([]domain.SkillNode, error) {
	var nodes []domain.SkillNode
	if err := l.load(skillTreeFile, &nodes); err != nil {
		return nil, err
	}

	valid := nodes[:0]
	for _, node := range nodes {
		if err := node.Validate(); err != nil {
			l.logger.Warn("skipping invalid skill node",
				slog.String("node_id", node.ID),
				slog.String("error", err.Error()))
			continue
		}
		valid = append(valid, node)
	}

	return valid, nil
}

// Phases implements store.ContentSource.Phases
func (l *Loader) Phases(ctx context.Context) ([]domain.Phase, error) {
	var phases []domain.Phase
	if err := l.load(phasesFile, &phases); err != nil {
		return nil, err
	}

	valid := phases[:0]
	for _, phase := range phases {
		if err := phase.Validate(); err != nil {
			l.logger.Warn("skipping invalid phase",
				slog.String("phase_id", phase.ID),
				slog.String("error", err.Error()))
			continue
		}
		valid = append(valid, phase)
	}

	return valid, nil
}

// ReflectionTemplates implements store.ContentSource.ReflectionTemplates
// The templates document is optional; a missing file yields an empty
// list rather than an error.
func (l *Loader) ReflectionTemplates(ctx context.Context) ([]domain.ReflectionTemplate, error) {
	var templates []domain.ReflectionTemplate
	if err := l.load(templatesFile, &templates); err != nil {
		if store.IsNotFoundError(err) {
			return []domain.ReflectionTemplate{}, nil
		}
		return nil, err
	}
	return templates, nil
}

// load reads and decodes one JSON document.
func (l *Loader) load(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", store.ErrContentNotFound, name)
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}

	return nil
}
