package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/questline/internal/domain"
	"github.com/phrazzld/questline/internal/domain/progression"
	"github.com/phrazzld/questline/internal/store"
)

// ProgressionService orchestrates the progression engines against the
// stores: it owns the clock, loads the user snapshot, runs the pure
// engine transition and persists the resulting snapshot. Mutating
// operations run load-compute-save inside a single transaction.
type ProgressionService interface {
	// TodayMissions returns the current day's mission board, selecting
	// and persisting a fresh set on first call of the day.
	TodayMissions(ctx context.Context) (*MissionBoard, error)

	// RerollMissions replaces today's missions with a fresh draw.
	// Returns progression.ErrRerollsExhausted when the day's allowance
	// is spent.
	RerollMissions(ctx context.Context) (*MissionBoard, error)

	// CompleteCard records a card completion and returns the credited
	// gain. The gain is nil when the card was already completed today.
	// Returns ErrCardNotFound for an ID absent from the pool.
	CompleteCard(ctx context.Context, cardID string) (*domain.XPGain, error)

	// Status returns the read-only progression summary. A positive
	// chartDays overrides the XP history window; zero falls back to the
	// user's settings, then the built-in default.
	Status(ctx context.Context, chartDays int) (*StatusReport, error)

	// SkillTree returns lock status and progress for every skill node.
	SkillTree(ctx context.Context) ([]progression.NodeView, error)

	// SkillOverview returns the infinite-leveling curve per node.
	SkillOverview(ctx context.Context) ([]progression.NodeLevel, error)

	// Timeline returns the phase plan evaluated at the current date.
	Timeline(ctx context.Context) (*TimelineReport, error)

	// AddReflection appends a consistency check-in for the current day.
	// Returns ErrInvalidRating when the rating is outside 0-100.
	AddReflection(ctx context.Context, consistency int, mood, summary string) (*domain.ReflectionEntry, error)

	// ReflectionTemplates returns the static reflection prompts.
	ReflectionTemplates(ctx context.Context) ([]domain.ReflectionTemplate, error)

	// Drift combines reflections and the activity log into a drift-risk
	// report. A nil filter infers the window from the log.
	Drift(ctx context.Context, filter *progression.DateRange) (progression.DriftReport, error)

	// CompleteWorkout records today's finished exercises and returns the
	// resulting workout streak.
	CompleteWorkout(ctx context.Context, exercises []string) (progression.StreakStats, error)
}

// txRunner executes fn against a transaction-bound user store, committing
// on nil and rolling back on error. Production wires this to
// store.RunInTransaction; tests substitute a direct runner.
type txRunner func(ctx context.Context, fn func(ctx context.Context, users store.UserStore) error) error

type progressionService struct {
	users   store.UserStore
	content store.ContentSource
	engine  progression.Service
	clock   Clock
	logger  *slog.Logger
	runTx   txRunner
}

// NewProgressionService creates a ProgressionService backed by the given
// database and stores. A nil clock falls back to the wall clock.
func NewProgressionService(
	db *sql.DB,
	users store.UserStore,
	content store.ContentSource,
	engine progression.Service,
	clock Clock,
	logger *slog.Logger,
) ProgressionService {
	if clock == nil {
		clock = NewClock()
	}
	return &progressionService{
		users:   users,
		content: content,
		engine:  engine,
		clock:   clock,
		logger:  logger.With(slog.String("component", "progression_service")),
		runTx: func(ctx context.Context, fn func(ctx context.Context, users store.UserStore) error) error {
			return store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
				return fn(ctx, users.WithTx(tx))
			})
		},
	}
}

// Ensure implementation satisfies the interface
var _ ProgressionService = (*progressionService)(nil)

// loadOrCreate fetches the stored profile, falling back to the template
// user on first run. The second return reports whether a fresh profile
// was created; callers in mutating flows persist it even when the engine
// transition was a no-op.
func (s *progressionService) loadOrCreate(ctx context.Context, users store.UserStore) (*domain.User, bool, error) {
	user, err := users.Load(ctx)
	if err == nil {
		return user, false, nil
	}
	if errors.Is(err, store.ErrUserNotFound) {
		s.logger.Info("no stored profile found, creating template user")
		return domain.NewUser(), true, nil
	}
	return nil, false, fmt.Errorf("failed to load user profile: %w", err)
}

func (s *progressionService) TodayMissions(ctx context.Context) (*MissionBoard, error) {
	today := s.clock.Today()

	var board *MissionBoard
	err := s.runTx(ctx, func(ctx context.Context, users store.UserStore) error {
		user, created, err := s.loadOrCreate(ctx, users)
		if err != nil {
			return err
		}

		pool, err := s.content.Cards(ctx)
		if err != nil {
			return fmt.Errorf("failed to load card pool: %w", err)
		}

		updated, ids := s.engine.Missions(user, pool, progression.SelectionOptions{Date: today})
		if updated != user || created {
			updated.UpdatedAt = s.clock.Now().UTC()
			if err := users.Save(ctx, updated); err != nil {
				return fmt.Errorf("failed to save user profile: %w", err)
			}
		}

		board = s.buildBoard(updated, pool, ids, today)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return board, nil
}

func (s *progressionService) RerollMissions(ctx context.Context) (*MissionBoard, error) {
	today := s.clock.Today()

	var board *MissionBoard
	err := s.runTx(ctx, func(ctx context.Context, users store.UserStore) error {
		user, _, err := s.loadOrCreate(ctx, users)
		if err != nil {
			return err
		}

		pool, err := s.content.Cards(ctx)
		if err != nil {
			return fmt.Errorf("failed to load card pool: %w", err)
		}

		updated, err := s.engine.Reroll(user, pool, progression.SelectionOptions{Date: today})
		if err != nil {
			return err
		}

		updated.UpdatedAt = s.clock.Now().UTC()
		if err := users.Save(ctx, updated); err != nil {
			return fmt.Errorf("failed to save user profile: %w", err)
		}

		board = s.buildBoard(updated, pool, updated.MissionsByDate[today], today)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("missions rerolled",
		slog.String("date", today),
		slog.Int("rerolls_remaining", board.RerollsRemaining))
	return board, nil
}

func (s *progressionService) CompleteCard(ctx context.Context, cardID string) (*domain.XPGain, error) {
	today := s.clock.Today()
	now := s.clock.Now().UTC()

	var gain *domain.XPGain
	err := s.runTx(ctx, func(ctx context.Context, users store.UserStore) error {
		user, created, err := s.loadOrCreate(ctx, users)
		if err != nil {
			return err
		}

		pool, err := s.content.Cards(ctx)
		if err != nil {
			return fmt.Errorf("failed to load card pool: %w", err)
		}
		card := findCard(pool, cardID)
		if card == nil {
			return fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
		}

		tree, err := s.content.SkillTree(ctx)
		if err != nil {
			return fmt.Errorf("failed to load skill tree: %w", err)
		}

		updated, g := s.engine.CompleteCard(user, card, tree, today, now)
		gain = g
		if updated != user || created {
			if err := users.Save(ctx, updated); err != nil {
				return fmt.Errorf("failed to save user profile: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if gain != nil {
		s.logger.Info("card completed",
			slog.String("card_id", gain.CardID),
			slog.String("domain", gain.Domain),
			slog.Int("xp", gain.Amount),
			slog.Float64("multiplier", gain.Multiplier))
	} else {
		s.logger.Debug("card already completed today",
			slog.String("card_id", cardID))
	}
	return gain, nil
}

func (s *progressionService) Status(ctx context.Context, chartDays int) (*StatusReport, error) {
	today := s.clock.Today()

	user, err := s.loadForRead(ctx)
	if err != nil {
		return nil, err
	}
	pool, err := s.content.Cards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load card pool: %w", err)
	}

	stats := s.engine.Streak(user, today)
	days := chartDays
	if days <= 0 {
		days = user.Settings.XPChartDays
	}
	if days <= 0 {
		days = 14
	}

	return &StatusReport{
		Date:             today,
		TotalXP:          user.TotalXP(),
		Streak:           stats,
		Multiplier:       s.engine.Multiplier(stats.Current),
		RerollsRemaining: s.rerollsRemaining(user, stats, today),
		Badges:           s.engine.Badges(stats),
		Officer:          s.engine.Officer(user),
		WorkoutStreak:    s.engine.WorkoutStreak(user, today),
		LastGain:         user.LastXPGain,
		XPHistory:        s.engine.XPHistory(user, pool, today, days),
	}, nil
}

func (s *progressionService) SkillTree(ctx context.Context) ([]progression.NodeView, error) {
	user, err := s.loadForRead(ctx)
	if err != nil {
		return nil, err
	}
	tree, err := s.content.SkillTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load skill tree: %w", err)
	}
	return s.engine.TreeView(user, tree), nil
}

func (s *progressionService) SkillOverview(ctx context.Context) ([]progression.NodeLevel, error) {
	user, err := s.loadForRead(ctx)
	if err != nil {
		return nil, err
	}
	tree, err := s.content.SkillTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load skill tree: %w", err)
	}
	return s.engine.Overview(user, tree), nil
}

func (s *progressionService) Timeline(ctx context.Context) (*TimelineReport, error) {
	today := s.clock.Today()

	phases, err := s.content.Phases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load phases: %w", err)
	}
	return &TimelineReport{
		Date:    today,
		Phases:  s.engine.Timeline(phases, today),
		Current: s.engine.CurrentPhase(phases, today),
	}, nil
}

func (s *progressionService) AddReflection(
	ctx context.Context,
	consistency int,
	mood, summary string,
) (*domain.ReflectionEntry, error) {
	if consistency < 0 || consistency > 100 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRating, consistency)
	}

	today := s.clock.Today()

	var entry *domain.ReflectionEntry
	err := s.runTx(ctx, func(ctx context.Context, users store.UserStore) error {
		user, _, err := s.loadOrCreate(ctx, users)
		if err != nil {
			return err
		}

		entry, err = domain.NewReflectionEntry(today, consistency, mood, summary)
		if err != nil {
			return fmt.Errorf("failed to create reflection entry: %w", err)
		}

		updated := user.Clone()
		updated.Reflections = append(updated.Reflections, *entry)
		updated.UpdatedAt = s.clock.Now().UTC()

		if err := users.Save(ctx, updated); err != nil {
			return fmt.Errorf("failed to save user profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("reflection recorded",
		slog.String("date", entry.Date),
		slog.Int("consistency", entry.Consistency))
	return entry, nil
}

func (s *progressionService) ReflectionTemplates(ctx context.Context) ([]domain.ReflectionTemplate, error) {
	templates, err := s.content.ReflectionTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reflection templates: %w", err)
	}
	return templates, nil
}

func (s *progressionService) Drift(
	ctx context.Context,
	filter *progression.DateRange,
) (progression.DriftReport, error) {
	user, err := s.loadForRead(ctx)
	if err != nil {
		return progression.DriftReport{}, err
	}
	return s.engine.Drift(user, user.Reflections, filter), nil
}

func (s *progressionService) CompleteWorkout(
	ctx context.Context,
	exercises []string,
) (progression.StreakStats, error) {
	today := s.clock.Today()
	now := s.clock.Now().UTC()

	var stats progression.StreakStats
	err := s.runTx(ctx, func(ctx context.Context, users store.UserStore) error {
		user, created, err := s.loadOrCreate(ctx, users)
		if err != nil {
			return err
		}

		updated := s.engine.CompleteWorkout(user, today, exercises, now)
		if updated != user || created {
			if err := users.Save(ctx, updated); err != nil {
				return fmt.Errorf("failed to save user profile: %w", err)
			}
		}

		stats = s.engine.WorkoutStreak(updated, today)
		return nil
	})
	if err != nil {
		return progression.StreakStats{}, err
	}
	return stats, nil
}

// loadForRead fetches the profile for read-only operations. First-run
// bootstrapping is not persisted here; the template user serves the read
// and the first mutating operation creates the stored profile.
func (s *progressionService) loadForRead(ctx context.Context) (*domain.User, error) {
	user, err := s.users.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return domain.NewUser(), nil
		}
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}
	return user, nil
}

func (s *progressionService) buildBoard(
	user *domain.User,
	pool []domain.Card,
	ids []string,
	today string,
) *MissionBoard {
	stats := s.engine.Streak(user, today)
	return &MissionBoard{
		Date:             today,
		Cards:            resolveCards(pool, ids),
		RerollsRemaining: s.rerollsRemaining(user, stats, today),
	}
}

func (s *progressionService) rerollsRemaining(
	user *domain.User,
	stats progression.StreakStats,
	today string,
) int {
	remaining := s.engine.RerollAllowance(stats.Current) - user.RerollsByDate[today]
	if remaining < 0 {
		return 0
	}
	return remaining
}

func findCard(pool []domain.Card, id string) *domain.Card {
	for i := range pool {
		if pool[i].ID == id {
			return &pool[i]
		}
	}
	return nil
}

// resolveCards maps mission IDs back to cards, preserving mission order.
// IDs that have since left the pool are skipped.
func resolveCards(pool []domain.Card, ids []string) []domain.Card {
	byID := make(map[string]domain.Card, len(pool))
	for _, c := range pool {
		byID[c.ID] = c
	}
	out := make([]domain.Card, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			out = append(out, c)
		}
	}
	return out
}
