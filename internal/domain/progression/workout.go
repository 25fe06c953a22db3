package progression

import (
	"time"

	"github.com/phrazzld/questline/internal/domain"
	"github.com/phrazzld/questline/internal/domain/dates"
)

// completeWorkout records exercises done on the given day. Duplicate
// exercise names per day are suppressed, mirroring the card completion
// buckets, so re-marking an exercise is a no-op. Workout completion never
// touches XP; it is its own sub-progression.
func completeWorkout(
	user *domain.User,
	date string,
	exercises []string,
	now time.Time,
) *domain.User {
	if user == nil || !dates.Valid(date) || len(exercises) == 0 {
		return user
	}

	next := user.Clone()
	if next.WorkoutByDate == nil {
		next.WorkoutByDate = make(map[string][]string)
	}

	done := make(map[string]bool, len(next.WorkoutByDate[date]))
	for _, name := range next.WorkoutByDate[date] {
		done[name] = true
	}

	changed := false
	for _, name := range exercises {
		if name == "" || done[name] {
			continue
		}
		next.WorkoutByDate[date] = append(next.WorkoutByDate[date], name)
		done[name] = true
		changed = true
	}

	if !changed {
		return user
	}

	next.UpdatedAt = now
	return next
}
