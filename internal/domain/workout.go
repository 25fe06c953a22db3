package domain

// WorkoutExercise is one entry in the user's workout routine. The routine
// is tracked as its own sub-progression, independent of domain XP.
type WorkoutExercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets,omitempty"`
	Reps int    `json:"reps,omitempty"`
}
