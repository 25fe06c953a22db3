package progression

import (
	"testing"

	"github.com/phrazzld/questline/internal/domain"
)

func TestEvaluateTreeView(t *testing.T) {
	t.Parallel() // Enable parallel execution

	user := domain.NewUser()
	user.XPByDomain["academic"] = 15
	user.CompletedSkillNodes["n1"] = true

	views := evaluateTreeView(user, testTree())
	byID := make(map[string]NodeView, len(views))
	for _, v := range views {
		byID[v.NodeID] = v
	}

	if byID["n1"].Status != NodeStatusCompleted {
		t.Errorf("Expected n1 completed, got %s", byID["n1"].Status)
	}

	// n2's only prerequisite (n1) is completed.
	if byID["n2"].Status != NodeStatusAvailable {
		t.Errorf("Expected n2 available, got %s", byID["n2"].Status)
	}
	if byID["n2"].Progress != 0.5 {
		t.Errorf("Expected n2 progress 0.5 (15/30), got %.2f", byID["n2"].Progress)
	}

	// n3's prerequisite n2 is not completed.
	if byID["n3"].Status != NodeStatusLocked {
		t.Errorf("Expected n3 locked, got %s", byID["n3"].Status)
	}

	// Completed nodes still report clamped progress.
	if byID["n1"].Progress != 0.5 {
		t.Errorf("Expected n1 progress 0.5, got %.2f", byID["n1"].Progress)
	}
}

func TestEvaluateTreeViewEdgeCases(t *testing.T) {
	t.Parallel() // Enable parallel execution

	t.Run("zero requirement counts as fully satisfied", func(t *testing.T) {
		user := domain.NewUser()
		tree := []domain.SkillNode{{ID: "free", XPRequired: 0}}

		views := evaluateTreeView(user, tree)
		if views[0].Progress != 1 {
			t.Errorf("Expected progress 1 for zero requirement, got %.2f", views[0].Progress)
		}
	})

	t.Run("progress clamps at one", func(t *testing.T) {
		user := domain.NewUser()
		user.XPByDomain["academic"] = 500
		tree := []domain.SkillNode{{ID: "n", Domains: []string{"academic"}, XPRequired: 100}}

		views := evaluateTreeView(user, tree)
		if views[0].Progress != 1 {
			t.Errorf("Expected clamped progress 1, got %.2f", views[0].Progress)
		}
	})

	t.Run("nil user locks everything", func(t *testing.T) {
		views := evaluateTreeView(nil, testTree())
		for _, v := range views {
			if v.Status != NodeStatusLocked {
				t.Errorf("Expected %s locked for nil user, got %s", v.NodeID, v.Status)
			}
		}
	})
}
