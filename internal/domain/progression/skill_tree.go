package progression

import "github.com/phrazzld/questline/internal/domain"

// NodeStatus is the lock state of a skill node in the tree view.
type NodeStatus string

// Possible node status values
const (
	NodeStatusLocked    NodeStatus = "locked"
	NodeStatusAvailable NodeStatus = "available"
	NodeStatusCompleted NodeStatus = "completed"
)

// NodeView is the per-node output of the skill tree view engine.
type NodeView struct {
	NodeID   string     `json:"node_id"`
	Tier     int        `json:"tier"`
	Status   NodeStatus `json:"status"`
	Progress float64    `json:"progress"`
}

// evaluateTreeView computes lock status and fractional progress for every
// node. A node is completed when in the completed set, available when all
// its prerequisites are completed, otherwise locked. Progress is domain
// XP over the XP requirement clamped to [0,1]; a node with no positive
// requirement counts as fully satisfied.
func evaluateTreeView(user *domain.User, tree []domain.SkillNode) []NodeView {
	views := make([]NodeView, 0, len(tree))
	if user == nil {
		for _, node := range tree {
			views = append(views, NodeView{NodeID: node.ID, Tier: node.Tier, Status: NodeStatusLocked})
		}
		return views
	}

	for _, node := range tree {
		view := NodeView{NodeID: node.ID, Tier: node.Tier}

		switch {
		case user.CompletedSkillNodes[node.ID]:
			view.Status = NodeStatusCompleted
		case prerequisitesMet(node, user.CompletedSkillNodes):
			view.Status = NodeStatusAvailable
		default:
			view.Status = NodeStatusLocked
		}

		if node.XPRequired <= 0 {
			view.Progress = 1
		} else {
			view.Progress = clamp01(float64(nodeDomainXP(user.XPByDomain, node)) / float64(node.XPRequired))
		}

		views = append(views, view)
	}

	return views
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
