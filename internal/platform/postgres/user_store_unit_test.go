package postgres

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/questline/internal/domain"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel() // Enable parallel execution

	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("plain error")))
	assert.False(t, isUniqueViolation(nil))
}

func TestUserSnapshotRoundTrip(t *testing.T) {
	t.Parallel() // Enable parallel execution

	user := domain.NewUser()
	user.XPByDomain["academic"] = 120
	user.CompletedCardsByDate["2025-06-10"] = []string{"c1", "c2"}
	user.CompletedSkillNodes["n1"] = true
	user.RerollsByDate["2025-06-10"] = 1
	user.LastXPGain = &domain.XPGain{CardID: "c1", Domain: "academic", Amount: 30, Multiplier: 1.1, Date: "2025-06-10"}

	// The store persists the aggregate as one JSON document; the encoded
	// form must carry the full progression state back unchanged.
	snapshot, err := json.Marshal(user)
	require.NoError(t, err)

	var restored domain.User
	require.NoError(t, json.Unmarshal(snapshot, &restored))

	assert.Equal(t, user.ID, restored.ID)
	assert.Equal(t, user.XPByDomain, restored.XPByDomain)
	assert.Equal(t, user.CompletedCardsByDate, restored.CompletedCardsByDate)
	assert.Equal(t, user.CompletedSkillNodes, restored.CompletedSkillNodes)
	assert.Equal(t, user.RerollsByDate, restored.RerollsByDate)
	require.NotNil(t, restored.LastXPGain)
	assert.Equal(t, user.LastXPGain.Amount, restored.LastXPGain.Amount)
}

func TestNewPostgresUserStorePanicsOnNilDB(t *testing.T) {
	t.Parallel() // Enable parallel execution

	assert.Panics(t, func() {
		NewPostgresUserStore(nil, nil)
	})
}
