package identity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	_, err = ParseRole("Admin")
	assert.Error(t, err)
	_, err = ParseRole("")
	assert.Error(t, err)
}

func TestRoleSatisfies(t *testing.T) {
	assert.True(t, RoleAdmin.Satisfies(RoleAdmin))
	assert.True(t, RoleAdmin.Satisfies(RoleUser))
	assert.True(t, RoleUser.Satisfies(RoleUser))
	assert.False(t, RoleUser.Satisfies(RoleAdmin))
	assert.False(t, Role("superuser").Satisfies(RoleUser))
	assert.False(t, RoleAdmin.Satisfies(Role("typo")))
}

func TestRoleUnmarshalJSON(t *testing.T) {
	var payload struct {
		Role Role `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"role":"user"}`), &payload))
	assert.Equal(t, RoleUser, payload.Role)

	assert.Error(t, json.Unmarshal([]byte(`{"role":"owner"}`), &payload))
}
