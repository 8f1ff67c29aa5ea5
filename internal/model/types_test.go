package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleMember.Valid())
	assert.False(t, Role("SUPERUSER").Valid())
	assert.False(t, Role("admin").Valid(), "角色区分大小写")
}

func TestTeamStatusValid(t *testing.T) {
	assert.True(t, TeamStatusActive.Valid())
	assert.True(t, TeamStatusInactive.Valid())
	assert.False(t, TeamStatus("Archived").Valid())
}

func TestProjectStatusValid(t *testing.T) {
	for _, status := range ProjectStatuses() {
		assert.True(t, status.Valid(), string(status))
	}
	assert.False(t, ProjectStatus("Done").Valid())
	assert.False(t, ProjectStatus("in progress").Valid(), "状态区分大小写")
}

func TestTeamHasMember(t *testing.T) {
	team := &Team{
		Members: []*User{
			{BaseModel: BaseModel{ID: 1}},
			{BaseModel: BaseModel{ID: 2}},
		},
	}
	assert.True(t, team.HasMember(1))
	assert.False(t, team.HasMember(3))
}
