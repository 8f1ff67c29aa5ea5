package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamhub/internal/dto"
	"teamhub/internal/model"
	"teamhub/internal/pkg/auth"
	pkgErrors "teamhub/pkg/errors"
)

func memberIDs(team *model.Team) []int64 {
	return lo.Map(team.Members, func(u *model.User, _ int) int64 { return u.ID })
}

func TestTeamCreate(t *testing.T) {
	svc := NewTeamService(newFakeTeamRepo(), newFakeUserRepo())

	team, err := svc.Create(&dto.CreateTeamRequest{
		Name:        "Platform",
		Description: "平台团队",
		Slogan:      "Ship it",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TeamStatusActive, team.Status)
	assert.NotZero(t, team.ID)
}

func TestTeamCreateDuplicateName(t *testing.T) {
	teamRepo := newFakeTeamRepo()
	teamRepo.add("Platform")
	svc := NewTeamService(teamRepo, newFakeUserRepo())

	_, err := svc.Create(&dto.CreateTeamRequest{
		Name:        "Platform",
		Description: "重名",
		Slogan:      "Ship it",
	})
	require.Error(t, err)
	assert.Equal(t, pkgErrors.CodeBadUserInput, pkgErrors.CodeOf(err))
	assert.Contains(t, err.Error(), "Team Platform already exists")
}

func TestTeamAssignUsersReplaces(t *testing.T) {
	userRepo := newFakeUserRepo()
	u1 := userRepo.add("u1", "u1@example.com", model.RoleMember)
	u2 := userRepo.add("u2", "u2@example.com", model.RoleMember)
	u3 := userRepo.add("u3", "u3@example.com", model.RoleMember)

	teamRepo := newFakeTeamRepo()
	team := teamRepo.add("Platform", u1, u2)

	svc := NewTeamService(teamRepo, userRepo)

	// 覆盖语义: [u1,u2] → [u1,u3], u2被移除
	updated, err := svc.AssignUsers(&dto.AssignUsersRequest{
		TeamID:  team.ID,
		UserIDs: []int64{u1.ID, u3.ID},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{u1.ID, u3.ID}, memberIDs(updated))

	// 空列表清空成员
	updated, err = svc.AssignUsers(&dto.AssignUsersRequest{
		TeamID:  team.ID,
		UserIDs: []int64{},
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Members)
}

func TestTeamAssignUsersDeduplicates(t *testing.T) {
	userRepo := newFakeUserRepo()
	u1 := userRepo.add("u1", "u1@example.com", model.RoleMember)

	teamRepo := newFakeTeamRepo()
	team := teamRepo.add("Platform")

	svc := NewTeamService(teamRepo, userRepo)

	updated, err := svc.AssignUsers(&dto.AssignUsersRequest{
		TeamID:  team.ID,
		UserIDs: []int64{u1.ID, u1.ID, u1.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{u1.ID}, memberIDs(updated))
}

func TestTeamAssignUsersUnknownUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	u1 := userRepo.add("u1", "u1@example.com", model.RoleMember)

	teamRepo := newFakeTeamRepo()
	team := teamRepo.add("Platform", u1)

	svc := NewTeamService(teamRepo, userRepo)

	_, err := svc.AssignUsers(&dto.AssignUsersRequest{
		TeamID:  team.ID,
		UserIDs: []int64{u1.ID, 999},
	})
	require.Error(t, err)
	assert.Equal(t, pkgErrors.CodeNotFound, pkgErrors.CodeOf(err))
	assert.Equal(t, []int64{u1.ID}, memberIDs(team), "失败不改动既有成员")
}

func TestTeamAssignUsersUnknownTeam(t *testing.T) {
	svc := NewTeamService(newFakeTeamRepo(), newFakeUserRepo())

	_, err := svc.AssignUsers(&dto.AssignUsersRequest{TeamID: 999, UserIDs: []int64{}})
	require.Error(t, err)
	assert.Equal(t, pkgErrors.CodeNotFound, pkgErrors.CodeOf(err))
}

func TestTeamUpdateStatus(t *testing.T) {
	userRepo := newFakeUserRepo()
	member := userRepo.add("member", "member@example.com", model.RoleMember)
	outsider := userRepo.add("outsider", "outsider@example.com", model.RoleMember)

	teamRepo := newFakeTeamRepo()
	team := teamRepo.add("Platform", member)

	svc := NewTeamService(teamRepo, userRepo)

	// 团队成员可改状态
	updated, err := svc.UpdateStatus(
		&auth.Identity{UserID: member.ID, Role: model.RoleMember},
		&dto.UpdateTeamStatusRequest{TeamID: team.ID, Status: "Inactive"},
	)
	require.NoError(t, err)
	assert.Equal(t, model.TeamStatusInactive, updated.Status)

	// 非成员被拒, 管理员身份也不豁免
	_, err = svc.UpdateStatus(
		&auth.Identity{UserID: outsider.ID, Role: model.RoleAdmin},
		&dto.UpdateTeamStatusRequest{TeamID: team.ID, Status: "Active"},
	)
	require.Error(t, err)
	assert.Equal(t, pkgErrors.CodeForbidden, pkgErrors.CodeOf(err))
	assert.Equal(t, model.TeamStatusInactive, team.Status, "拒绝后状态不变")
}

func TestTeamUpdateStatusInvalid(t *testing.T) {
	userRepo := newFakeUserRepo()
	member := userRepo.add("member", "member@example.com", model.RoleMember)

	teamRepo := newFakeTeamRepo()
	team := teamRepo.add("Platform", member)

	svc := NewTeamService(teamRepo, userRepo)

	_, err := svc.UpdateStatus(
		&auth.Identity{UserID: member.ID, Role: model.RoleMember},
		&dto.UpdateTeamStatusRequest{TeamID: team.ID, Status: "Archived"},
	)
	require.Error(t, err)
	assert.Equal(t, pkgErrors.CodeBadUserInput, pkgErrors.CodeOf(err))
}

func TestTeamListByMember(t *testing.T) {
	userRepo := newFakeUserRepo()
	u1 := userRepo.add("u1", "u1@example.com", model.RoleMember)
	u2 := userRepo.add("u2", "u2@example.com", model.RoleMember)

	teamRepo := newFakeTeamRepo()
	t1 := teamRepo.add("Platform", u1)
	teamRepo.add("Infra", u2)
	t3 := teamRepo.add("Data", u1, u2)

	svc := NewTeamService(teamRepo, userRepo)

	teams, err := svc.ListByMember(u1.ID)
	require.NoError(t, err)
	ids := lo.Map(teams, func(team *model.Team, _ int) int64 { return team.ID })
	assert.ElementsMatch(t, []int64{t1.ID, t3.ID}, ids)
}
