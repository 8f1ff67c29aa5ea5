package service

import (
	"gorm.io/gorm"

	"teamhub/internal/model"
	"teamhub/internal/repository"
	pkgErrors "teamhub/pkg/errors"
)

// 内存版repository, 测试用

type fakeUserRepo struct {
	seq   int64
	users map[int64]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*model.User)}
}

func (r *fakeUserRepo) add(username, email string, role model.Role) *model.User {
	r.seq++
	user := &model.User{
		BaseModel: model.BaseModel{ID: r.seq},
		Username:  username,
		Email:     email,
		Password:  "$2a$10$fake",
		Role:      role,
	}
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) Create(user *model.User) error {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return pkgErrors.Wrap(pkgErrors.CodeBadUserInput, "Username or email already exists", gorm.ErrDuplicatedKey)
		}
	}
	r.seq++
	user.ID = r.seq
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id int64) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pkgErrors.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, pkgErrors.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsernameOrEmail(username, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Username == username || user.Email == email {
			return user, nil
		}
	}
	return nil, pkgErrors.ErrUserNotFound
}

func (r *fakeUserRepo) FindByIDs(ids []int64) ([]*model.User, error) {
	users := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) ListAll() ([]*model.User, error) {
	users := make([]*model.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pkgErrors.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

type fakeTeamRepo struct {
	seq   int64
	teams map[int64]*model.Team
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[int64]*model.Team)}
}

func (r *fakeTeamRepo) add(name string, members ...*model.User) *model.Team {
	r.seq++
	team := &model.Team{
		BaseModel: model.BaseModel{ID: r.seq},
		Name:      name,
		Status:    model.TeamStatusActive,
		Members:   members,
	}
	r.teams[team.ID] = team
	return team
}

func (r *fakeTeamRepo) Create(team *model.Team) error {
	r.seq++
	team.ID = r.seq
	r.teams[team.ID] = team
	return nil
}

func (r *fakeTeamRepo) FindByID(id int64, opts ...repository.QueryOption) (*model.Team, error) {
	team, ok := r.teams[id]
	if !ok {
		return nil, pkgErrors.ErrTeamNotFound
	}
	return team, nil
}

func (r *fakeTeamRepo) FindByName(name string) (*model.Team, error) {
	for _, team := range r.teams {
		if team.Name == name {
			return team, nil
		}
	}
	return nil, pkgErrors.ErrTeamNotFound
}

func (r *fakeTeamRepo) FindByIDs(ids []int64) ([]*model.Team, error) {
	teams := make([]*model.Team, 0, len(ids))
	for _, id := range ids {
		if team, ok := r.teams[id]; ok {
			teams = append(teams, team)
		}
	}
	return teams, nil
}

func (r *fakeTeamRepo) ListAll(opts ...repository.QueryOption) ([]*model.Team, error) {
	teams := make([]*model.Team, 0, len(r.teams))
	for _, team := range r.teams {
		teams = append(teams, team)
	}
	return teams, nil
}

func (r *fakeTeamRepo) ListByMember(userID int64, opts ...repository.QueryOption) ([]*model.Team, error) {
	teams := make([]*model.Team, 0)
	for _, team := range r.teams {
		if team.HasMember(userID) {
			teams = append(teams, team)
		}
	}
	return teams, nil
}

func (r *fakeTeamRepo) Update(team *model.Team) error {
	if _, ok := r.teams[team.ID]; !ok {
		return pkgErrors.ErrTeamNotFound
	}
	r.teams[team.ID] = team
	return nil
}

func (r *fakeTeamRepo) UpdateStatus(id int64, status model.TeamStatus) error {
	team, ok := r.teams[id]
	if !ok {
		return pkgErrors.ErrTeamNotFound
	}
	team.Status = status
	return nil
}

func (r *fakeTeamRepo) ReplaceMembers(team *model.Team, users []*model.User) error {
	stored, ok := r.teams[team.ID]
	if !ok {
		return pkgErrors.ErrTeamNotFound
	}
	stored.Members = users
	return nil
}

type fakeProjectRepo struct {
	seq      int64
	projects map[int64]*model.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[int64]*model.Project)}
}

func (r *fakeProjectRepo) add(name string, teams ...*model.Team) *model.Project {
	r.seq++
	project := &model.Project{
		BaseModel: model.BaseModel{ID: r.seq},
		Name:      name,
		Status:    model.ProjectStatusPending,
		Teams:     teams,
	}
	r.projects[project.ID] = project
	return project
}

func (r *fakeProjectRepo) Create(project *model.Project) error {
	r.seq++
	project.ID = r.seq
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) FindByID(id int64, opts ...repository.QueryOption) (*model.Project, error) {
	project, ok := r.projects[id]
	if !ok {
		return nil, pkgErrors.ErrProjectNotFound
	}
	return project, nil
}

func (r *fakeProjectRepo) FindByName(name string) (*model.Project, error) {
	for _, project := range r.projects {
		if project.Name == name {
			return project, nil
		}
	}
	return nil, pkgErrors.ErrProjectNotFound
}

func (r *fakeProjectRepo) ListAll(opts ...repository.QueryOption) ([]*model.Project, error) {
	projects := make([]*model.Project, 0, len(r.projects))
	for _, project := range r.projects {
		projects = append(projects, project)
	}
	return projects, nil
}

func (r *fakeProjectRepo) ListByTeamIDs(teamIDs []int64, opts ...repository.QueryOption) ([]*model.Project, error) {
	wanted := make(map[int64]bool, len(teamIDs))
	for _, id := range teamIDs {
		wanted[id] = true
	}
	projects := make([]*model.Project, 0)
	for _, project := range r.projects {
		for _, team := range project.Teams {
			if wanted[team.ID] {
				projects = append(projects, project)
				break
			}
		}
	}
	return projects, nil
}

func (r *fakeProjectRepo) Update(project *model.Project) error {
	if _, ok := r.projects[project.ID]; !ok {
		return pkgErrors.ErrProjectNotFound
	}
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) UpdateStatus(id int64, status model.ProjectStatus) error {
	project, ok := r.projects[id]
	if !ok {
		return pkgErrors.ErrProjectNotFound
	}
	project.Status = status
	return nil
}

func (r *fakeProjectRepo) ReplaceTeams(project *model.Project, teams []*model.Team) error {
	stored, ok := r.projects[project.ID]
	if !ok {
		return pkgErrors.ErrProjectNotFound
	}
	stored.Teams = teams
	return nil
}
