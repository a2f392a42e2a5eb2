package domain

import (
	"context"
	"testing"
	"time"

	"staff-api/internal/entities"
	"staff-api/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) ListEmployees(ctx context.Context, role *entities.Role) ([]entities.Employee, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Employee), args.Error(1)
}

func (m *repoMock) GetEmployee(ctx context.Context, id int64) (*entities.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Employee), args.Error(1)
}

func (m *repoMock) CreateEmployee(ctx context.Context, employee entities.Employee) (*entities.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Employee), args.Error(1)
}

func (m *repoMock) UpdateEmployee(ctx context.Context, id int64, patch entities.EmployeePatch) (*entities.Employee, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Employee), args.Error(1)
}

func (m *repoMock) DeleteEmployee(ctx context.Context, id int64) (*entities.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Employee), args.Error(1)
}

type usersMock struct{ mock.Mock }

var _ repository.UserInterface = (*usersMock)(nil)

func (m *usersMock) ListUsers(ctx context.Context, role *entities.Role) ([]entities.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *usersMock) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *usersMock) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *usersMock) UpdateUser(ctx context.Context, id int64, patch entities.UserPatch) (*entities.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *usersMock) DeleteUser(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func newUsecase(users *usersMock, repo *repoMock) *Usecase {
	return New(zap.NewNop().Sugar(), users, repo, time.Second)
}

func TestUsecase_CreateEmployeeValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(&usersMock{}, repo)

	cases := []entities.Employee{
		{Email: "a@example.com", Role: entities.RoleIntern},
		{Name: "Ada", Role: entities.RoleIntern},
		{Name: "Ada", Email: "a@example.com", Role: "CEO"},
		{Name: "   ", Email: "a@example.com", Role: entities.RoleIntern},
	}
	for _, e := range cases {
		_, err := uc.CreateEmployee(context.Background(), e)
		require.ErrorIs(t, err, entities.ErrInvalidArgument)
	}
	repo.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
}

func TestUsecase_CreateEmployeeDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(&usersMock{}, repo)

	expected := &entities.Employee{ID: 1, Name: "Ada", Email: "ada@example.com", Role: entities.RoleAdmin}
	repo.On("CreateEmployee", mock.Anything, mock.MatchedBy(func(e entities.Employee) bool {
		return e.ID == 0 && e.Email == expected.Email
	})).Return(expected, nil)

	got, err := uc.CreateEmployee(context.Background(), entities.Employee{ID: 77, Name: "Ada", Email: "ada@example.com", Role: entities.RoleAdmin})
	require.NoError(t, err)
	require.Equal(t, expected, got)
	repo.AssertExpectations(t)
}

func TestUsecase_EmployeesAppliesTimeout(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(&usersMock{}, repo)

	repo.On("ListEmployees", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), (*entities.Role)(nil)).Return([]entities.Employee{}, nil)

	_, err := uc.Employees(context.Background(), nil)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_RoleFilterValidation(t *testing.T) {
	users := &usersMock{}
	repo := &repoMock{}
	uc := newUsecase(users, repo)

	bogus := entities.Role("CEO")
	_, err := uc.Users(context.Background(), &bogus)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	_, err = uc.Employees(context.Background(), &bogus)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	users.AssertNotCalled(t, "ListUsers", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "ListEmployees", mock.Anything, mock.Anything)
}

func TestUsecase_IDValidation(t *testing.T) {
	users := &usersMock{}
	repo := &repoMock{}
	uc := newUsecase(users, repo)
	ctx := context.Background()

	_, err := uc.User(ctx, 0)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	_, err = uc.DeleteUser(ctx, -1)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	_, err = uc.Employee(ctx, 0)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	_, err = uc.UpdateEmployee(ctx, 0, entities.EmployeePatch{})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_UpdateUserRejectsEmptyName(t *testing.T) {
	users := &usersMock{}
	uc := newUsecase(users, &repoMock{})

	empty := ""
	_, err := uc.UpdateUser(context.Background(), 1, entities.UserPatch{Name: &empty})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	users.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_UpdateUserPassesNotFound(t *testing.T) {
	users := &usersMock{}
	uc := newUsecase(users, &repoMock{})

	name := "Grace"
	patch := entities.UserPatch{Name: &name}
	users.On("UpdateUser", mock.Anything, int64(5), patch).Return(nil, entities.ErrUserNotFound)

	_, err := uc.UpdateUser(context.Background(), 5, patch)
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	users.AssertExpectations(t)
}

func TestUsecase_RequestContextIsParent(t *testing.T) {
	users := &usersMock{}
	uc := newUsecase(users, &repoMock{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	users.On("GetUser", mock.MatchedBy(func(c context.Context) bool {
		return c.Err() != nil
	}), int64(3)).Return(nil, context.Canceled)

	_, err := uc.User(ctx, 3)
	require.ErrorIs(t, err, context.Canceled)
	users.AssertExpectations(t)
}
