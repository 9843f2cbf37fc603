package mocks

import (
	"context"

	"github.com/gabapcia/walletmon/internal/walletregistry"
	"github.com/stretchr/testify/mock"
)

// Service is a mock type for the Service type
type Service struct {
	mock.Mock
}

type Service_Expecter struct {
	mock *mock.Mock
}

func (_m *Service) EXPECT() *Service_Expecter {
	return &Service_Expecter{mock: &_m.Mock}
}

// ListWallets provides a mock function with given fields: ctx
func (_m *Service) ListWallets(ctx context.Context) ([]walletregistry.Wallet, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListWallets")
	}

	var r0 []walletregistry.Wallet
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]walletregistry.Wallet, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []walletregistry.Wallet); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]walletregistry.Wallet)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Service_ListWallets_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListWallets'
type Service_ListWallets_Call struct {
	*mock.Call
}

// ListWallets is a helper method to define mock.On call
//   - ctx context.Context
func (_e *Service_Expecter) ListWallets(ctx interface{}) *Service_ListWallets_Call {
	return &Service_ListWallets_Call{Call: _e.mock.On("ListWallets", ctx)}
}

func (_c *Service_ListWallets_Call) Run(run func(ctx context.Context)) *Service_ListWallets_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *Service_ListWallets_Call) Return(_a0 []walletregistry.Wallet, _a1 error) *Service_ListWallets_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *Service_ListWallets_Call) RunAndReturn(run func(context.Context) ([]walletregistry.Wallet, error)) *Service_ListWallets_Call {
	_c.Call.Return(run)
	return _c
}

// StartWatching provides a mock function with given fields: ctx, wallet
func (_m *Service) StartWatching(ctx context.Context, wallet walletregistry.Wallet) error {
	ret := _m.Called(ctx, wallet)

	if len(ret) == 0 {
		panic("no return value specified for StartWatching")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, walletregistry.Wallet) error); ok {
		r0 = rf(ctx, wallet)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Service_StartWatching_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'StartWatching'
type Service_StartWatching_Call struct {
	*mock.Call
}

// StartWatching is a helper method to define mock.On call
//   - ctx context.Context
//   - wallet walletregistry.Wallet
func (_e *Service_Expecter) StartWatching(ctx interface{}, wallet interface{}) *Service_StartWatching_Call {
	return &Service_StartWatching_Call{Call: _e.mock.On("StartWatching", ctx, wallet)}
}

func (_c *Service_StartWatching_Call) Run(run func(ctx context.Context, wallet walletregistry.Wallet)) *Service_StartWatching_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(walletregistry.Wallet))
	})
	return _c
}

func (_c *Service_StartWatching_Call) Return(_a0 error) *Service_StartWatching_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *Service_StartWatching_Call) RunAndReturn(run func(context.Context, walletregistry.Wallet) error) *Service_StartWatching_Call {
	_c.Call.Return(run)
	return _c
}

// StopWatching provides a mock function with given fields: ctx, address
func (_m *Service) StopWatching(ctx context.Context, address string) error {
	ret := _m.Called(ctx, address)

	if len(ret) == 0 {
		panic("no return value specified for StopWatching")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, address)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Service_StopWatching_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'StopWatching'
type Service_StopWatching_Call struct {
	*mock.Call
}

// StopWatching is a helper method to define mock.On call
//   - ctx context.Context
//   - address string
func (_e *Service_Expecter) StopWatching(ctx interface{}, address interface{}) *Service_StopWatching_Call {
	return &Service_StopWatching_Call{Call: _e.mock.On("StopWatching", ctx, address)}
}

func (_c *Service_StopWatching_Call) Run(run func(ctx context.Context, address string)) *Service_StopWatching_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *Service_StopWatching_Call) Return(_a0 error) *Service_StopWatching_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *Service_StopWatching_Call) RunAndReturn(run func(context.Context, string) error) *Service_StopWatching_Call {
	_c.Call.Return(run)
	return _c
}

// NewService creates a new instance of Service. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewService(t interface {
	mock.TestingT
	Cleanup(func())
}) *Service {
	mock := &Service{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

