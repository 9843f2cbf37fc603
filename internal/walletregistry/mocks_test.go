package walletregistry

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// WalletStorageMock is a mock type for the WalletStorage type
type WalletStorageMock struct {
	mock.Mock
}

type WalletStorageMock_Expecter struct {
	mock *mock.Mock
}

func (_m *WalletStorageMock) EXPECT() *WalletStorageMock_Expecter {
	return &WalletStorageMock_Expecter{mock: &_m.Mock}
}

// DeleteWallet provides a mock function with given fields: ctx, address
func (_m *WalletStorageMock) DeleteWallet(ctx context.Context, address string) error {
	ret := _m.Called(ctx, address)

	if len(ret) == 0 {
		panic("no return value specified for DeleteWallet")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, address)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// WalletStorageMock_DeleteWallet_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteWallet'
type WalletStorageMock_DeleteWallet_Call struct {
	*mock.Call
}

// DeleteWallet is a helper method to define mock.On call
//   - ctx context.Context
//   - address string
func (_e *WalletStorageMock_Expecter) DeleteWallet(ctx interface{}, address interface{}) *WalletStorageMock_DeleteWallet_Call {
	return &WalletStorageMock_DeleteWallet_Call{Call: _e.mock.On("DeleteWallet", ctx, address)}
}

func (_c *WalletStorageMock_DeleteWallet_Call) Run(run func(ctx context.Context, address string)) *WalletStorageMock_DeleteWallet_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *WalletStorageMock_DeleteWallet_Call) Return(_a0 error) *WalletStorageMock_DeleteWallet_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *WalletStorageMock_DeleteWallet_Call) RunAndReturn(run func(context.Context, string) error) *WalletStorageMock_DeleteWallet_Call {
	_c.Call.Return(run)
	return _c
}

// GetWallet provides a mock function with given fields: ctx, address
func (_m *WalletStorageMock) GetWallet(ctx context.Context, address string) (Wallet, error) {
	ret := _m.Called(ctx, address)

	if len(ret) == 0 {
		panic("no return value specified for GetWallet")
	}

	var r0 Wallet
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (Wallet, error)); ok {
		return rf(ctx, address)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) Wallet); ok {
		r0 = rf(ctx, address)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(Wallet)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, address)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// WalletStorageMock_GetWallet_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetWallet'
type WalletStorageMock_GetWallet_Call struct {
	*mock.Call
}

// GetWallet is a helper method to define mock.On call
//   - ctx context.Context
//   - address string
func (_e *WalletStorageMock_Expecter) GetWallet(ctx interface{}, address interface{}) *WalletStorageMock_GetWallet_Call {
	return &WalletStorageMock_GetWallet_Call{Call: _e.mock.On("GetWallet", ctx, address)}
}

func (_c *WalletStorageMock_GetWallet_Call) Run(run func(ctx context.Context, address string)) *WalletStorageMock_GetWallet_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *WalletStorageMock_GetWallet_Call) Return(_a0 Wallet, _a1 error) *WalletStorageMock_GetWallet_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *WalletStorageMock_GetWallet_Call) RunAndReturn(run func(context.Context, string) (Wallet, error)) *WalletStorageMock_GetWallet_Call {
	_c.Call.Return(run)
	return _c
}

// ListWallets provides a mock function with given fields: ctx
func (_m *WalletStorageMock) ListWallets(ctx context.Context) ([]Wallet, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListWallets")
	}

	var r0 []Wallet
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]Wallet, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []Wallet); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]Wallet)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// WalletStorageMock_ListWallets_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListWallets'
type WalletStorageMock_ListWallets_Call struct {
	*mock.Call
}

// ListWallets is a helper method to define mock.On call
//   - ctx context.Context
func (_e *WalletStorageMock_Expecter) ListWallets(ctx interface{}) *WalletStorageMock_ListWallets_Call {
	return &WalletStorageMock_ListWallets_Call{Call: _e.mock.On("ListWallets", ctx)}
}

func (_c *WalletStorageMock_ListWallets_Call) Run(run func(ctx context.Context)) *WalletStorageMock_ListWallets_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *WalletStorageMock_ListWallets_Call) Return(_a0 []Wallet, _a1 error) *WalletStorageMock_ListWallets_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *WalletStorageMock_ListWallets_Call) RunAndReturn(run func(context.Context) ([]Wallet, error)) *WalletStorageMock_ListWallets_Call {
	_c.Call.Return(run)
	return _c
}

// SaveWallet provides a mock function with given fields: ctx, wallet
func (_m *WalletStorageMock) SaveWallet(ctx context.Context, wallet Wallet) error {
	ret := _m.Called(ctx, wallet)

	if len(ret) == 0 {
		panic("no return value specified for SaveWallet")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, Wallet) error); ok {
		r0 = rf(ctx, wallet)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// WalletStorageMock_SaveWallet_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SaveWallet'
type WalletStorageMock_SaveWallet_Call struct {
	*mock.Call
}

// SaveWallet is a helper method to define mock.On call
//   - ctx context.Context
//   - wallet Wallet
func (_e *WalletStorageMock_Expecter) SaveWallet(ctx interface{}, wallet interface{}) *WalletStorageMock_SaveWallet_Call {
	return &WalletStorageMock_SaveWallet_Call{Call: _e.mock.On("SaveWallet", ctx, wallet)}
}

func (_c *WalletStorageMock_SaveWallet_Call) Run(run func(ctx context.Context, wallet Wallet)) *WalletStorageMock_SaveWallet_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(Wallet))
	})
	return _c
}

func (_c *WalletStorageMock_SaveWallet_Call) Return(_a0 error) *WalletStorageMock_SaveWallet_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *WalletStorageMock_SaveWallet_Call) RunAndReturn(run func(context.Context, Wallet) error) *WalletStorageMock_SaveWallet_Call {
	_c.Call.Return(run)
	return _c
}

// NewWalletStorageMock creates a new instance of WalletStorageMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewWalletStorageMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *WalletStorageMock {
	mock := &WalletStorageMock{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

