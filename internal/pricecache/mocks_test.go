package pricecache

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// PriceProviderMock is a mock type for the PriceProvider type
type PriceProviderMock struct {
	mock.Mock
}

type PriceProviderMock_Expecter struct {
	mock *mock.Mock
}

func (_m *PriceProviderMock) EXPECT() *PriceProviderMock_Expecter {
	return &PriceProviderMock_Expecter{mock: &_m.Mock}
}

// NativeRate provides a mock function with given fields: ctx, coinID, currency
func (_m *PriceProviderMock) NativeRate(ctx context.Context, coinID string, currency string) (decimal.Decimal, error) {
	ret := _m.Called(ctx, coinID, currency)

	if len(ret) == 0 {
		panic("no return value specified for NativeRate")
	}

	var r0 decimal.Decimal
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (decimal.Decimal, error)); ok {
		return rf(ctx, coinID, currency)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) decimal.Decimal); ok {
		r0 = rf(ctx, coinID, currency)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(decimal.Decimal)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, coinID, currency)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PriceProviderMock_NativeRate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NativeRate'
type PriceProviderMock_NativeRate_Call struct {
	*mock.Call
}

// NativeRate is a helper method to define mock.On call
//   - ctx context.Context
//   - coinID string
//   - currency string
func (_e *PriceProviderMock_Expecter) NativeRate(ctx interface{}, coinID interface{}, currency interface{}) *PriceProviderMock_NativeRate_Call {
	return &PriceProviderMock_NativeRate_Call{Call: _e.mock.On("NativeRate", ctx, coinID, currency)}
}

func (_c *PriceProviderMock_NativeRate_Call) Run(run func(ctx context.Context, coinID string, currency string)) *PriceProviderMock_NativeRate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *PriceProviderMock_NativeRate_Call) Return(_a0 decimal.Decimal, _a1 error) *PriceProviderMock_NativeRate_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *PriceProviderMock_NativeRate_Call) RunAndReturn(run func(context.Context, string, string) (decimal.Decimal, error)) *PriceProviderMock_NativeRate_Call {
	_c.Call.Return(run)
	return _c
}

// TokenPrice provides a mock function with given fields: ctx, token, currency
func (_m *PriceProviderMock) TokenPrice(ctx context.Context, token string, currency string) (decimal.Decimal, error) {
	ret := _m.Called(ctx, token, currency)

	if len(ret) == 0 {
		panic("no return value specified for TokenPrice")
	}

	var r0 decimal.Decimal
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (decimal.Decimal, error)); ok {
		return rf(ctx, token, currency)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) decimal.Decimal); ok {
		r0 = rf(ctx, token, currency)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(decimal.Decimal)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, token, currency)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PriceProviderMock_TokenPrice_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'TokenPrice'
type PriceProviderMock_TokenPrice_Call struct {
	*mock.Call
}

// TokenPrice is a helper method to define mock.On call
//   - ctx context.Context
//   - token string
//   - currency string
func (_e *PriceProviderMock_Expecter) TokenPrice(ctx interface{}, token interface{}, currency interface{}) *PriceProviderMock_TokenPrice_Call {
	return &PriceProviderMock_TokenPrice_Call{Call: _e.mock.On("TokenPrice", ctx, token, currency)}
}

func (_c *PriceProviderMock_TokenPrice_Call) Run(run func(ctx context.Context, token string, currency string)) *PriceProviderMock_TokenPrice_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *PriceProviderMock_TokenPrice_Call) Return(_a0 decimal.Decimal, _a1 error) *PriceProviderMock_TokenPrice_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *PriceProviderMock_TokenPrice_Call) RunAndReturn(run func(context.Context, string, string) (decimal.Decimal, error)) *PriceProviderMock_TokenPrice_Call {
	_c.Call.Return(run)
	return _c
}

// NewPriceProviderMock creates a new instance of PriceProviderMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewPriceProviderMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *PriceProviderMock {
	mock := &PriceProviderMock{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

