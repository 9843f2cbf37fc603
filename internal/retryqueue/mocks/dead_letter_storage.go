package mocks

import (
	"context"

	"github.com/gabapcia/walletmon/internal/retryqueue"
	"github.com/stretchr/testify/mock"
)

// DeadLetterStorage is a mock type for the DeadLetterStorage type
type DeadLetterStorage struct {
	mock.Mock
}

type DeadLetterStorage_Expecter struct {
	mock *mock.Mock
}

func (_m *DeadLetterStorage) EXPECT() *DeadLetterStorage_Expecter {
	return &DeadLetterStorage_Expecter{mock: &_m.Mock}
}

// ListDeadLetters provides a mock function with given fields: ctx, limit
func (_m *DeadLetterStorage) ListDeadLetters(ctx context.Context, limit int64) ([]retryqueue.DeadLetter, error) {
	ret := _m.Called(ctx, limit)

	if len(ret) == 0 {
		panic("no return value specified for ListDeadLetters")
	}

	var r0 []retryqueue.DeadLetter
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]retryqueue.DeadLetter, error)); ok {
		return rf(ctx, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []retryqueue.DeadLetter); ok {
		r0 = rf(ctx, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]retryqueue.DeadLetter)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeadLetterStorage_ListDeadLetters_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListDeadLetters'
type DeadLetterStorage_ListDeadLetters_Call struct {
	*mock.Call
}

// ListDeadLetters is a helper method to define mock.On call
//   - ctx context.Context
//   - limit int64
func (_e *DeadLetterStorage_Expecter) ListDeadLetters(ctx interface{}, limit interface{}) *DeadLetterStorage_ListDeadLetters_Call {
	return &DeadLetterStorage_ListDeadLetters_Call{Call: _e.mock.On("ListDeadLetters", ctx, limit)}
}

func (_c *DeadLetterStorage_ListDeadLetters_Call) Run(run func(ctx context.Context, limit int64)) *DeadLetterStorage_ListDeadLetters_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *DeadLetterStorage_ListDeadLetters_Call) Return(_a0 []retryqueue.DeadLetter, _a1 error) *DeadLetterStorage_ListDeadLetters_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *DeadLetterStorage_ListDeadLetters_Call) RunAndReturn(run func(context.Context, int64) ([]retryqueue.DeadLetter, error)) *DeadLetterStorage_ListDeadLetters_Call {
	_c.Call.Return(run)
	return _c
}

// SaveDeadLetter provides a mock function with given fields: ctx, dl
func (_m *DeadLetterStorage) SaveDeadLetter(ctx context.Context, dl retryqueue.DeadLetter) error {
	ret := _m.Called(ctx, dl)

	if len(ret) == 0 {
		panic("no return value specified for SaveDeadLetter")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, retryqueue.DeadLetter) error); ok {
		r0 = rf(ctx, dl)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// DeadLetterStorage_SaveDeadLetter_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SaveDeadLetter'
type DeadLetterStorage_SaveDeadLetter_Call struct {
	*mock.Call
}

// SaveDeadLetter is a helper method to define mock.On call
//   - ctx context.Context
//   - dl retryqueue.DeadLetter
func (_e *DeadLetterStorage_Expecter) SaveDeadLetter(ctx interface{}, dl interface{}) *DeadLetterStorage_SaveDeadLetter_Call {
	return &DeadLetterStorage_SaveDeadLetter_Call{Call: _e.mock.On("SaveDeadLetter", ctx, dl)}
}

func (_c *DeadLetterStorage_SaveDeadLetter_Call) Run(run func(ctx context.Context, dl retryqueue.DeadLetter)) *DeadLetterStorage_SaveDeadLetter_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(retryqueue.DeadLetter))
	})
	return _c
}

func (_c *DeadLetterStorage_SaveDeadLetter_Call) Return(_a0 error) *DeadLetterStorage_SaveDeadLetter_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *DeadLetterStorage_SaveDeadLetter_Call) RunAndReturn(run func(context.Context, retryqueue.DeadLetter) error) *DeadLetterStorage_SaveDeadLetter_Call {
	_c.Call.Return(run)
	return _c
}

// NewDeadLetterStorage creates a new instance of DeadLetterStorage. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewDeadLetterStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *DeadLetterStorage {
	mock := &DeadLetterStorage{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

