package monitor

import (
	"context"

	"github.com/gabapcia/walletmon/internal/activity"
	"github.com/stretchr/testify/mock"
)

// DecoderMock is a mock type for the Decoder type
type DecoderMock struct {
	mock.Mock
}

type DecoderMock_Expecter struct {
	mock *mock.Mock
}

func (_m *DecoderMock) EXPECT() *DecoderMock_Expecter {
	return &DecoderMock_Expecter{mock: &_m.Mock}
}

// Decode provides a mock function with given fields: ctx, txHash, subject
func (_m *DecoderMock) Decode(ctx context.Context, txHash string, subject string) (*activity.Activity, error) {
	ret := _m.Called(ctx, txHash, subject)

	if len(ret) == 0 {
		panic("no return value specified for Decode")
	}

	var r0 *activity.Activity
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*activity.Activity, error)); ok {
		return rf(ctx, txHash, subject)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *activity.Activity); ok {
		r0 = rf(ctx, txHash, subject)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*activity.Activity)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, txHash, subject)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DecoderMock_Decode_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Decode'
type DecoderMock_Decode_Call struct {
	*mock.Call
}

// Decode is a helper method to define mock.On call
//   - ctx context.Context
//   - txHash string
//   - subject string
func (_e *DecoderMock_Expecter) Decode(ctx interface{}, txHash interface{}, subject interface{}) *DecoderMock_Decode_Call {
	return &DecoderMock_Decode_Call{Call: _e.mock.On("Decode", ctx, txHash, subject)}
}

func (_c *DecoderMock_Decode_Call) Run(run func(ctx context.Context, txHash string, subject string)) *DecoderMock_Decode_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *DecoderMock_Decode_Call) Return(_a0 *activity.Activity, _a1 error) *DecoderMock_Decode_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *DecoderMock_Decode_Call) RunAndReturn(run func(context.Context, string, string) (*activity.Activity, error)) *DecoderMock_Decode_Call {
	_c.Call.Return(run)
	return _c
}

// NewDecoderMock creates a new instance of DecoderMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewDecoderMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *DecoderMock {
	mock := &DecoderMock{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// RecorderMock is a mock type for the Recorder type
type RecorderMock struct {
	mock.Mock
}

type RecorderMock_Expecter struct {
	mock *mock.Mock
}

func (_m *RecorderMock) EXPECT() *RecorderMock_Expecter {
	return &RecorderMock_Expecter{mock: &_m.Mock}
}

// Record provides a mock function with given fields: ctx, a
func (_m *RecorderMock) Record(ctx context.Context, a activity.Activity) error {
	ret := _m.Called(ctx, a)

	if len(ret) == 0 {
		panic("no return value specified for Record")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, activity.Activity) error); ok {
		r0 = rf(ctx, a)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// RecorderMock_Record_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Record'
type RecorderMock_Record_Call struct {
	*mock.Call
}

// Record is a helper method to define mock.On call
//   - ctx context.Context
//   - a activity.Activity
func (_e *RecorderMock_Expecter) Record(ctx interface{}, a interface{}) *RecorderMock_Record_Call {
	return &RecorderMock_Record_Call{Call: _e.mock.On("Record", ctx, a)}
}

func (_c *RecorderMock_Record_Call) Run(run func(ctx context.Context, a activity.Activity)) *RecorderMock_Record_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(activity.Activity))
	})
	return _c
}

func (_c *RecorderMock_Record_Call) Return(_a0 error) *RecorderMock_Record_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *RecorderMock_Record_Call) RunAndReturn(run func(context.Context, activity.Activity) error) *RecorderMock_Record_Call {
	_c.Call.Return(run)
	return _c
}

// NewRecorderMock creates a new instance of RecorderMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewRecorderMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *RecorderMock {
	mock := &RecorderMock{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// LoopMock is a mock type for the Loop type
type LoopMock struct {
	mock.Mock
}

type LoopMock_Expecter struct {
	mock *mock.Mock
}

func (_m *LoopMock) EXPECT() *LoopMock_Expecter {
	return &LoopMock_Expecter{mock: &_m.Mock}
}

// Run provides a mock function with given fields: ctx
func (_m *LoopMock) Run(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Run")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// LoopMock_Run_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Run'
type LoopMock_Run_Call struct {
	*mock.Call
}

// Run is a helper method to define mock.On call
//   - ctx context.Context
func (_e *LoopMock_Expecter) Run(ctx interface{}) *LoopMock_Run_Call {
	return &LoopMock_Run_Call{Call: _e.mock.On("Run", ctx)}
}

func (_c *LoopMock_Run_Call) Run(run func(ctx context.Context)) *LoopMock_Run_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *LoopMock_Run_Call) Return(_a0 error) *LoopMock_Run_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *LoopMock_Run_Call) RunAndReturn(run func(context.Context) error) *LoopMock_Run_Call {
	_c.Call.Return(run)
	return _c
}

// NewLoopMock creates a new instance of LoopMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewLoopMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *LoopMock {
	mock := &LoopMock{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// WarmerMock is a mock type for the Warmer type
type WarmerMock struct {
	mock.Mock
}

type WarmerMock_Expecter struct {
	mock *mock.Mock
}

func (_m *WarmerMock) EXPECT() *WarmerMock_Expecter {
	return &WarmerMock_Expecter{mock: &_m.Mock}
}

// Refresh provides a mock function with given fields: ctx
func (_m *WarmerMock) Refresh(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Refresh")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// WarmerMock_Refresh_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Refresh'
type WarmerMock_Refresh_Call struct {
	*mock.Call
}

// Refresh is a helper method to define mock.On call
//   - ctx context.Context
func (_e *WarmerMock_Expecter) Refresh(ctx interface{}) *WarmerMock_Refresh_Call {
	return &WarmerMock_Refresh_Call{Call: _e.mock.On("Refresh", ctx)}
}

func (_c *WarmerMock_Refresh_Call) Run(run func(ctx context.Context)) *WarmerMock_Refresh_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *WarmerMock_Refresh_Call) Return(_a0 error) *WarmerMock_Refresh_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *WarmerMock_Refresh_Call) RunAndReturn(run func(context.Context) error) *WarmerMock_Refresh_Call {
	_c.Call.Return(run)
	return _c
}

// NewWarmerMock creates a new instance of WarmerMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewWarmerMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *WarmerMock {
	mock := &WarmerMock{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

