package blockscan

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gabapcia/walletmon/internal/retryqueue"
	"github.com/stretchr/testify/mock"
)

// BlockchainMock is a mock type for the Blockchain type
type BlockchainMock struct {
	mock.Mock
}

type BlockchainMock_Expecter struct {
	mock *mock.Mock
}

func (_m *BlockchainMock) EXPECT() *BlockchainMock_Expecter {
	return &BlockchainMock_Expecter{mock: &_m.Mock}
}

// LatestBlockNumber provides a mock function with given fields: ctx
func (_m *BlockchainMock) LatestBlockNumber(ctx context.Context) (uint64, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for LatestBlockNumber")
	}

	var r0 uint64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (uint64, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) uint64); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(uint64)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// BlockchainMock_LatestBlockNumber_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'LatestBlockNumber'
type BlockchainMock_LatestBlockNumber_Call struct {
	*mock.Call
}

// LatestBlockNumber is a helper method to define mock.On call
//   - ctx context.Context
func (_e *BlockchainMock_Expecter) LatestBlockNumber(ctx interface{}) *BlockchainMock_LatestBlockNumber_Call {
	return &BlockchainMock_LatestBlockNumber_Call{Call: _e.mock.On("LatestBlockNumber", ctx)}
}

func (_c *BlockchainMock_LatestBlockNumber_Call) Run(run func(ctx context.Context)) *BlockchainMock_LatestBlockNumber_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *BlockchainMock_LatestBlockNumber_Call) Return(_a0 uint64, _a1 error) *BlockchainMock_LatestBlockNumber_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *BlockchainMock_LatestBlockNumber_Call) RunAndReturn(run func(context.Context) (uint64, error)) *BlockchainMock_LatestBlockNumber_Call {
	_c.Call.Return(run)
	return _c
}

// LogsByBlock provides a mock function with given fields: ctx, number, topics
func (_m *BlockchainMock) LogsByBlock(ctx context.Context, number uint64, topics []common.Hash) ([]Log, error) {
	ret := _m.Called(ctx, number, topics)

	if len(ret) == 0 {
		panic("no return value specified for LogsByBlock")
	}

	var r0 []Log
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uint64, []common.Hash) ([]Log, error)); ok {
		return rf(ctx, number, topics)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uint64, []common.Hash) []Log); ok {
		r0 = rf(ctx, number, topics)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]Log)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uint64, []common.Hash) error); ok {
		r1 = rf(ctx, number, topics)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// BlockchainMock_LogsByBlock_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'LogsByBlock'
type BlockchainMock_LogsByBlock_Call struct {
	*mock.Call
}

// LogsByBlock is a helper method to define mock.On call
//   - ctx context.Context
//   - number uint64
//   - topics []common.Hash
func (_e *BlockchainMock_Expecter) LogsByBlock(ctx interface{}, number interface{}, topics interface{}) *BlockchainMock_LogsByBlock_Call {
	return &BlockchainMock_LogsByBlock_Call{Call: _e.mock.On("LogsByBlock", ctx, number, topics)}
}

func (_c *BlockchainMock_LogsByBlock_Call) Run(run func(ctx context.Context, number uint64, topics []common.Hash)) *BlockchainMock_LogsByBlock_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uint64), args[2].([]common.Hash))
	})
	return _c
}

func (_c *BlockchainMock_LogsByBlock_Call) Return(_a0 []Log, _a1 error) *BlockchainMock_LogsByBlock_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *BlockchainMock_LogsByBlock_Call) RunAndReturn(run func(context.Context, uint64, []common.Hash) ([]Log, error)) *BlockchainMock_LogsByBlock_Call {
	_c.Call.Return(run)
	return _c
}

// NewBlockchainMock creates a new instance of BlockchainMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewBlockchainMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *BlockchainMock {
	mock := &BlockchainMock{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// CheckpointStorageMock is a mock type for the CheckpointStorage type
type CheckpointStorageMock struct {
	mock.Mock
}

type CheckpointStorageMock_Expecter struct {
	mock *mock.Mock
}

func (_m *CheckpointStorageMock) EXPECT() *CheckpointStorageMock_Expecter {
	return &CheckpointStorageMock_Expecter{mock: &_m.Mock}
}

// LoadLatestCheckpoint provides a mock function with given fields: ctx, network
func (_m *CheckpointStorageMock) LoadLatestCheckpoint(ctx context.Context, network string) (uint64, error) {
	ret := _m.Called(ctx, network)

	if len(ret) == 0 {
		panic("no return value specified for LoadLatestCheckpoint")
	}

	var r0 uint64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (uint64, error)); ok {
		return rf(ctx, network)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) uint64); ok {
		r0 = rf(ctx, network)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(uint64)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, network)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CheckpointStorageMock_LoadLatestCheckpoint_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'LoadLatestCheckpoint'
type CheckpointStorageMock_LoadLatestCheckpoint_Call struct {
	*mock.Call
}

// LoadLatestCheckpoint is a helper method to define mock.On call
//   - ctx context.Context
//   - network string
func (_e *CheckpointStorageMock_Expecter) LoadLatestCheckpoint(ctx interface{}, network interface{}) *CheckpointStorageMock_LoadLatestCheckpoint_Call {
	return &CheckpointStorageMock_LoadLatestCheckpoint_Call{Call: _e.mock.On("LoadLatestCheckpoint", ctx, network)}
}

func (_c *CheckpointStorageMock_LoadLatestCheckpoint_Call) Run(run func(ctx context.Context, network string)) *CheckpointStorageMock_LoadLatestCheckpoint_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *CheckpointStorageMock_LoadLatestCheckpoint_Call) Return(_a0 uint64, _a1 error) *CheckpointStorageMock_LoadLatestCheckpoint_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *CheckpointStorageMock_LoadLatestCheckpoint_Call) RunAndReturn(run func(context.Context, string) (uint64, error)) *CheckpointStorageMock_LoadLatestCheckpoint_Call {
	_c.Call.Return(run)
	return _c
}

// SaveCheckpoint provides a mock function with given fields: ctx, network, block
func (_m *CheckpointStorageMock) SaveCheckpoint(ctx context.Context, network string, block uint64) error {
	ret := _m.Called(ctx, network, block)

	if len(ret) == 0 {
		panic("no return value specified for SaveCheckpoint")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, uint64) error); ok {
		r0 = rf(ctx, network, block)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// CheckpointStorageMock_SaveCheckpoint_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SaveCheckpoint'
type CheckpointStorageMock_SaveCheckpoint_Call struct {
	*mock.Call
}

// SaveCheckpoint is a helper method to define mock.On call
//   - ctx context.Context
//   - network string
//   - block uint64
func (_e *CheckpointStorageMock_Expecter) SaveCheckpoint(ctx interface{}, network interface{}, block interface{}) *CheckpointStorageMock_SaveCheckpoint_Call {
	return &CheckpointStorageMock_SaveCheckpoint_Call{Call: _e.mock.On("SaveCheckpoint", ctx, network, block)}
}

func (_c *CheckpointStorageMock_SaveCheckpoint_Call) Run(run func(ctx context.Context, network string, block uint64)) *CheckpointStorageMock_SaveCheckpoint_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(uint64))
	})
	return _c
}

func (_c *CheckpointStorageMock_SaveCheckpoint_Call) Return(_a0 error) *CheckpointStorageMock_SaveCheckpoint_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *CheckpointStorageMock_SaveCheckpoint_Call) RunAndReturn(run func(context.Context, string, uint64) error) *CheckpointStorageMock_SaveCheckpoint_Call {
	_c.Call.Return(run)
	return _c
}

// NewCheckpointStorageMock creates a new instance of CheckpointStorageMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewCheckpointStorageMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *CheckpointStorageMock {
	mock := &CheckpointStorageMock{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// WalletFilterMock is a mock type for the WalletFilter type
type WalletFilterMock struct {
	mock.Mock
}

type WalletFilterMock_Expecter struct {
	mock *mock.Mock
}

func (_m *WalletFilterMock) EXPECT() *WalletFilterMock_Expecter {
	return &WalletFilterMock_Expecter{mock: &_m.Mock}
}

// Contains provides a mock function with given fields: address
func (_m *WalletFilterMock) Contains(address string) bool {
	ret := _m.Called(address)

	if len(ret) == 0 {
		panic("no return value specified for Contains")
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func(string) bool); ok {
		r0 = rf(address)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(bool)
		}
	}

	return r0
}

// WalletFilterMock_Contains_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Contains'
type WalletFilterMock_Contains_Call struct {
	*mock.Call
}

// Contains is a helper method to define mock.On call
//   - address string
func (_e *WalletFilterMock_Expecter) Contains(address interface{}) *WalletFilterMock_Contains_Call {
	return &WalletFilterMock_Contains_Call{Call: _e.mock.On("Contains", address)}
}

func (_c *WalletFilterMock_Contains_Call) Run(run func(address string)) *WalletFilterMock_Contains_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *WalletFilterMock_Contains_Call) Return(_a0 bool) *WalletFilterMock_Contains_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *WalletFilterMock_Contains_Call) RunAndReturn(run func(string) bool) *WalletFilterMock_Contains_Call {
	_c.Call.Return(run)
	return _c
}

// NewWalletFilterMock creates a new instance of WalletFilterMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewWalletFilterMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *WalletFilterMock {
	mock := &WalletFilterMock{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// JobQueueMock is a mock type for the JobQueue type
type JobQueueMock struct {
	mock.Mock
}

type JobQueueMock_Expecter struct {
	mock *mock.Mock
}

func (_m *JobQueueMock) EXPECT() *JobQueueMock_Expecter {
	return &JobQueueMock_Expecter{mock: &_m.Mock}
}

// Enqueue provides a mock function with given fields: job
func (_m *JobQueueMock) Enqueue(job retryqueue.Job) {
	_m.Called(job)
}

// JobQueueMock_Enqueue_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Enqueue'
type JobQueueMock_Enqueue_Call struct {
	*mock.Call
}

// Enqueue is a helper method to define mock.On call
//   - job retryqueue.Job
func (_e *JobQueueMock_Expecter) Enqueue(job interface{}) *JobQueueMock_Enqueue_Call {
	return &JobQueueMock_Enqueue_Call{Call: _e.mock.On("Enqueue", job)}
}

func (_c *JobQueueMock_Enqueue_Call) Run(run func(job retryqueue.Job)) *JobQueueMock_Enqueue_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(retryqueue.Job))
	})
	return _c
}

func (_c *JobQueueMock_Enqueue_Call) Return() *JobQueueMock_Enqueue_Call {
	_c.Call.Return()
	return _c
}

func (_c *JobQueueMock_Enqueue_Call) RunAndReturn(run func(retryqueue.Job)) *JobQueueMock_Enqueue_Call {
	_c.Run(run)
	return _c
}

// NewJobQueueMock creates a new instance of JobQueueMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewJobQueueMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *JobQueueMock {
	mock := &JobQueueMock{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

