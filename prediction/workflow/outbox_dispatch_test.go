package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/mock/gomock"

	"github.com/kjsvbshk/Tesis-sub000/prediction/mocks/workflow/dispatcher"
)

func newWorkflowEnv(t *testing.T, ctrl *gomock.Controller) (*testsuite.TestWorkflowEnvironment, *dispatcher.MockOutboxDispatcher, *dispatcher.MockKeySweeper) {
	mockDispatcher := dispatcher.NewMockOutboxDispatcher(ctrl)
	mockSweeper := dispatcher.NewMockKeySweeper(ctrl)
	SetActivityDependencies(mockDispatcher, mockSweeper)
	t.Cleanup(func() { SetActivityDependencies(nil, nil) })

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(DispatchPendingActivity)
	env.RegisterActivity(PurgeExpiredKeysActivity)
	return env, mockDispatcher, mockSweeper
}

func TestOutboxDispatch_DrainStopsLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env, mockDispatcher, _ := newWorkflowEnv(t, ctrl)

	mockDispatcher.EXPECT().DispatchPending(gomock.Any()).Return(0, nil).AnyTimes()

	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(DrainSignalName, DrainSignal{Reason: "shutdown"})
	}, 100*time.Millisecond)

	env.ExecuteWorkflow(OutboxDispatch, OutboxDispatchParams{PollInterval: time.Second})
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestOutboxDispatch_NudgeTriggersImmediateDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env, mockDispatcher, _ := newWorkflowEnv(t, ctrl)

	// Poll interval far beyond the test horizon: only signals drive cycles.
	mockDispatcher.EXPECT().DispatchPending(gomock.Any()).Return(2, nil).Times(2)

	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(NudgeSignalName, NudgeSignal{Source: "get_prediction"})
	}, 50*time.Millisecond)
	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(DrainSignalName, DrainSignal{Reason: "test done"})
	}, 200*time.Millisecond)

	env.ExecuteWorkflow(OutboxDispatch, OutboxDispatchParams{PollInterval: time.Hour})
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestOutboxDispatch_ContinueAsNewAfterMaxCycles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env, mockDispatcher, _ := newWorkflowEnv(t, ctrl)

	mockDispatcher.EXPECT().DispatchPending(gomock.Any()).Return(0, nil).Times(3)

	env.ExecuteWorkflow(OutboxDispatch, OutboxDispatchParams{
		PollInterval: 10 * time.Millisecond,
		MaxCycles:    3,
	})
	require.True(t, env.IsWorkflowCompleted())

	err := env.GetWorkflowError()
	require.Error(t, err)
	assert.True(t, workflow.IsContinueAsNewError(err))
}

func TestOutboxDispatch_SweepsOnSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env, mockDispatcher, mockSweeper := newWorkflowEnv(t, ctrl)

	mockDispatcher.EXPECT().DispatchPending(gomock.Any()).Return(0, nil).Times(4)
	// Four cycles with SweepEvery=2 means two sweeps.
	mockSweeper.EXPECT().PurgeExpired(gomock.Any()).Return(int64(1), nil).Times(2)

	env.ExecuteWorkflow(OutboxDispatch, OutboxDispatchParams{
		PollInterval: 10 * time.Millisecond,
		SweepEvery:   2,
		MaxCycles:    4,
	})
	require.True(t, env.IsWorkflowCompleted())
	assert.True(t, workflow.IsContinueAsNewError(env.GetWorkflowError()))
}

func TestOutboxDispatch_DispatchFailureKeepsLooping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env, mockDispatcher, _ := newWorkflowEnv(t, ctrl)

	// Every cycle fails; the loop logs and carries on until drained.
	mockDispatcher.EXPECT().DispatchPending(gomock.Any()).Return(0, errors.New("broker unavailable")).AnyTimes()

	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(DrainSignalName, DrainSignal{Reason: "shutdown"})
	}, 500*time.Millisecond)

	env.ExecuteWorkflow(OutboxDispatch, OutboxDispatchParams{PollInterval: 100 * time.Millisecond})
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestActivities_FailurePaths(t *testing.T) {
	testErr := errors.New("boom")

	t.Run("DispatchPendingActivity failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockDispatcher := dispatcher.NewMockOutboxDispatcher(ctrl)
		mockSweeper := dispatcher.NewMockKeySweeper(ctrl)
		SetActivityDependencies(mockDispatcher, mockSweeper)
		t.Cleanup(func() { SetActivityDependencies(nil, nil) })

		var ts testsuite.WorkflowTestSuite
		env := ts.NewTestActivityEnvironment()
		env.RegisterActivity(DispatchPendingActivity)

		mockDispatcher.EXPECT().DispatchPending(gomock.Any()).Return(0, testErr).Times(1)

		_, err := env.ExecuteActivity(DispatchPendingActivity)
		require.Error(t, err)
		assert.Contains(t, err.Error(), testErr.Error())
	})

	t.Run("PurgeExpiredKeysActivity failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockDispatcher := dispatcher.NewMockOutboxDispatcher(ctrl)
		mockSweeper := dispatcher.NewMockKeySweeper(ctrl)
		SetActivityDependencies(mockDispatcher, mockSweeper)
		t.Cleanup(func() { SetActivityDependencies(nil, nil) })

		var ts testsuite.WorkflowTestSuite
		env := ts.NewTestActivityEnvironment()
		env.RegisterActivity(PurgeExpiredKeysActivity)

		mockSweeper.EXPECT().PurgeExpired(gomock.Any()).Return(int64(0), testErr).Times(1)

		_, err := env.ExecuteActivity(PurgeExpiredKeysActivity)
		require.Error(t, err)
		assert.Contains(t, err.Error(), testErr.Error())
	})

	t.Run("missing dependencies", func(t *testing.T) {
		SetActivityDependencies(nil, nil)

		var ts testsuite.WorkflowTestSuite
		env := ts.NewTestActivityEnvironment()
		env.RegisterActivity(DispatchPendingActivity)

		_, err := env.ExecuteActivity(DispatchPendingActivity)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not initialized")
	})
}
