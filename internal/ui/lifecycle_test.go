package ui

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutionStatus_Constructors(t *testing.T) {
	worker := uuid.New()

	assert.Equal(t, ExecutionStatus{State: StatePending}, Pending())

	started := Started(worker)
	assert.Equal(t, StateStarted, started.State)
	require.NotNil(t, started.Worker)
	assert.Equal(t, worker, *started.Worker)
	assert.False(t, started.Terminal())

	done := Done(successResult())
	assert.Equal(t, StateDone, done.State)
	assert.True(t, done.Terminal())
	assert.True(t, done.Success())

	failed := Done(failureResult())
	assert.True(t, failed.Terminal())
	assert.False(t, failed.Success())

	skipped := Skipped()
	assert.True(t, skipped.Terminal())
	assert.False(t, skipped.Success())
}

func TestExecutionStatus_DoneWithoutResultIsNotSuccess(t *testing.T) {
	status := ExecutionStatus{State: StateDone}
	assert.False(t, status.Success(), "a missing result never counts as success")
	assert.True(t, status.Terminal())
}

func TestExecutionStatus_JSONOmitsUnsetFields(t *testing.T) {
	data, err := json.Marshal(Pending())
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"pending"}`, string(data))

	data, err = json.Marshal(Skipped())
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"skipped"}`, string(data))
}
