// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package anf

import (
	"context"
	"testing"

	"github.com/stratastor/nimbus/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedOp struct {
	ret       Account
	err       error
	handle    Handle
	waitCalls int
}

func (o *scriptedOp) Handle() Handle { return o.handle }

func (o *scriptedOp) Wait(ctx context.Context) (Account, error) {
	o.waitCalls++
	return o.ret, o.err
}

func TestAwaitWithoutWaitReturnsHandle(t *testing.T) {
	op := &scriptedOp{
		handle: Handle{ID: "op-1", Resource: "accounts/a1", Operation: "create"},
	}

	result, err := Await[Account](context.Background(), op, false)
	require.NoError(t, err)

	assert.False(t, result.Done())
	require.NotNil(t, result.Pending)
	assert.Equal(t, "op-1", result.Pending.ID)
	assert.Zero(t, op.waitCalls, "Await must not block when wait is false")
}

func TestAwaitWithWaitReturnsResource(t *testing.T) {
	op := &scriptedOp{
		ret:    Account{Name: "a1", Location: "eastus", ProvisioningState: "Succeeded"},
		handle: Handle{ID: "op-2"},
	}

	result, err := Await[Account](context.Background(), op, true)
	require.NoError(t, err)

	assert.True(t, result.Done())
	assert.Nil(t, result.Pending)
	assert.Equal(t, "a1", result.Resource.Name)
	assert.Equal(t, 1, op.waitCalls)
}

func TestAwaitSurfacesTerminalFailure(t *testing.T) {
	op := &scriptedOp{
		err: errors.New(errors.AzureOperationFailed, "provisioning failed"),
	}

	result, err := Await[Account](context.Background(), op, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.AzureOperationFailed))
	assert.False(t, result.Done())
	assert.Nil(t, result.Pending)
}
