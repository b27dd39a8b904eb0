// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package account

import (
	"context"
	"testing"

	"github.com/stratastor/nimbus/pkg/anf"
	"github.com/stratastor/nimbus/pkg/anf/anftest"
	"github.com/stratastor/nimbus/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateValidatesBeforeDispatch(t *testing.T) {
	cp := anftest.NewStubControlPlane()
	mgr := NewManager(cp)

	_, err := mgr.Create(context.Background(), anf.AccountSpec{Location: "eastus"}, true)
	assert.True(t, errors.Is(err, errors.ANFAccountNameRequired))
	assert.Zero(t, cp.TotalCalls(), "invalid spec must not reach the control plane")
}

func TestCreateThenListRoundTrip(t *testing.T) {
	cp := anftest.NewStubControlPlane()
	mgr := NewManager(cp)
	ctx := context.Background()

	spec := anf.AccountSpec{Name: "acct1", Location: "westeurope"}
	result, err := mgr.Create(ctx, spec, true)
	require.NoError(t, err)
	require.True(t, result.Done())
	assert.Equal(t, "acct1", result.Resource.Name)

	accounts, err := mgr.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "acct1", accounts[0].Name)
	assert.Equal(t, 1, cp.Calls("CreateAccount"), "exactly one create per request")
}

func TestCreateWithoutWaitReturnsHandle(t *testing.T) {
	cp := anftest.NewStubControlPlane()
	mgr := NewManager(cp)

	result, err := mgr.Create(context.Background(),
		anf.AccountSpec{Name: "acct1", Location: "eastus"}, false)
	require.NoError(t, err)

	assert.False(t, result.Done())
	require.NotNil(t, result.Pending)
	assert.Equal(t, "create", result.Pending.Operation)
}

func TestDeleteRequiresName(t *testing.T) {
	cp := anftest.NewStubControlPlane()
	mgr := NewManager(cp)

	_, err := mgr.Delete(context.Background(), "", true)
	assert.True(t, errors.Is(err, errors.ANFAccountNameRequired))
	assert.Zero(t, cp.TotalCalls())
}

func TestDeleteRemovesAccount(t *testing.T) {
	cp := anftest.NewStubControlPlane()
	mgr := NewManager(cp)
	ctx := context.Background()

	_, err := mgr.Create(ctx, anf.AccountSpec{Name: "acct1", Location: "eastus"}, true)
	require.NoError(t, err)

	result, err := mgr.Delete(ctx, "acct1", true)
	require.NoError(t, err)
	assert.True(t, result.Done())

	accounts, err := mgr.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestCreateSubmitFailure(t *testing.T) {
	cp := anftest.NewStubControlPlane()
	cp.SubmitErr = errors.New(errors.AzureRequestFailed, "throttled")
	mgr := NewManager(cp)

	_, err := mgr.Create(context.Background(),
		anf.AccountSpec{Name: "acct1", Location: "eastus"}, false)
	assert.True(t, errors.Is(err, errors.AzureRequestFailed))
}
