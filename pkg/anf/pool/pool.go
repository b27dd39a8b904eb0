// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package pool

import (
	"context"

	"github.com/stratastor/nimbus/pkg/anf"
	"github.com/stratastor/nimbus/pkg/errors"
)

// Manager validates capacity-pool requests and dispatches them to the control
// plane. Size and service-level constraints are enforced here, before any
// external call.
type Manager struct {
	cp anf.ControlPlane
}

func NewManager(cp anf.ControlPlane) *Manager {
	return &Manager{cp: cp}
}

// List returns the pools under the given account. The account scope is
// mandatory; pagination is the collaborator's concern.
func (m *Manager) List(ctx context.Context, account string) ([]anf.CapacityPool, error) {
	if account == "" {
		return nil, errors.New(errors.ANFAccountScopeRequired, "")
	}
	return m.cp.ListPools(ctx, account)
}

// Create submits a pool create and resolves the wait dichotomy.
func (m *Manager) Create(
	ctx context.Context,
	spec anf.PoolSpec,
	wait bool,
) (anf.Result[anf.CapacityPool], error) {
	if err := spec.Validate(); err != nil {
		return anf.Result[anf.CapacityPool]{}, err
	}

	op, err := m.cp.CreatePool(ctx, spec)
	if err != nil {
		return anf.Result[anf.CapacityPool]{}, err
	}
	return anf.Await(ctx, op, wait)
}

// Update resizes and/or retiers a pool. A patch with no mutable field fails
// before contacting the control plane.
func (m *Manager) Update(
	ctx context.Context,
	id anf.PoolID,
	patch anf.PoolPatch,
	wait bool,
) (anf.Result[anf.CapacityPool], error) {
	if err := id.Validate(); err != nil {
		return anf.Result[anf.CapacityPool]{}, err
	}
	if err := patch.Validate(); err != nil {
		return anf.Result[anf.CapacityPool]{}, err
	}

	op, err := m.cp.UpdatePool(ctx, id, patch)
	if err != nil {
		return anf.Result[anf.CapacityPool]{}, err
	}
	return anf.Await(ctx, op, wait)
}

// Delete forwards unconditionally once the pool is addressable.
func (m *Manager) Delete(
	ctx context.Context,
	id anf.PoolID,
	wait bool,
) (anf.Result[anf.Ack], error) {
	if err := id.Validate(); err != nil {
		return anf.Result[anf.Ack]{}, err
	}

	op, err := m.cp.DeletePool(ctx, id)
	if err != nil {
		return anf.Result[anf.Ack]{}, err
	}
	return anf.Await(ctx, op, wait)
}
