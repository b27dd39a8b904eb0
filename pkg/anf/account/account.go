// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package account

import (
	"context"

	"github.com/stratastor/nimbus/pkg/anf"
	"github.com/stratastor/nimbus/pkg/errors"
)

// Manager validates NetApp account requests and dispatches them to the
// control plane. Invalid input never reaches the collaborator.
type Manager struct {
	cp anf.ControlPlane
}

func NewManager(cp anf.ControlPlane) *Manager {
	return &Manager{cp: cp}
}

// List returns the accounts visible in the configured resource group, in the
// collaborator's ordering.
func (m *Manager) List(ctx context.Context) ([]anf.Account, error) {
	return m.cp.ListAccounts(ctx)
}

// Create submits an account create and resolves the wait dichotomy.
func (m *Manager) Create(
	ctx context.Context,
	spec anf.AccountSpec,
	wait bool,
) (anf.Result[anf.Account], error) {
	if err := spec.Validate(); err != nil {
		return anf.Result[anf.Account]{}, err
	}

	op, err := m.cp.CreateAccount(ctx, spec)
	if err != nil {
		return anf.Result[anf.Account]{}, err
	}
	return anf.Await(ctx, op, wait)
}

// Delete forwards unconditionally; deleting an absent account is whatever the
// control plane says it is.
func (m *Manager) Delete(
	ctx context.Context,
	name string,
	wait bool,
) (anf.Result[anf.Ack], error) {
	if name == "" {
		return anf.Result[anf.Ack]{}, errors.New(errors.ANFAccountNameRequired, "")
	}

	op, err := m.cp.DeleteAccount(ctx, name)
	if err != nil {
		return anf.Result[anf.Ack]{}, err
	}
	return anf.Await(ctx, op, wait)
}
