// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package anf

import "context"

// ControlPlane is the collaborator every account and pool operation delegates
// to. The production implementation wraps the ARM NetApp clients; tests
// substitute a stub. List calls return the collaborator's ordering unchanged,
// and mutating calls return an accepted Operation: synchronous rejections
// (validation, conflict, throttling) surface as the returned error, LRO-stage
// failures surface from Operation.Wait.
type ControlPlane interface {
	ListAccounts(ctx context.Context) ([]Account, error)
	CreateAccount(ctx context.Context, spec AccountSpec) (Operation[Account], error)
	DeleteAccount(ctx context.Context, name string) (Operation[Ack], error)

	ListPools(ctx context.Context, account string) ([]CapacityPool, error)
	CreatePool(ctx context.Context, spec PoolSpec) (Operation[CapacityPool], error)
	UpdatePool(ctx context.Context, id PoolID, patch PoolPatch) (Operation[CapacityPool], error)
	DeletePool(ctx context.Context, id PoolID) (Operation[Ack], error)
}
