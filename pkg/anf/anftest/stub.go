// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

// Package anftest provides an in-memory ControlPlane stub for handler and
// manager tests. It counts every call so tests can assert that invalid input
// issued zero external calls.
package anftest

import (
	"context"
	"fmt"
	"sync"

	"github.com/stratastor/nimbus/pkg/anf"
)

// StubOperation is a scripted anf.Operation.
type StubOperation[T any] struct {
	Ret       T
	Err       error
	H         anf.Handle
	WaitCalls int
}

func (o *StubOperation[T]) Handle() anf.Handle { return o.H }

func (o *StubOperation[T]) Wait(ctx context.Context) (T, error) {
	o.WaitCalls++
	if o.Err != nil {
		var zero T
		return zero, o.Err
	}
	return o.Ret, nil
}

// StubControlPlane keeps accounts and pools in memory. Mutations apply
// immediately at submission so a create-then-list round trip observes the
// resource regardless of the wait flag.
type StubControlPlane struct {
	mu       sync.Mutex
	accounts []anf.Account
	pools    map[string][]anf.CapacityPool
	calls    map[string]int

	// SubmitErr makes every mutating submission fail synchronously.
	SubmitErr error
	// WaitErr makes every accepted operation fail at the LRO stage.
	WaitErr error
	// ListErr makes list calls fail.
	ListErr error
}

func NewStubControlPlane() *StubControlPlane {
	return &StubControlPlane{
		pools: make(map[string][]anf.CapacityPool),
		calls: make(map[string]int),
	}
}

// Calls returns how many times the named method was invoked.
func (s *StubControlPlane) Calls(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

// TotalCalls returns the number of control-plane invocations of any kind.
func (s *StubControlPlane) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

func (s *StubControlPlane) record(method string) {
	s.calls[method]++
}

func (s *StubControlPlane) ListAccounts(ctx context.Context) ([]anf.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("ListAccounts")
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	out := make([]anf.Account, len(s.accounts))
	copy(out, s.accounts)
	return out, nil
}

func (s *StubControlPlane) CreateAccount(
	ctx context.Context,
	spec anf.AccountSpec,
) (anf.Operation[anf.Account], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("CreateAccount")
	if s.SubmitErr != nil {
		return nil, s.SubmitErr
	}

	acct := anf.Account{
		ID:                "/subscriptions/stub/netAppAccounts/" + spec.Name,
		Name:              spec.Name,
		Location:          spec.Location,
		ProvisioningState: "Succeeded",
	}
	s.upsertAccount(acct)
	return &StubOperation[anf.Account]{
		Ret: acct,
		Err: s.WaitErr,
		H:   handle("accounts/"+spec.Name, "create"),
	}, nil
}

func (s *StubControlPlane) DeleteAccount(
	ctx context.Context,
	name string,
) (anf.Operation[anf.Ack], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("DeleteAccount")
	if s.SubmitErr != nil {
		return nil, s.SubmitErr
	}

	kept := s.accounts[:0]
	for _, a := range s.accounts {
		if a.Name != name {
			kept = append(kept, a)
		}
	}
	s.accounts = kept
	delete(s.pools, name)
	return &StubOperation[anf.Ack]{
		Err: s.WaitErr,
		H:   handle("accounts/"+name, "delete"),
	}, nil
}

func (s *StubControlPlane) ListPools(
	ctx context.Context,
	account string,
) ([]anf.CapacityPool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("ListPools")
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	out := make([]anf.CapacityPool, len(s.pools[account]))
	copy(out, s.pools[account])
	return out, nil
}

func (s *StubControlPlane) CreatePool(
	ctx context.Context,
	spec anf.PoolSpec,
) (anf.Operation[anf.CapacityPool], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("CreatePool")
	if s.SubmitErr != nil {
		return nil, s.SubmitErr
	}

	pool := anf.CapacityPool{
		ID:                fmt.Sprintf("/subscriptions/stub/capacityPools/%s/%s", spec.Account, spec.Pool),
		Name:              spec.Pool,
		Account:           spec.Account,
		Location:          spec.Location,
		SizeBytes:         spec.SizeTiB * anf.TiB,
		ServiceLevel:      spec.ServiceLevel,
		ProvisioningState: "Succeeded",
	}
	s.upsertPool(pool)
	return &StubOperation[anf.CapacityPool]{
		Ret: pool,
		Err: s.WaitErr,
		H:   handle("pools/"+spec.Account+"/"+spec.Pool, "create"),
	}, nil
}

func (s *StubControlPlane) UpdatePool(
	ctx context.Context,
	id anf.PoolID,
	patch anf.PoolPatch,
) (anf.Operation[anf.CapacityPool], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("UpdatePool")
	if s.SubmitErr != nil {
		return nil, s.SubmitErr
	}

	var updated anf.CapacityPool
	for i, p := range s.pools[id.Account] {
		if p.Name != id.Pool {
			continue
		}
		if patch.SizeTiB != nil {
			p.SizeBytes = *patch.SizeTiB * anf.TiB
		}
		if patch.ServiceLevel != nil {
			p.ServiceLevel = *patch.ServiceLevel
		}
		s.pools[id.Account][i] = p
		updated = p
	}
	return &StubOperation[anf.CapacityPool]{
		Ret: updated,
		Err: s.WaitErr,
		H:   handle("pools/"+id.Account+"/"+id.Pool, "update"),
	}, nil
}

func (s *StubControlPlane) DeletePool(
	ctx context.Context,
	id anf.PoolID,
) (anf.Operation[anf.Ack], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("DeletePool")
	if s.SubmitErr != nil {
		return nil, s.SubmitErr
	}

	kept := s.pools[id.Account][:0]
	for _, p := range s.pools[id.Account] {
		if p.Name != id.Pool {
			kept = append(kept, p)
		}
	}
	s.pools[id.Account] = kept
	return &StubOperation[anf.Ack]{
		Err: s.WaitErr,
		H:   handle("pools/"+id.Account+"/"+id.Pool, "delete"),
	}, nil
}

func (s *StubControlPlane) upsertAccount(acct anf.Account) {
	for i, a := range s.accounts {
		if a.Name == acct.Name {
			s.accounts[i] = acct
			return
		}
	}
	s.accounts = append(s.accounts, acct)
}

func (s *StubControlPlane) upsertPool(pool anf.CapacityPool) {
	for i, p := range s.pools[pool.Account] {
		if p.Name == pool.Name {
			s.pools[pool.Account][i] = pool
			return
		}
	}
	s.pools[pool.Account] = append(s.pools[pool.Account], pool)
}

func handle(resource, op string) anf.Handle {
	return anf.Handle{
		ID:        "stub-op",
		Resource:  resource,
		Operation: op,
		Token:     "stub-token",
	}
}
