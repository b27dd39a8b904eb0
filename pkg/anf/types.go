// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

// Package anf defines the domain types for Azure NetApp Files accounts and
// capacity pools, and the operation façade shared by every mutating call.
package anf

import "github.com/stratastor/nimbus/pkg/errors"

// ServiceLevel is the performance class of a capacity pool.
type ServiceLevel string

const (
	ServiceLevelStandard    ServiceLevel = "Standard"
	ServiceLevelPremium     ServiceLevel = "Premium"
	ServiceLevelUltra       ServiceLevel = "Ultra"
	ServiceLevelStandardZRS ServiceLevel = "StandardZRS"
)

// ServiceLevels returns the allowed service levels.
func ServiceLevels() []ServiceLevel {
	return []ServiceLevel{
		ServiceLevelStandard,
		ServiceLevelPremium,
		ServiceLevelUltra,
		ServiceLevelStandardZRS,
	}
}

// Valid reports whether s is one of the allowed service levels.
func (s ServiceLevel) Valid() bool {
	switch s {
	case ServiceLevelStandard, ServiceLevelPremium, ServiceLevelUltra, ServiceLevelStandardZRS:
		return true
	}
	return false
}

// TiB is the capacity unit pools are sized in on the wire; ARM wants bytes.
const TiB = int64(1) << 40

// Account is a NetApp account as surfaced to API consumers.
type Account struct {
	ID                string            `json:"id,omitempty"`
	Name              string            `json:"name"`
	Location          string            `json:"location"`
	ProvisioningState string            `json:"provisioning_state,omitempty"`
	Tags              map[string]string `json:"tags,omitempty"`
}

// CapacityPool is a provisioned storage quota container within an account.
type CapacityPool struct {
	ID                string       `json:"id,omitempty"`
	Name              string       `json:"name"`
	Account           string       `json:"account"`
	Location          string       `json:"location"`
	SizeBytes         int64        `json:"size"`
	ServiceLevel      ServiceLevel `json:"service_level"`
	ProvisioningState string       `json:"provisioning_state,omitempty"`
}

// SizeTiB returns the pool size in whole TiB.
func (p CapacityPool) SizeTiB() int64 {
	return p.SizeBytes / TiB
}

// ActiveDirectorySpec is the optional AD join configuration on account create.
type ActiveDirectorySpec struct {
	DNS                string `json:"dns,omitempty"`
	Domain             string `json:"domain,omitempty"`
	SMBServerName      string `json:"smb_server_name,omitempty"`
	Username           string `json:"username,omitempty"`
	Password           string `json:"password,omitempty"`
	OrganizationalUnit string `json:"organizational_unit,omitempty"`
	Site               string `json:"site,omitempty"`
}

// AccountSpec identifies a NetApp account to create.
type AccountSpec struct {
	Name            string               `json:"name"`
	Location        string               `json:"location"`
	ActiveDirectory *ActiveDirectorySpec `json:"active_directory,omitempty"`
}

// Validate rejects incomplete specs before any external call is made.
func (s AccountSpec) Validate() error {
	if s.Name == "" {
		return errors.New(errors.ANFAccountNameRequired, "")
	}
	if s.Location == "" {
		return errors.New(errors.ANFLocationRequired, "account "+s.Name)
	}
	return nil
}

// PoolSpec identifies a capacity pool to create.
type PoolSpec struct {
	Account      string       `json:"account"`
	Pool         string       `json:"pool"`
	Location     string       `json:"location"`
	SizeTiB      int64        `json:"size_tb"`
	ServiceLevel ServiceLevel `json:"service_level"`
}

// Validate enforces the pool invariants: positive size, known service level.
func (s PoolSpec) Validate() error {
	if s.Account == "" {
		return errors.New(errors.ANFAccountNameRequired, "")
	}
	if s.Pool == "" {
		return errors.New(errors.ANFPoolNameRequired, "account "+s.Account)
	}
	if s.Location == "" {
		return errors.New(errors.ANFLocationRequired, "pool "+s.Pool)
	}
	if s.SizeTiB <= 0 {
		return errors.New(errors.ANFPoolSizeInvalid, "size_tb must be > 0")
	}
	if !s.ServiceLevel.Valid() {
		return errors.New(errors.ANFServiceLevelInvalid, string(s.ServiceLevel))
	}
	return nil
}

// PoolID addresses an existing pool within the configured resource group.
type PoolID struct {
	Account string `json:"account"`
	Pool    string `json:"pool"`
}

// Validate checks both coordinates are present.
func (id PoolID) Validate() error {
	if id.Account == "" {
		return errors.New(errors.ANFAccountScopeRequired, "")
	}
	if id.Pool == "" {
		return errors.New(errors.ANFPoolNameRequired, "account "+id.Account)
	}
	return nil
}

// PoolPatch carries the mutable pool fields. At least one must be present.
type PoolPatch struct {
	SizeTiB      *int64        `json:"new_size_tb,omitempty"`
	ServiceLevel *ServiceLevel `json:"service_level,omitempty"`
}

// Validate rejects an empty patch and out-of-range values without contacting
// the control plane.
func (p PoolPatch) Validate() error {
	if p.SizeTiB == nil && p.ServiceLevel == nil {
		return errors.New(errors.ANFEmptyPatch, "")
	}
	if p.SizeTiB != nil && *p.SizeTiB <= 0 {
		return errors.New(errors.ANFPoolSizeInvalid, "new_size_tb must be > 0")
	}
	if p.ServiceLevel != nil && !p.ServiceLevel.Valid() {
		return errors.New(errors.ANFServiceLevelInvalid, string(*p.ServiceLevel))
	}
	return nil
}
