// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

// Package azure implements anf.ControlPlane on top of the ARM NetApp Files
// resource-manager clients. Long-running mutations are adapted from azcore
// runtime pollers into anf.Operation values; the poller resume token is the
// polling reference handed back on wait=false.
package azure

import (
	"context"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	armnetapp "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/netapp/armnetapp/v7"
	"github.com/google/uuid"
	"github.com/stratastor/logger"
	"github.com/stratastor/nimbus/pkg/anf"
	"github.com/stratastor/nimbus/pkg/errors"
)

// Settings are the target resource coordinates, resolved once at startup.
type Settings struct {
	SubscriptionID string
	ResourceGroup  string
}

// ControlPlane wraps the typed ARM NetApp clients. The clients are safe for
// concurrent use, so a single ControlPlane serves all requests.
type ControlPlane struct {
	settings Settings
	accounts *armnetapp.AccountsClient
	pools    *armnetapp.PoolsClient
	log      logger.Logger
}

// NewControlPlane builds ARM clients from the injected credential provider.
func NewControlPlane(
	settings Settings,
	provider CredentialProvider,
	log logger.Logger,
) (*ControlPlane, error) {
	cred, err := provider.Credential()
	if err != nil {
		return nil, errors.Wrap(err, errors.AzureCredentialError)
	}

	clientOptions := &arm.ClientOptions{}

	accountsClient, err := armnetapp.NewAccountsClient(settings.SubscriptionID, cred, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, errors.AzureClientInit)
	}

	poolsClient, err := armnetapp.NewPoolsClient(settings.SubscriptionID, cred, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, errors.AzureClientInit)
	}

	return &ControlPlane{
		settings: settings,
		accounts: accountsClient,
		pools:    poolsClient,
		log:      log,
	}, nil
}

// lro adapts a typed ARM poller to anf.Operation.
type lro[R, T any] struct {
	handle anf.Handle
	poller *runtime.Poller[R]
	finish func(R) T
}

func (o *lro[R, T]) Handle() anf.Handle { return o.handle }

func (o *lro[R, T]) Wait(ctx context.Context) (T, error) {
	resp, err := o.poller.PollUntilDone(ctx, nil)
	if err != nil {
		var zero T
		return zero, asExternalError(err, errors.AzureOperationFailed)
	}
	return o.finish(resp), nil
}

func newLRO[R, T any](
	poller *runtime.Poller[R],
	resource, op string,
	finish func(R) T,
) *lro[R, T] {
	// Already-terminal pollers don't issue resume tokens; the handle then
	// carries only the identity of the operation.
	token, err := poller.ResumeToken()
	if err != nil {
		token = ""
	}
	return &lro[R, T]{
		handle: anf.Handle{
			ID:        uuid.NewString(),
			Resource:  resource,
			Operation: op,
			Token:     token,
		},
		poller: poller,
		finish: finish,
	}
}

func (c *ControlPlane) ListAccounts(ctx context.Context) ([]anf.Account, error) {
	accounts := []anf.Account{}
	pager := c.accounts.NewListPager(c.settings.ResourceGroup, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, asExternalError(err, errors.AzureRequestFailed)
		}
		for _, a := range page.Value {
			accounts = append(accounts, accountFromARM(a))
		}
	}
	return accounts, nil
}

func (c *ControlPlane) CreateAccount(
	ctx context.Context,
	spec anf.AccountSpec,
) (anf.Operation[anf.Account], error) {
	poller, err := c.accounts.BeginCreateOrUpdate(
		ctx,
		c.settings.ResourceGroup,
		spec.Name,
		accountToARM(spec),
		nil,
	)
	if err != nil {
		return nil, asExternalError(err, errors.AzureRequestFailed)
	}

	c.log.Debug("Account create accepted", "account", spec.Name, "location", spec.Location)
	return newLRO(poller, "accounts/"+spec.Name, "create",
		func(resp armnetapp.AccountsClientCreateOrUpdateResponse) anf.Account {
			return accountFromARM(&resp.Account)
		}), nil
}

func (c *ControlPlane) DeleteAccount(
	ctx context.Context,
	name string,
) (anf.Operation[anf.Ack], error) {
	poller, err := c.accounts.BeginDelete(ctx, c.settings.ResourceGroup, name, nil)
	if err != nil {
		return nil, asExternalError(err, errors.AzureRequestFailed)
	}

	c.log.Debug("Account delete accepted", "account", name)
	return newLRO(poller, "accounts/"+name, "delete",
		func(armnetapp.AccountsClientDeleteResponse) anf.Ack {
			return anf.Ack{}
		}), nil
}

func (c *ControlPlane) ListPools(
	ctx context.Context,
	account string,
) ([]anf.CapacityPool, error) {
	pools := []anf.CapacityPool{}
	pager := c.pools.NewListPager(c.settings.ResourceGroup, account, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, asExternalError(err, errors.AzureRequestFailed)
		}
		for _, p := range page.Value {
			pools = append(pools, poolFromARM(account, p))
		}
	}
	return pools, nil
}

func (c *ControlPlane) CreatePool(
	ctx context.Context,
	spec anf.PoolSpec,
) (anf.Operation[anf.CapacityPool], error) {
	body := armnetapp.CapacityPool{
		Location: ptr(spec.Location),
		Properties: &armnetapp.PoolProperties{
			Size:         ptr(spec.SizeTiB * anf.TiB),
			ServiceLevel: ptr(armnetapp.ServiceLevel(spec.ServiceLevel)),
		},
	}

	poller, err := c.pools.BeginCreateOrUpdate(
		ctx,
		c.settings.ResourceGroup,
		spec.Account,
		spec.Pool,
		body,
		nil,
	)
	if err != nil {
		return nil, asExternalError(err, errors.AzureRequestFailed)
	}

	c.log.Debug("Pool create accepted",
		"account", spec.Account,
		"pool", spec.Pool,
		"size_tb", spec.SizeTiB,
		"service_level", string(spec.ServiceLevel),
	)
	return newLRO(poller, "pools/"+spec.Account+"/"+spec.Pool, "create",
		func(resp armnetapp.PoolsClientCreateOrUpdateResponse) anf.CapacityPool {
			return poolFromARM(spec.Account, &resp.CapacityPool)
		}), nil
}

// UpdatePool issues a partial createOrUpdate body, the ANF-documented route
// for resizing and dynamic service-level change. Only the patched fields are
// sent; ARM merges them into the existing pool.
func (c *ControlPlane) UpdatePool(
	ctx context.Context,
	id anf.PoolID,
	patch anf.PoolPatch,
) (anf.Operation[anf.CapacityPool], error) {
	props := &armnetapp.PoolProperties{}
	if patch.SizeTiB != nil {
		props.Size = ptr(*patch.SizeTiB * anf.TiB)
	}
	if patch.ServiceLevel != nil {
		props.ServiceLevel = ptr(armnetapp.ServiceLevel(*patch.ServiceLevel))
	}

	poller, err := c.pools.BeginCreateOrUpdate(
		ctx,
		c.settings.ResourceGroup,
		id.Account,
		id.Pool,
		armnetapp.CapacityPool{Properties: props},
		nil,
	)
	if err != nil {
		return nil, asExternalError(err, errors.AzureRequestFailed)
	}

	c.log.Debug("Pool update accepted", "account", id.Account, "pool", id.Pool)
	return newLRO(poller, "pools/"+id.Account+"/"+id.Pool, "update",
		func(resp armnetapp.PoolsClientCreateOrUpdateResponse) anf.CapacityPool {
			return poolFromARM(id.Account, &resp.CapacityPool)
		}), nil
}

func (c *ControlPlane) DeletePool(
	ctx context.Context,
	id anf.PoolID,
) (anf.Operation[anf.Ack], error) {
	poller, err := c.pools.BeginDelete(ctx, c.settings.ResourceGroup, id.Account, id.Pool, nil)
	if err != nil {
		return nil, asExternalError(err, errors.AzureRequestFailed)
	}

	c.log.Debug("Pool delete accepted", "account", id.Account, "pool", id.Pool)
	return newLRO(poller, "pools/"+id.Account+"/"+id.Pool, "delete",
		func(armnetapp.PoolsClientDeleteResponse) anf.Ack {
			return anf.Ack{}
		}), nil
}

func accountToARM(spec anf.AccountSpec) armnetapp.Account {
	account := armnetapp.Account{
		Location:   ptr(spec.Location),
		Properties: &armnetapp.AccountProperties{},
	}
	if ad := spec.ActiveDirectory; ad != nil {
		account.Properties.ActiveDirectories = []*armnetapp.ActiveDirectory{
			{
				DNS:                optional(ad.DNS),
				Domain:             optional(ad.Domain),
				SmbServerName:      optional(ad.SMBServerName),
				Username:           optional(ad.Username),
				Password:           optional(ad.Password),
				OrganizationalUnit: optional(ad.OrganizationalUnit),
				Site:               optional(ad.Site),
			},
		}
	}
	return account
}

func accountFromARM(a *armnetapp.Account) anf.Account {
	if a == nil {
		return anf.Account{}
	}
	out := anf.Account{}
	if a.ID != nil {
		out.ID = *a.ID
	}
	if a.Name != nil {
		out.Name = *a.Name
	}
	if a.Location != nil {
		out.Location = *a.Location
	}
	if a.Properties != nil && a.Properties.ProvisioningState != nil {
		out.ProvisioningState = *a.Properties.ProvisioningState
	}
	if len(a.Tags) > 0 {
		out.Tags = make(map[string]string, len(a.Tags))
		for k, v := range a.Tags {
			if v != nil {
				out.Tags[k] = *v
			}
		}
	}
	return out
}

func poolFromARM(account string, p *armnetapp.CapacityPool) anf.CapacityPool {
	if p == nil {
		return anf.CapacityPool{}
	}
	out := anf.CapacityPool{Account: account}
	if p.ID != nil {
		out.ID = *p.ID
	}
	if p.Name != nil {
		// ARM reports pool names as "account/pool".
		name := *p.Name
		if idx := strings.LastIndex(name, "/"); idx >= 0 {
			name = name[idx+1:]
		}
		out.Name = name
	}
	if p.Location != nil {
		out.Location = *p.Location
	}
	if p.Properties != nil {
		if p.Properties.Size != nil {
			out.SizeBytes = *p.Properties.Size
		}
		if p.Properties.ServiceLevel != nil {
			out.ServiceLevel = anf.ServiceLevel(*p.Properties.ServiceLevel)
		}
		if p.Properties.ProvisioningState != nil {
			out.ProvisioningState = *p.Properties.ProvisioningState
		}
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}

// optional returns nil for the empty string so unset spec fields stay absent
// from the ARM payload.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
