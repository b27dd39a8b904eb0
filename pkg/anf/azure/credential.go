// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package azure

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// CredentialProvider resolves the ambient identity used against the Azure
// control plane. It is injected rather than resolved from process globals so
// tests can substitute a fixed credential.
type CredentialProvider interface {
	Credential() (azcore.TokenCredential, error)
}

// DefaultCredentialProvider resolves identity through the default Azure
// credential chain: environment variables, workload/managed identity, then
// developer tooling (az CLI). Token caching follows the chain's own policy.
type DefaultCredentialProvider struct {
	Options *azidentity.DefaultAzureCredentialOptions
}

func (p DefaultCredentialProvider) Credential() (azcore.TokenCredential, error) {
	return azidentity.NewDefaultAzureCredential(p.Options)
}

// StaticCredentialProvider returns a pre-built credential, mainly for tests.
type StaticCredentialProvider struct {
	Cred azcore.TokenCredential
}

func (p StaticCredentialProvider) Credential() (azcore.TokenCredential, error) {
	return p.Cred, nil
}
