// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package azure

import (
	stderrors "errors"
	"strconv"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/stratastor/nimbus/pkg/errors"
)

// asExternalError shapes a control-plane failure into a coded error. When the
// SDK surfaced an HTTP response, the remote status and message pass through
// verbatim; transport-level failures keep the code's default status.
func asExternalError(err error, code errors.ErrorCode) error {
	if err == nil {
		return nil
	}

	var respErr *azcore.ResponseError
	if stderrors.As(err, &respErr) {
		ne := errors.New(code, err.Error()).WithStatus(respErr.StatusCode)
		ne.WithMetadata("azure_status", strconv.Itoa(respErr.StatusCode))
		if respErr.ErrorCode != "" {
			ne.WithMetadata("azure_error_code", respErr.ErrorCode)
		}
		return ne
	}

	return errors.New(code, err.Error())
}
