/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"github.com/device-management-toolkit/cfg-adguard-dns/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// ActivateCmd represents the activate command
type ActivateCmd struct{}

// Run writes the base template plus the AdGuard provider block to the head
// file and applies it with the reload command. The reload command's output
// is discarded; only a spawn failure aborts the run.
func (cmd *ActivateCmd) Run(ctx *Context) error {
	if err := ctx.Head.WriteActivated(); err != nil {
		log.Error("Status: Unable to write head file ", err)

		return utils.FailedToWriteTemplate
	}

	if err := ctx.Networker.UpdateResolvconf(); err != nil {
		return err
	}

	log.Info("Status: AdGuard DNS activated")

	return nil
}
