/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"github.com/device-management-toolkit/cfg-adguard-dns/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// DeactivateCmd represents the deactivate command
type DeactivateCmd struct{}

// Run restores the head file to the base template and applies it with the
// reload command.
func (cmd *DeactivateCmd) Run(ctx *Context) error {
	if err := ctx.Head.WriteBase(); err != nil {
		log.Error("Status: Unable to write head file ", err)

		return utils.FailedToWriteTemplate
	}

	if err := ctx.Networker.UpdateResolvconf(); err != nil {
		return err
	}

	log.Info("Status: AdGuard DNS deactivated")

	return nil
}
