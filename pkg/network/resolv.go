/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package network

import (
	"context"
	"errors"
	"os/exec"

	"github.com/device-management-toolkit/cfg-adguard-dns/pkg/utils"
	log "github.com/sirupsen/logrus"
)

func (n *RealOSNetworker) UpdateResolvconf() error {
	log.Debug("applying resolvconf update")

	_, err := runCommand(utils.ReloadCommand, utils.ReloadCommandFlag)
	if err != nil {
		log.Error("Error applying resolvconf update:", err)

		return utils.UpdateResolvconfFailed
	}

	return nil
}

func (n *RealOSNetworker) LookupHost(host string) ([]byte, error) {
	log.Debugf("resolving %s through the OS resolver", host)

	out, err := runCommand(utils.LookupCommand, host)
	if err != nil {
		log.Error("Error running lookup:", err)

		return nil, utils.LookupCommandFailed
	}

	return out, nil
}

// runCommand executes an external command and returns its stdout. A nonzero
// exit is not an error: the caller inspects or discards the output either
// way, and only a failure to spawn the process is fatal to the run. No
// timeout is applied; a hung command hangs the invocation.
func runCommand(name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(context.Background(), name, args...)

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return out, nil
		}

		return nil, err
	}

	return out, nil
}
