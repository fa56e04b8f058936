/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/device-management-toolkit/cfg-adguard-dns/pkg/utils"
)

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	if ctx.JsonOutput {
		info := map[string]string{
			"app":     strings.ToUpper(utils.ProjectName),
			"version": utils.ProjectVersion,
		}

		outBytes, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(outBytes))
	} else {
		fmt.Println(strings.ToUpper(utils.ProjectName))
		fmt.Printf("Version %s\n", utils.ProjectVersion)
	}

	return nil
}
