/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/device-management-toolkit/cfg-adguard-dns/pkg/utils"
)

const lookupErrMsg = "nslookup is not installed or could not lookup " + utils.StatusProbeHost

// StatusCmd represents the status command.
//
// Status is inferred by resolving a well-known domain through the OS
// resolver and checking the answer for the AdGuard server addresses, not by
// reading the head file. It can therefore disagree with the file content
// when the resolver cache is stale or a previous reload failed silently.
type StatusCmd struct{}

// Run executes the status command
func (cmd *StatusCmd) Run(ctx *Context) error {
	out, err := ctx.Networker.LookupHost(utils.StatusProbeHost)
	if err != nil {
		return err
	}

	if !utf8.Valid(out) {
		fmt.Fprintln(os.Stderr, lookupErrMsg)

		return nil
	}

	activated := containsNameserver(string(out), ctx.Nameservers)

	if ctx.JsonOutput {
		info := map[string]bool{"activated": activated}

		outBytes, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(outBytes))
	} else if activated {
		fmt.Println("ADGUARD DNS is activated")
	} else {
		fmt.Println("ADGUARD DNS is deactivated")
	}

	return nil
}

// containsNameserver reports whether the lookup output mentions any of the
// provider addresses as a substring.
func containsNameserver(output string, nameservers []string) bool {
	for _, ns := range nameservers {
		if strings.Contains(output, ns) {
			return true
		}
	}

	return false
}
