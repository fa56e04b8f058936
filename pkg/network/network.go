/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package network

// OSNetworker provides the external resolver operations of the host OS
type OSNetworker interface {
	// UpdateResolvconf applies the rewritten head file to the running
	// resolver configuration. Command output is discarded.
	UpdateResolvconf() error
	// LookupHost resolves host through the OS resolver and returns the
	// raw stdout of the lookup tool.
	LookupHost(host string) ([]byte, error)
}

// RealOSNetworker is the concrete implementation of OSNetworker
type RealOSNetworker struct{}
