/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommandCapturesStdout(t *testing.T) {
	out, err := runCommand("sh", "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}

func TestRunCommandToleratesNonzeroExit(t *testing.T) {
	// A command that starts but exits nonzero is not a spawn failure; the
	// output is still returned for the caller to inspect or discard.
	out, err := runCommand("sh", "-c", "echo partial; exit 3")
	require.NoError(t, err)
	assert.Equal(t, "partial\n", string(out))
}

func TestRunCommandSpawnFailure(t *testing.T) {
	out, err := runCommand("definitely-not-an-installed-binary")
	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestNewOSNetworker(t *testing.T) {
	n := NewOSNetworker()
	assert.IsType(t, &RealOSNetworker{}, n)
}
