/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/device-management-toolkit/cfg-adguard-dns/internal/resolvconf"
	"github.com/device-management-toolkit/cfg-adguard-dns/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput runs fn with stdout and stderr redirected and returns what
// was written to each.
func captureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()

	oldStdout := os.Stdout
	oldStderr := os.Stderr

	outR, outW, err := os.Pipe()
	require.NoError(t, err)

	errR, errW, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = outW
	os.Stderr = errW

	fn()

	outW.Close()
	errW.Close()

	outBytes, err := io.ReadAll(outR)
	require.NoError(t, err)

	errBytes, err := io.ReadAll(errR)
	require.NoError(t, err)

	os.Stdout = oldStdout
	os.Stderr = oldStderr

	return string(outBytes), string(errBytes)
}

func TestStatusCmd_Run_Classification(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected string
	}{
		{
			name:     "first server address present",
			output:   "Server:  94.140.14.14\nAddress: 94.140.14.14#53\n\nName: wikipedia.org\n",
			expected: "ADGUARD DNS is activated\n",
		},
		{
			name:     "second server address present",
			output:   "Server:  94.149.15.15\nAddress: 94.149.15.15#53\n",
			expected: "ADGUARD DNS is activated\n",
		},
		{
			name:     "neither address present",
			output:   "Server:  127.0.0.53\nAddress: 127.0.0.53#53\n\nName: wikipedia.org\nAddress: 185.15.59.224\n",
			expected: "ADGUARD DNS is deactivated\n",
		},
		{
			name:     "empty output",
			output:   "",
			expected: "ADGUARD DNS is deactivated\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			networker := &MockOSNetworker{}
			networker.On("LookupHost", utils.StatusProbeHost).Return([]byte(tt.output), nil)

			cmd := &StatusCmd{}
			ctx := &Context{Networker: networker, Nameservers: resolvconf.DefaultNameservers}

			var err error

			stdout, stderr := captureOutput(t, func() {
				err = cmd.Run(ctx)
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, stdout)
			assert.Empty(t, stderr)
			networker.AssertExpectations(t)
		})
	}
}

func TestStatusCmd_Run_JSONOutput(t *testing.T) {
	networker := &MockOSNetworker{}
	networker.On("LookupHost", utils.StatusProbeHost).Return([]byte("Address: 94.140.14.14#53\n"), nil)

	cmd := &StatusCmd{}
	ctx := &Context{Networker: networker, Nameservers: resolvconf.DefaultNameservers, JsonOutput: true}

	var err error

	stdout, _ := captureOutput(t, func() {
		err = cmd.Run(ctx)
	})

	assert.NoError(t, err)

	var info map[string]bool

	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.True(t, info["activated"])
}

func TestStatusCmd_Run_UndecodableOutput(t *testing.T) {
	networker := &MockOSNetworker{}
	networker.On("LookupHost", utils.StatusProbeHost).Return([]byte{0xff, 0xfe, 0xfd}, nil)

	cmd := &StatusCmd{}
	ctx := &Context{Networker: networker, Nameservers: resolvconf.DefaultNameservers}

	var err error

	stdout, stderr := captureOutput(t, func() {
		err = cmd.Run(ctx)
	})

	// Not a failure: the error line goes to stderr and no verdict is printed
	assert.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "nslookup is not installed or could not lookup wikipedia.org")
}

func TestStatusCmd_Run_LookupSpawnFailure(t *testing.T) {
	networker := &MockOSNetworker{}
	networker.On("LookupHost", utils.StatusProbeHost).Return(nil, utils.LookupCommandFailed)

	cmd := &StatusCmd{}
	ctx := &Context{Networker: networker, Nameservers: resolvconf.DefaultNameservers}

	var err error

	stdout, _ := captureOutput(t, func() {
		err = cmd.Run(ctx)
	})

	assert.Equal(t, utils.LookupCommandFailed, err)
	assert.Empty(t, stdout)
}

func TestStatusCmd_Run_CustomNameservers(t *testing.T) {
	networker := &MockOSNetworker{}
	networker.On("LookupHost", utils.StatusProbeHost).Return([]byte("Address: 94.140.14.140#53\n"), nil)

	cmd := &StatusCmd{}
	ctx := &Context{Networker: networker, Nameservers: []string{"94.140.14.140"}}

	var err error

	stdout, _ := captureOutput(t, func() {
		err = cmd.Run(ctx)
	})

	assert.NoError(t, err)
	assert.Equal(t, "ADGUARD DNS is activated\n", stdout)
}
