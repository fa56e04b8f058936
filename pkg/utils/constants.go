/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

type ReturnCode int

var ProjectVersion string = "Development Build"

const (
	// ProjectName is the name of the executable
	ProjectName = "cfg-adguard-dns"

	// ResolvconfHeadEnvVar overrides the path of the managed head file
	ResolvconfHeadEnvVar = "RESOLVCONF_HEAD_PATH"
	// ResolvconfHeadDefaultPath is used when no override is present
	ResolvconfHeadDefaultPath = "/etc/resolvconf/resolv.conf.d/head"

	// ReloadCommand applies the rewritten head file to the running resolver
	ReloadCommand     = "resolvconf"
	ReloadCommandFlag = "-u"

	// LookupCommand and StatusProbeHost are used by the status verb to
	// resolve a well-known domain through the OS resolver
	LookupCommand   = "nslookup"
	StatusProbeHost = "wikipedia.org"

	CommandActivate   = "activate"
	CommandDeactivate = "deactivate"
	CommandStatus     = "status"
	CommandVersion    = "version"
	CommandHelp       = "help"

	UnknownArgumentMessage = "Unknown argument. Try `cfg-adguard-dns --help` for more information"

	// Return Codes
	Success ReturnCode = 0
)

// HelpMessage is printed verbatim for bare and --help invocations
const HelpMessage = `
Usage: sudo cfg-adguard-dns [options...]

        --activate      Activate AdGuard DNS server
        --deactivate    Deactivate AdGuard DNS server
        --status        Shows wether AdGuard DNS server is activated or not
        --help          Display the current help message

Disclaimer: Using this tool will restore the /etc/resolvconf/resolv.conf.d/head file to its default state.
`

// (1-19) Basic errors outside of the tool itself
var (
	HelpRequested  = CustomError{Code: 5, Message: "flag: help requested"}
	GenericFailure = CustomError{Code: 10, Message: "GenericFailure"}
)

// (20-69) Input and configuration errors
var (
	IncorrectCommandLineParameters = CustomError{Code: 28, Message: "IncorrectCommandLineParameters"}
	FailedReadingConfiguration     = CustomError{Code: 34, Message: "FailedReadingConfiguration"}
)

// (70-99) Head file errors
var (
	FailedToCreateHeadFile = CustomError{Code: 70, Message: "FailedToCreateHeadFile"}
	FailedToWriteTemplate  = CustomError{Code: 71, Message: "FailedToWriteTemplate"}
)

// (100-149) External command errors
var (
	UpdateResolvconfFailed = CustomError{Code: 100, Message: "UpdateResolvconfFailed", Details: "failed to execute resolvconf"}
	LookupCommandFailed    = CustomError{Code: 101, Message: "LookupCommandFailed", Details: "failed to execute nslookup"}
)
