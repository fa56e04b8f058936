/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/device-management-toolkit/cfg-adguard-dns/internal/commands"
	"github.com/device-management-toolkit/cfg-adguard-dns/internal/config"
	"github.com/device-management-toolkit/cfg-adguard-dns/internal/resolvconf"
	"github.com/device-management-toolkit/cfg-adguard-dns/pkg/network"
	"github.com/device-management-toolkit/cfg-adguard-dns/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// Global flags that apply to all commands
type Globals struct {
	Config string `help:"Path to optional YAML configuration file" name:"config" type:"path"`

	LogLevel   string `help:"Set log level" default:"info" enum:"trace,debug,info,warn,error,fatal,panic"`
	JsonOutput bool   `help:"Output in JSON format" name:"json" short:"j"`
	Verbose    bool   `help:"Enable verbose logging" name:"verbose" short:"v"`
}

// CLI represents the complete command line interface
type CLI struct {
	Globals

	Activate   commands.ActivateCmd   `cmd:"activate" help:"Activate AdGuard DNS for the OS resolver"`
	Deactivate commands.DeactivateCmd `cmd:"deactivate" help:"Deactivate AdGuard DNS and restore the default head file"`
	Status     commands.StatusCmd     `cmd:"status" help:"Show whether AdGuard DNS is currently answering resolver queries"`
	Version    commands.VersionCmd    `cmd:"version" help:"Display the current version of cfg-adguard-dns"`
}

// AfterApply applies global settings after flags are parsed
func (g *Globals) AfterApply(ctx *kong.Context) error {
	// Configure logging based on flags
	if g.Verbose {
		log.SetLevel(log.TraceLevel)
	} else {
		lvl, err := log.ParseLevel(g.LogLevel)
		if err != nil {
			log.Warn(err)
			log.SetLevel(log.InfoLevel)
		} else {
			log.SetLevel(lvl)
		}
	}

	// Configure log format
	if g.JsonOutput {
		log.SetFormatter(&log.JSONFormatter{
			DisableHTMLEscape: true,
		})
	} else {
		log.SetFormatter(&log.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	return nil
}

// Parse creates a new Kong parser and parses the command line
func Parse(args []string) (*kong.Context, *CLI, error) {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name(utils.ProjectName),
		kong.Description("Toggles AdGuard DNS by rewriting the resolvconf head file and reloading the OS resolver"),
		kong.UsageOnError(),
		kong.DefaultEnvars("CFG_ADGUARD_DNS"),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		return nil, nil, err
	}

	// Slice off program name if present
	var parseArgs []string
	if len(args) > 1 {
		parseArgs = args[1:]
	} else {
		parseArgs = []string{}
	}

	kctx, perr := parser.Parse(parseArgs)
	if perr != nil {
		return nil, nil, perr
	}

	return kctx, &cli, nil
}

// Execute resolves the configuration, truncates the head file, and runs the
// requested verb with the real OS dependencies.
//
// The head file is created/truncated here, before any argument dispatch:
// every invocation, including --help and unknown arguments, leaves the file
// empty unless a verb rewrites it. This ordering is part of the documented
// contract of the tool and must not change.
func Execute(args []string) error {
	cfg, err := config.Load(scanConfigFlag(args))
	if err != nil {
		log.Error("Failed to read configuration: ", err)

		return utils.FailedReadingConfiguration
	}

	head, err := resolvconf.NewFileWriter(cfg.HeadPath, cfg.Nameservers)
	if err != nil {
		log.Error("Failed to create head file: ", err)

		return utils.FailedToCreateHeadFile
	}
	defer head.Close()

	return ExecuteWithDeps(args, head, network.NewOSNetworker(), cfg)
}

// ExecuteWithDeps dispatches on the first argument and runs the selected
// command with the provided dependencies (useful for testing).
func ExecuteWithDeps(args []string, head resolvconf.Writer, networker network.OSNetworker, cfg config.Config) error {
	if len(args) < 2 || args[1] == "--help" {
		fmt.Print(utils.HelpMessage + "\n")

		return nil
	}

	// Verbs are matched on the first argument only, exact and
	// case-sensitive, with the bare and the --prefixed spelling accepted.
	verb := strings.TrimPrefix(args[1], "--")
	if !isKnownCommand(verb) {
		fmt.Fprintln(os.Stderr, utils.UnknownArgumentMessage)

		return nil
	}

	parseArgs := append([]string{args[0], verb}, args[2:]...)

	kctx, cli, err := Parse(parseArgs)
	if err != nil {
		return err
	}

	// Create shared context
	appCtx := &commands.Context{
		Head:        head,
		Networker:   networker,
		Nameservers: cfg.EffectiveNameservers(),
		LogLevel:    cli.LogLevel,
		JsonOutput:  cli.JsonOutput,
		Verbose:     cli.Verbose,
	}

	return kctx.Run(appCtx)
}

// isKnownCommand reports whether cmd names one of the dispatchable verbs.
func isKnownCommand(cmd string) bool {
	knownCommands := []string{
		utils.CommandActivate,
		utils.CommandDeactivate,
		utils.CommandStatus,
		utils.CommandVersion,
	}
	for _, known := range knownCommands {
		if cmd == known {
			return true
		}
	}

	return false
}

// scanConfigFlag performs a preliminary scan for --config so the
// configuration can be resolved before Kong parses the command line.
func scanConfigFlag(args []string) string {
	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		} else if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}

	return ""
}
