package commands

import (
	"github.com/device-management-toolkit/cfg-adguard-dns/internal/resolvconf"
	"github.com/device-management-toolkit/cfg-adguard-dns/pkg/network"
)

// Context holds shared dependencies injected into commands
type Context struct {
	Head        resolvconf.Writer
	Networker   network.OSNetworker
	Nameservers []string
	LogLevel    string
	JsonOutput  bool
	Verbose     bool
}
