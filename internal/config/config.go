/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package config resolves where the managed head file lives and which
// nameservers belong in the provider block.
package config

import (
	"os"

	"github.com/device-management-toolkit/cfg-adguard-dns/internal/resolvconf"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Config holds the tool configuration. The head path may be overridden by
// RESOLVCONF_HEAD_PATH; a set-but-empty variable counts as set and yields an
// empty path, which then fails at file creation like any other bad path.
type Config struct {
	HeadPath    string   `yaml:"headPath" env:"RESOLVCONF_HEAD_PATH" env-default:"/etc/resolvconf/resolv.conf.d/head"`
	Nameservers []string `yaml:"nameservers"`
}

// Load reads the optional YAML configuration file and applies environment
// overrides on top. An empty path skips the file and resolves from the
// environment alone.
func Load(path string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// EffectiveNameservers returns the configured nameserver list, falling back
// to the public AdGuard endpoints when the configuration names none.
func (c Config) EffectiveNameservers() []string {
	if len(c.Nameservers) > 0 {
		return c.Nameservers
	}

	return resolvconf.DefaultNameservers
}
