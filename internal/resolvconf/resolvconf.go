/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package resolvconf renders and writes the two fixed bodies of the managed
// resolvconf head file. The file is truncated when the writer is created,
// before any verb dispatch happens, so even help and unknown-argument
// invocations leave it empty. This mirrors the documented behavior of the
// tool and must not be reordered.
package resolvconf

import (
	"fmt"
	"os"
	"strings"
)

// DefaultTemplate is the disclaimer header written regardless of activation
// state. The leading newline is part of the file format.
const DefaultTemplate = `
# Dynamic resolv.conf(5) file for glibc resolver(3) generated by resolvconf(8)
#     DO NOT EDIT THIS FILE BY HAND -- YOUR CHANGES WILL BE OVERWRITTEN
# 127.0.0.53 is the systemd-resolved stub resolver.
# run "systemd-resolve --status" to see details about the actual nameservers.
`

const adguardBlockHeader = `
# AdGuard DNS
# https://adguard-dns.com/en/public-dns.html
`

// DefaultNameservers are the public AdGuard DNS endpoints.
var DefaultNameservers = []string{"94.140.14.14", "94.149.15.15"}

// AdGuardBlock renders the provider block for the given nameservers.
func AdGuardBlock(nameservers []string) string {
	var b strings.Builder

	b.WriteString(adguardBlockHeader)

	for _, ns := range nameservers {
		fmt.Fprintf(&b, "nameserver %s\n", ns)
	}

	return b.String()
}

// ActivatedTemplate is the full body written by activate: the base template
// joined to the provider block with a single space.
func ActivatedTemplate(nameservers []string) string {
	return DefaultTemplate + " " + AdGuardBlock(nameservers)
}

// Writer writes one of the two template bodies to the head file.
type Writer interface {
	WriteBase() error
	WriteActivated() error
}

// FileWriter is the on-disk implementation of Writer. Creating it truncates
// the target file.
type FileWriter struct {
	path        string
	file        *os.File
	nameservers []string
}

// NewFileWriter creates (or truncates) the head file at path. Callers own
// Close.
func NewFileWriter(path string, nameservers []string) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	if len(nameservers) == 0 {
		nameservers = DefaultNameservers
	}

	return &FileWriter{path: path, file: f, nameservers: nameservers}, nil
}

// Path returns the resolved location of the managed file.
func (w *FileWriter) Path() string {
	return w.path
}

// WriteBase writes the base template only, removing any provider block.
func (w *FileWriter) WriteBase() error {
	_, err := w.file.WriteString(DefaultTemplate)

	return err
}

// WriteActivated writes the base template plus the AdGuard provider block.
func (w *FileWriter) WriteActivated() error {
	_, err := w.file.WriteString(ActivatedTemplate(w.nameservers))

	return err
}

// Close releases the underlying file handle.
func (w *FileWriter) Close() error {
	return w.file.Close()
}
