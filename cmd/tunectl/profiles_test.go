package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfilesCommandListsCatalog(t *testing.T) {
	var buf bytes.Buffer
	profilesCmd.SetOut(&buf)

	profilesCmd.Run(profilesCmd, nil)

	out := buf.String()
	assert.Contains(t, out, "1. Balanced")
	assert.Contains(t, out, "2. Aggressive")
	assert.Contains(t, out, "Reload sysctl settings")
}

func TestRootCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"apply", "rollback", "profiles", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
