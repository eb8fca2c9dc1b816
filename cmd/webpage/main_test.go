package main

import (
	"net"
	"testing"

	"github.com/wesleyorama2/webpage/internal/cli"
	"github.com/wesleyorama2/webpage/internal/server"
)

// TestMainExit_AddressInUse tests that a failed bind makes the process exit nonzero
func TestMainExit_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", server.Address)
	if err != nil {
		t.Skipf("cannot hold %s for the test: %v", server.Address, err)
	}
	defer ln.Close()

	cli.RootCmd.SetArgs([]string{"styled", "--no-color"})
	defer cli.RootCmd.SetArgs(nil)

	if code := Main(); code != 1 {
		t.Errorf("Main() = %d, want 1", code)
	}
}

// TestMainExit_Help tests that running without a subcommand exits zero
func TestMainExit_Help(t *testing.T) {
	cli.RootCmd.SetArgs([]string{})
	defer cli.RootCmd.SetArgs(nil)

	if code := Main(); code != 0 {
		t.Errorf("Main() = %d, want 0", code)
	}
}
