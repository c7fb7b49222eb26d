//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Builds and runs the sandbox with config.toml.
func (Run) Sandbox() error {
	mg.Deps(Build.Sandbox)
	fmt.Println("Run sandbox...")
	if _, err := executeCmd(sandboxBin, withArgs("-config", "config.toml"), withStream()); err != nil {
		return err
	}
	return nil
}
