//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Tidies the module and builds the sandbox binary.
func (Build) Sandbox() error {
	mg.Deps(Build.Shaders)
	if err := goTidy(); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("build", "-o", sandboxBin, "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Validates the builtin GLSL shaders.
func (Build) Shaders() error {
	return validateShaders()
}
