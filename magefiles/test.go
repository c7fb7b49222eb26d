//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the unit tests of every package that does not need a display.
func (Test) Unit() error {
	pkgs := []string{
		"./engine/containers/...",
		"./engine/core/...",
		"./engine/math/...",
		"./engine/mesh/...",
		"./engine/physics/...",
		"./engine/assets/...",
		"./engine/text/...",
		"./engine/scene/...",
		"./engine/renderer",
		"./engine/renderer/components/...",
		"./engine/systems/...",
	}
	if _, err := executeCmd("go", withArgs(append([]string{"test", "-race", "-count=1"}, pkgs...)...), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs every test, including the ones linking GLFW.
func (Test) All() error {
	if _, err := executeCmd("go", withArgs("test", "-count=1", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
