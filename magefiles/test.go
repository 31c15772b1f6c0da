//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every package test with the race detector.
func (Test) All() error {
	mg.Deps(goModTidy)
	_, err := executeCmd("go", withArgs("test", "-race", "-count=1", "./..."), withStream())
	return err
}

// Runs the view, matrix and orbit camera tests only.
func (Test) Math() error {
	_, err := executeCmd("go", withArgs("test", "-count=1", "./engine/math/...", "./engine/components/..."), withStream())
	return err
}

// Runs go vet.
func (Test) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}
