//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Replays the scripted input sequence with the default camera config.
func (Run) Demo() error {
	fmt.Println("Run orbit demo...")
	_, err := executeCmd("go", withArgs("run", "."), withStream())
	return err
}

// Runs the demo against a config file and keeps watching it. Usage: mage run:watch orbit.toml
func (Run) Watch(path string) error {
	fmt.Printf("Run orbit demo watching %s...\n", path)
	_, err := executeCmd("go", withArgs("run", ".", path), withStream())
	return err
}
