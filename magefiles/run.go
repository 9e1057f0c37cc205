//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the unit tests.
func (Test) Unit() error {
	fmt.Println("Run unit tests...")
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the engine tests with the race detector.
func (Test) Race() error {
	mg.Deps(Build.Vet)
	if _, err := executeCmd("go", withArgs("test", "-race", "-count=1", "./engine/..."), withStream()); err != nil {
		return err
	}
	return nil
}

type Run mg.Namespace

// Runs the example application against a config file.
func (Run) Demo(config string) error {
	if _, err := executeCmd("go", withArgs("run", ".", "-config", config), withStream()); err != nil {
		return err
	}
	return nil
}
