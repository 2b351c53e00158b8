//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the desktop binary into bin/fbcore.
func (Build) Desktop() error {
	if err := os.MkdirAll("bin", 0o755); err != nil {
		return err
	}
	_, err := executeCmd("go", withArgs("build", "-o", "bin/fbcore", "./cmd/fbcore"), withStream())
	return err
}

// Builds the terminal-only binary, without cgo and the window backend.
func (Build) Headless() error {
	if err := os.MkdirAll("bin", 0o755); err != nil {
		return err
	}
	_, err := executeCmd("go",
		withArgs("build", "-o", "bin/fbcore-nocgo", "./cmd/fbcore"),
		withEnv("CGO_ENABLED=0"),
		withStream())
	return err
}

// Builds the cartridge image with TinyGo. GAME picks the game (default particles).
func (Build) GBA() error {
	if err := os.MkdirAll("bin", 0o755); err != nil {
		return err
	}
	game := os.Getenv("GAME")
	if game == "" {
		game = "particles"
	}
	_, err := executeCmd("tinygo", withArgs(
		"build", "-target", "gameboyadvance",
		"-ldflags", "-X main.gameID="+game,
		"-o", "bin/fbcore-"+game+".gba",
		"./cmd/fbcore-gba",
	), withStream())
	return err
}

// Runs vet and the test suite.
func Test() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}

// Builds every target.
func All() {
	mg.SerialDeps(Test, Build.Desktop, Build.GBA)
}
