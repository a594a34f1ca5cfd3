package main

import (
	"flag"
	"fmt"
	"os"
)

type flags struct {
	config    string
	windowed  bool
	wireframe bool
	dev       bool
}

func NewFlags(args []string) (*flags, error) {
	fs := flag.NewFlagSet("arc-breaker", flag.ContinueOnError)
	config := fs.String("config", "", "Path to a TOML config file. Defaults are used when omitted.")
	windowed := fs.Bool("windowed", false, "If provided, forces windowed mode even when the config asks for fullscreen")
	wireframe := fs.Bool("wireframe", false, "If provided, every mesh is drawn as an outline")
	dev := fs.Bool("dev", false, "If provided, logs with the development console encoder")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("error: Unexpected arguments: %v", fs.Args())
	}

	if *config != "" {
		if _, err := os.Stat(*config); err != nil {
			return nil, fmt.Errorf("error: Config file not found:\n\t%s", err.Error())
		}
	}

	return &flags{
		config:    *config,
		windowed:  *windowed,
		wireframe: *wireframe,
		dev:       *dev,
	}, nil
}
