package main

import (
	"fmt"
	"strings"

	"github.com/jamesainslie/seek/pkg/seek/config"
	"github.com/jamesainslie/seek/pkg/seek/filter"
	"github.com/jamesainslie/seek/pkg/seek/finder"
	"github.com/jamesainslie/seek/pkg/seek/output"
)

// buildConfig creates a finder.Config from the loaded configuration, the
// positional roots, and the -t/-n flag values. Every value is validated here
// so that a bad token, pattern or glob fails before any traversal starts.
func buildConfig(cfg *config.Config, args, typeVals, nameVals []string) (finder.Config, error) {
	var opts []finder.Option

	roots := args
	if len(roots) == 0 && cfg != nil && cfg.DefaultPath != "" {
		roots = []string{cfg.DefaultPath}
	}
	opts = append(opts, finder.WithPaths(roots...))

	set, err := filter.ParseTypes(typeVals)
	if err != nil {
		return finder.Config{}, fmt.Errorf("invalid --type: %w", err)
	}
	opts = append(opts, finder.WithTypes(set))

	names, err := filter.CompileNames(nameVals)
	if err != nil {
		return finder.Config{}, fmt.Errorf("invalid --name: %w", err)
	}
	opts = append(opts, finder.WithNames(names...))

	if cfg != nil {
		globs, err := filter.CompileGlobs(cfg.Exclude)
		if err != nil {
			return finder.Config{}, fmt.Errorf("invalid --exclude: %w", err)
		}
		opts = append(opts, finder.WithExclude(globs...))
	}

	return finder.NewConfig(opts...), nil
}

// joinFormats lists the registered output formats for help text.
func joinFormats() string {
	return strings.Join(output.Available(), ", ")
}
