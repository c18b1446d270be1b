package cmd

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/loaders"
	"github.com/df07/whitted-raytracer/pkg/material"
	"github.com/df07/whitted-raytracer/pkg/scene"
)

// LoadScene resolves a builtin scene name or a path to a YAML scene file.
func LoadScene(nameOrPath string, tracer material.Tracer, logger core.Logger) (*scene.Scene, error) {
	switch strings.ToLower(filepath.Ext(nameOrPath)) {
	case ".yaml", ".yml":
		return loaders.LoadScene(nameOrPath, tracer, logger)
	default:
		return scene.Build(nameOrPath, tracer)
	}
}

// List builtin scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{info.Name, info.Description})
	}
	table.Render()

	_, err := ctx.App.Writer.Write(buf.Bytes())
	return err
}
