package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/spindlework/spindle/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outputKey            = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the arity-typed constructors for spindle",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Number of generic parameters to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "Path of the generated file",
				Value: "arity.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for spindle started!")
	defer func() {
		log.Printf("Codegen for spindle finished in %v", time.Since(start))
	}()

	genericParamCount := cmd.Uint(genericParamCountKey)
	out := cmd.String(outputKey)

	contents := templates.ArityGen(int(genericParamCount))
	return os.WriteFile(out, []byte(contents), 0644)
}
