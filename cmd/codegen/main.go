package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/slotparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outputKey            = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate multi-argument adapters for object emitters",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Highest number of emitted values to generate adapters for",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write the generated code to",
				Value: "object/args_gen.go",
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
	log.Printf("Codegen for object adapters started !")
	defer func() {
		log.Printf("Codegen for object adapters finished in %v", time.Since(start))
	}()

	genericParamCount := int(cmd.Uint(genericParamCountKey))
	if genericParamCount < 2 {
		return fmt.Errorf("%s must be at least 2, got %d", genericParamCountKey, genericParamCount)
	}
	log.Printf("Generic param count: %d", genericParamCount)

	contents, err := format.Source([]byte(templates.ArgsGen(genericParamCount)))
	if err != nil {
		return fmt.Errorf("can't format generated code: %w", err)
	}

	out := cmd.String(outputKey)
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return err
	}
	log.Printf("Wrote %s", out)
	return nil
}
