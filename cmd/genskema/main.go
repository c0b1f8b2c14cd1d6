package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	genskema "github.com/reoring/genskema"
	"github.com/reoring/genskema/arb"
	_ "github.com/reoring/genskema/codec" // register reserved brands
	"github.com/reoring/genskema/transit"
	"github.com/reoring/genskema/yamlschema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "gen":
		genCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "genskema CLI\n\nUsage:\n  genskema gen -schema schema.yaml [-n count]\n\nGenerates values conforming to the schema, decodes them, and prints transit JSON.")
}

func genCmd(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	var schemaPath string
	var count int
	fs.StringVar(&schemaPath, "schema", "", "path to a YAML schema definition")
	fs.IntVar(&count, "n", 1, "number of values to generate")
	_ = fs.Parse(args)
	if schemaPath == "" || count < 1 {
		fs.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(schemaPath)
	if err != nil {
		fail(err)
	}
	node, err := yamlschema.ImportYAML(data)
	if err != nil {
		fail(err)
	}

	ctx := context.Background()
	g := arb.New()
	for i := 0; i < count; i++ {
		wire, err := g.Generate(node)
		if err != nil {
			fail(err)
		}
		domain, err := genskema.Decode(ctx, node, wire)
		if err != nil {
			fail(err)
		}
		out, err := transit.Marshal(domain)
		if err != nil {
			fail(err)
		}
		fmt.Println(string(out))
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "genskema:", err)
	os.Exit(1)
}
