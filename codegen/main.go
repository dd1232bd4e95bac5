// Command codegen regenerates resources/<service> and resources/registry.go
// from the CloudFormation Resource Specification.
//
//	go run ./codegen                      # databrew, mediapackage and lambda.LayerVersion
//	go run ./codegen --service databrew   # one service only
//	go run ./codegen --dry-run            # report without writing
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lex00/cloudformation-schema-go/spec"
)

type options struct {
	output  string
	service string
	dryRun  bool
	force   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.output, "output", "", "Module root to write into (default: the module containing the working directory)")
	flag.StringVar(&opts.service, "service", "", "Comma separated services to generate (databrew, mediapackage, lambda)")
	flag.BoolVar(&opts.dryRun, "dry-run", false, "Report what would be generated without writing files")
	flag.BoolVar(&opts.force, "force", false, "Download the resource specification even if cached")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "codegen: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	root, err := moduleRoot(opts.output)
	if err != nil {
		return err
	}
	sel, err := selectionFor(opts.service)
	if err != nil {
		return err
	}

	cfnSpec, err := spec.FetchSpec(&spec.FetchOptions{Force: opts.force})
	if err != nil {
		return fmt.Errorf("fetching resource specification: %w", err)
	}
	services := parseSpec(cfnSpec, sel)
	fmt.Printf("Resource specification %s: %d services selected\n", cfnSpec.ResourceSpecificationVersion, len(services))

	stats, err := generateCode(services, root, opts.dryRun)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}
	if err := generateRegistry(services, root, opts.dryRun); err != nil {
		return fmt.Errorf("generating registry: %w", err)
	}

	fmt.Printf("%d resources, %d property types, %d files in %s\n",
		stats.Resources, stats.PropertyTypes, stats.FilesWritten, root)
	return nil
}

// moduleRoot resolves the directory generated packages are written under.
// Running from inside codegen/ targets its parent.
func moduleRoot(output string) (string, error) {
	if output != "" {
		return output, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	if filepath.Base(wd) == "codegen" {
		return filepath.Dir(wd), nil
	}
	return wd, nil
}

// selectionFor narrows the default selection to the services named in flag.
func selectionFor(flagValue string) (Selection, error) {
	if flagValue == "" {
		return defaultSelection, nil
	}
	sel := Selection{}
	for _, name := range strings.Split(flagValue, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		resources, ok := defaultSelection[name]
		if !ok {
			return nil, fmt.Errorf("unsupported service %q (supported: databrew, lambda, mediapackage)", name)
		}
		sel[name] = resources
	}
	return sel, nil
}
