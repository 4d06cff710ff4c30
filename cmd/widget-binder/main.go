// Package main provides the CLI entrypoint for widget-binder.
//
// widget-binder dry-runs a binding plan without a GUI: it reads a YAML plan
// (dataset, widget names, optional overrides), resolves every key through
// the same engine a live container uses, and prints the decisions. Useful
// to verify a dataset against a UI design before wiring real widgets.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"gopkg.in/yaml.v3"

	"widget-binder/binding"
	"widget-binder/dataset"
	"widget-binder/widget"
)

// plan is the YAML input: the dataset to bind, the widget names available
// in the UI, and an optional loader configuration.
type plan struct {
	Data      map[string]any    `yaml:"data"`
	Widgets   []string          `yaml:"widgets"`
	Overrides map[string]string `yaml:"overrides,omitempty"`
	Keys      []string          `yaml:"keys,omitempty"`
	Recursive bool              `yaml:"recursive,omitempty"`
}

func main() {
	planPath := flag.String("plan", "", "path to the YAML binding plan")
	strict := flag.Bool("strict", false, "fail on the first unresolved key")
	verbose := flag.Bool("v", false, "log every resolution decision")
	dump := flag.Bool("dump", false, "dump the parsed plan before resolving")
	flag.Parse()

	if *planPath == "" {
		fmt.Fprintln(os.Stderr, "usage: widget-binder -plan plan.yaml [-strict] [-v] [-dump]")
		os.Exit(2)
	}

	if err := run(*planPath, *strict, *verbose, *dump); err != nil {
		fmt.Fprintln(os.Stderr, "widget-binder:", err)
		os.Exit(1)
	}
}

func run(planPath string, strict, verbose, dump bool) error {
	raw, err := os.ReadFile(planPath)
	if err != nil {
		return fmt.Errorf("failed to read plan %s: %w", planPath, err)
	}

	var p plan
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("failed to parse plan %s: %w", planPath, err)
	}

	if dump {
		spew.Dump(p)
	}

	var logger logr.Logger
	if verbose {
		logger = funcr.New(
			func(prefix, args string) { fmt.Println(args) },
			funcr.Options{},
		)
	}

	var loader *binding.Loader
	switch {
	case p.Overrides != nil:
		loader = binding.NewLoader(p.Overrides)
		loader.Complement = true
		loader.Verbose = verbose
	case len(p.Keys) > 0:
		loader = binding.NewKeyLoader(p.Keys)
		loader.Verbose = verbose
	}

	// Stand-in widgets carrying only names; resolution never reads values
	widgets := make([]widget.Widget, 0, len(p.Widgets))
	for _, name := range p.Widgets {
		widgets = append(widgets, widget.NewStub(name, nil))
	}

	container, err := binding.New("plan", dataset.Dataset(p.Data), widgets, binding.Options{
		Loader:             loader,
		Recursive:          p.Recursive,
		Strict:             strict,
		AllowMultipleHooks: true,
		Logger:             logger,
	})
	if err != nil {
		return err
	}
	defer container.Close()

	unresolved := 0
	for _, r := range container.Report() {
		fmt.Println(r)

		if r.Via == binding.MethodNone {
			unresolved++
		}
	}

	fmt.Printf("%d keys, %d bound, %d unresolved\n",
		len(container.Report()), len(container.Hooks()), unresolved)

	return nil
}
