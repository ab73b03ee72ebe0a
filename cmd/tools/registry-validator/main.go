// cmd/tools/registry-validator/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"welfare-moa/internal/catalog"
	"welfare-moa/internal/rules"
	"welfare-moa/pkg/registry"
)

// registry-validator checks a program/rule overlay file before it is
// deployed: schema validation plus a cross-check that every rule in the
// merged table points at a program in the merged catalog.
func main() {
	path := flag.String("path", "configs/program-registry.json", "Path to registry overlay file")
	flag.Parse()

	reg, err := registry.LoadRegistry(*path)
	if err != nil {
		fmt.Printf("Registry is INVALID: %v\n", err)
		os.Exit(1)
	}

	programs := reg.MergePrograms(catalog.DefaultPrograms())
	table := reg.MergeRules(rules.DefaultTable())

	known := make(map[string]bool, len(programs))
	for _, p := range programs {
		known[p.ID] = true
	}

	orphans := 0
	for id := range table {
		if !known[id] {
			fmt.Printf("  rule %q has no matching program\n", id)
			orphans++
		}
	}
	if orphans > 0 {
		fmt.Printf("Registry is INVALID: %d orphaned rule(s)\n", orphans)
		os.Exit(1)
	}

	fmt.Printf("Registry %q (version %s) is valid: %d program(s), %d rule(s) after merge\n",
		*path, reg.Version, len(programs), len(table))
}
