package ramp

import (
	"fmt"
	"sort"
	"strings"
)

const (
	simpleDefinition = " .:-=+*#%@"
	denseDefinition  = " .'`^,:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"
	blocksDefinition = " ░▒▓█"
	dotDefinition    = "█•"
	dot2Definition   = "█"
	lineDefinition   = " ·-─━"
)

// Built-in ramps.
var (
	Simple = mustBuild("simple", simpleDefinition)
	Dense  = mustBuild("dense", denseDefinition)
	Blocks = mustBuild("blocks", blocksDefinition)
	Dot    = mustBuild("dot", dotDefinition)
	Dot2   = mustBuild("dot2", dot2Definition)
	Line   = mustBuild("line", lineDefinition)
)

// DefaultName is the ramp used when nothing is configured.
const DefaultName = "simple"

var builtins = map[string]Ramp{
	Simple.name: Simple,
	Dense.name:  Dense,
	Blocks.name: Blocks,
	Dot.name:    Dot,
	Dot2.name:   Dot2,
	Line.name:   Line,
}

// Lookup returns the built-in ramp registered under name (case-insensitive).
func Lookup(name string) (Ramp, bool) {
	r, ok := builtins[strings.ToLower(strings.TrimSpace(name))]
	return r, ok
}

// Names lists the built-in ramp names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve picks the ramp for a conversion. A non-empty custom definition wins
// over the named built-in; an empty name selects DefaultName.
func Resolve(name, custom string) (Ramp, error) {
	if custom != "" {
		r, err := New(custom)
		if err != nil {
			return Ramp{}, fmt.Errorf("custom ramp: %w", err)
		}
		return r, nil
	}
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}
	r, ok := Lookup(name)
	if !ok {
		return Ramp{}, fmt.Errorf("unknown ramp %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return r, nil
}
