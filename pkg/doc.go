// Package pkg provides the core libraries for taskdot graph rendering.
//
// # Overview
//
// Taskdot turns task plans into Graphviz dot graphs. The pkg directory is
// organized by stage:
//
//  1. [plan] - Decoding task plans from JSON, YAML, or TOML files
//  2. [task] - The task model and the validated registry
//  3. [graph] - Walking a registry into a renderable graph
//  4. [dot] - Serializing graphs in the Graphviz dot language
//
// # Architecture
//
// The typical data flow through taskdot:
//
//	plan file (JSON/YAML/TOML)
//	         ↓
//	    [plan] package (decode + validate)
//	         ↓
//	    [task] package (registry)
//	         ↓
//	    [graph] package (walk + collapse)
//	         ↓
//	    [dot] package (serialize)
//	         ↓
//	    .dot output
//
// # Quick Start
//
// Load a plan and render its whole dependency graph:
//
//	import (
//	    "github.com/taskdot/taskdot/pkg/dot"
//	    "github.com/taskdot/taskdot/pkg/graph"
//	    "github.com/taskdot/taskdot/pkg/plan"
//	)
//
//	reg, err := plan.Load("plan.json")
//	if err != nil {
//	    return err
//	}
//	g, err := graph.Build(reg, nil, graph.Options{})
//	if err != nil {
//	    return err
//	}
//	return dot.WriteFile(g, "tasks.dot")
package pkg
