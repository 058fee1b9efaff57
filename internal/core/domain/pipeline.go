// Package domain contains the core model of the packaging pipeline:
// stages, their dependency graph, the build manifest, and cache records.
package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Pipeline is a dependency graph of stages.
type Pipeline struct {
	stages         map[string]Stage
	order          []string // insertion order, for deterministic traversal
	executionOrder []string // topological order, populated by Validate
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{
		stages: make(map[string]Stage),
	}
}

// AddStage adds a stage to the pipeline.
// It returns ErrStageExists if the name is already taken.
func (p *Pipeline) AddStage(s *Stage) error {
	if _, exists := p.stages[s.Name]; exists {
		return zerr.With(ErrStageExists, "stage", s.Name)
	}
	p.stages[s.Name] = *s
	p.order = append(p.order, s.Name)
	return nil
}

// StageCount returns the number of stages in the pipeline.
func (p *Pipeline) StageCount() int {
	return len(p.stages)
}

// Stage returns the stage with the given name.
func (p *Pipeline) Stage(name string) (Stage, error) {
	s, ok := p.stages[name]
	if !ok {
		return Stage{}, zerr.With(ErrStageNotFound, "stage", name)
	}
	return s, nil
}

// Validate checks for missing dependencies and cycles and populates the
// execution order. Traversal follows insertion order so the resulting
// order is deterministic across runs.
func (p *Pipeline) Validate() error {
	p.executionOrder = make([]string, 0, len(p.stages))
	visited := make(map[string]int) // 0 unvisited, 1 visiting, 2 done
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		visited[name] = 1
		path = append(path, name)

		stage, exists := p.stages[name]
		if !exists {
			return zerr.With(ErrMissingDependency, "dependency", name)
		}

		for _, dep := range stage.DependsOn {
			switch visited[dep] {
			case 1:
				return cycleError(path, dep)
			case 0:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[name] = 2
		path = path[:len(path)-1]
		p.executionOrder = append(p.executionOrder, name)
		return nil
	}

	for _, name := range p.order {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

func cycleError(path []string, dep string) error {
	start := slices.Index(path, dep)
	if start < 0 {
		start = 0
	}
	cycle := append(slices.Clone(path[start:]), dep)
	return zerr.With(ErrCycleDetected, "cycle", strings.Join(cycle, " -> "))
}

// Walk yields stages in execution order. Validate must have succeeded.
func (p *Pipeline) Walk() iter.Seq[Stage] {
	return func(yield func(Stage) bool) {
		for _, name := range p.executionOrder {
			if !yield(p.stages[name]) {
				return
			}
		}
	}
}

// RequiredFor returns the set of stage names needed to build the given
// targets, including transitive dependencies. An empty target list selects
// the whole pipeline.
func (p *Pipeline) RequiredFor(targets []string) (map[string]bool, error) {
	required := make(map[string]bool, len(p.stages))

	if len(targets) == 0 {
		for name := range p.stages {
			required[name] = true
		}
		return required, nil
	}

	var mark func(name string) error
	mark = func(name string) error {
		if required[name] {
			return nil
		}
		stage, ok := p.stages[name]
		if !ok {
			return zerr.With(ErrStageNotFound, "stage", name)
		}
		required[name] = true
		for _, dep := range stage.DependsOn {
			if err := mark(dep); err != nil {
				return err
			}
		}
		return nil
	}

	for _, t := range targets {
		if err := mark(t); err != nil {
			return nil, err
		}
	}
	return required, nil
}
