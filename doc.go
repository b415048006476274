// SPDX-License-Identifier: MIT

// Package uflp solves the Uncapacitated Facility Location Problem by
// reducing it to a pseudo-Boolean objective (the Hammer function), fixing
// variables with Khumawala's rules and two heuristics, and enumerating
// whatever remains.
//
// Layout:
//
//	instance/  immutable problem data, cost order, random generator
//	bound/     simple lower bound and LP relaxation bound
//	pbf/       Hammer function: build, simplify, evaluate, plant status
//	rules/     Khumawala rules, greedy (H1) and sign-partition (H2) heuristics
//	search/    bounded, optionally parallel residual enumeration
//	solver/    the orchestrator: phases, options, result accessors, logging
//	exact/     independent optimum via weighted partial MaxSAT
//	cmd/uflp   command-line driver over random instances
//
// Quick start:
//
//	in, err := instance.Random(30, 50, instance.WithSeed(7))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, _ := solver.New(in, solver.WithBeta(0.8))
//	if err := s.Solve(); err != nil {
//	    log.Fatal(err)
//	}
//	cost, _ := s.MinimumCost()
//	plants, _ := s.PlantsToOpen()
package uflp
