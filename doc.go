// Package agcap enumerates, up to affine symmetry, every maximal cap in
// the affine space AG(n,3) — a subset of Z_3^n with no three collinear
// points — by orderly backtracking generation.
//
// What is agcap?
//
//	A small pipeline of packages, each independently testable:
//
//	  • affine    — Z_3^n arithmetic: points, canonical normal directions, third-point completion
//	  • incidence — the point/hyperplane incidence graph, built once
//	  • sigma     — the Σ-invariant, a cheap affine-invariant pruning test
//	  • canon     — the Symmetry Oracle: orbit computation under graph automorphism
//	  • orderly   — the backtracking search tying the above together
//	  • report    — progress trace and summary-table rendering
//
// Under the hood:
//
//	core/     — thread-safe Graph/Vertex/Edge primitives (the incidence graph's backing store)
//	affine/   — field and line arithmetic over Z_3^n
//	incidence/— the bipartite point-hyperplane graph
//	sigma/    — incremental Σ-invariant maintenance
//	canon/    — colored-partition canonicalization and orbit computation
//	orderly/  — the orderly-generation engine (spec §4.6's enter(ℓ))
//	report/   — trace lines and the final counts table
//	cmd/agcap/— the command-line entry point
//
//	go run ./cmd/agcap -n 3
package agcap
