// Package commands defines the gravlab CLI and wires dependencies for subcommands.
//
// Commands
//
//   - derive       Expand the dRGT potential to quadratic order and verify
//     the Fierz-Pauli structure on a reference diagonal metric
//   - derive-full  Expand all symmetric polynomials e0..e4 to quartic order
//   - dispersion   Evaluate graviton-induced GW dispersion for a scenario,
//     rendering the four-panel diagnostic figure
//
// # Implementation
//
// The root command loads environment configuration, builds the logger and
// the dependency graph (artifact store, derivation and simulation services)
// before any subcommand runs, so handlers share one app context. Reports go
// to stdout; logs go to stderr.
package commands
