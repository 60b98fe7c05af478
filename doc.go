// Package fintrack implements a personal finance ledger: an append-only,
// insertion-ordered collection of signed transactions backed by a flat
// pipe-delimited file, with a filtering engine to select entries by date
// range, vendor, description or exact amount.
//
// The package is the core; the fint command under fint/ provides the
// interactive menu and the scripting subcommands on top of it.
package fintrack
