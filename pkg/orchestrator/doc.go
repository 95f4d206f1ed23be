// Package orchestrator runs the full surface pipeline: load a document,
// compile it against the component registry, apply tree decorators, and
// encode the result. It is the programmatic equivalent of the CLI build
// command and the integration point for hosts that embed the library.
package orchestrator
