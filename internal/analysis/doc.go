// Package analysis runs a saved article against the user's active problems
// using an LLM and the Feynman-technique prompt. It owns the prompt contract:
// the model either answers with the NO_HIT sentinel or with a JSON insight
// object, which is schema-validated before anything touches the vault.
package analysis
