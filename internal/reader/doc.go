// Package reader is a minimal client for the Readwise Reader API. It lists
// documents saved to the reading inbox, with full HTML content, filtered to a
// recent time window. It powers the "feynman run" pipeline's fetch stage.
package reader
