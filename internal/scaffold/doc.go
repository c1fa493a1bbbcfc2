// Package scaffold generates the RL demo app boilerplate from embedded
// templates. It powers the "feynman create demo" command, producing a ready
// to serve project: a static frontend, a demo.yaml consumed by
// "feynman serve", a Makefile, and a README.
package scaffold
