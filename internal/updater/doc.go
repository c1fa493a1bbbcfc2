// Package updater checks GitHub for newer feynman releases. Checks run in
// the background off a 24h cache so CLI startup never waits on the network.
package updater
