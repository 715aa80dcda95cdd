// Command travelog builds a browsable media catalog from a flat directory of
// photo and video captures.
package main
