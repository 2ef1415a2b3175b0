// Package input reads and writes the plain-text integer files consumed by
// the columnsort command: one base-10 integer per line, surrounding spaces
// ignored, blank lines skipped.
//
// It also generates random sample files with a fixed seed so benchmark
// inputs can be reproduced.
package input
