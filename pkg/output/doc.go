// Package output persists rendered blocks to destination directories.
//
// Every destination receives an identical file. Blocks are separated by a
// single blank line and the file carries no trailing separator. A failure
// on one destination is recorded in the Report and never stops the
// remaining destinations from being written.
package output
