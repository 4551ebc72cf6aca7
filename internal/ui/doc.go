// Package ui renders terminal output for gitclone: batch progress counters,
// aligned result tables, and the line logger used by single clones.
package ui
