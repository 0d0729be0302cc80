// Package application wires the resolved configuration, the logger and the
// typed INI reader together so that the iniget command only deals with
// argument parsing and output.
package application
