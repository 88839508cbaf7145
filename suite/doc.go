// Package suite reads and writes the tab-delimited puzzle files shared
// by the solve and generate commands.
//
// A record line is
//
//	name <TAB> width <TAB> height <TAB> givens [<TAB> answer [<TAB> # comment]]
//
// Blank lines and lines starting with '#' or ';' are ignored.
package suite
