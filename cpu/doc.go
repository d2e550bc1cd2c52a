// Package cpu implements the parser and the machine for the rebf tape language.
//
// A program is a sequence of eight single character instructions operating on
// a byte tape that grows to the right: pointer moves (> <), cell arithmetic
// (+ -), byte output and input (. ,), a diagnostic tape dump (#), and loops
// delimited by [ and ]. Every other character is ignored.
//
// The Parser turns program text into a Program: a Block of Statements where
// each Statement is either a Run of instructions or a Loop holding its own
// Block. The Cpu walks that tree with an explicit frame stack, so neither
// long programs nor deeply nested loops grow the Go call stack.
package cpu
