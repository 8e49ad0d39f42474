// Package rules provides the built-in style rules for pystylecheck.
//
// # Rule Domains
//
// Lexical rules look only at the raw text of a line:
//
//   - S001: line-length - Lines should not exceed 79 characters
//
//   - S002: indentation - Indentation should be a multiple of four
//
//   - S003: semicolon - Statements should not end with a semicolon
//
//   - S004: comment-spacing - Inline comments need two spaces before '#'
//
//   - S005: todo - TODO comments are reported
//
//   - S006: blank-lines - No more than two blank lines in a row
//
//   - S007: keyword-spacing - One space after 'def' and 'class'
//
//   - S008: class-naming - Class names use CamelCase
//
//   - S009: function-naming - Function names use snake_case
//
// Syntactic rules read the facts extracted from the parse tree:
//
//   - S010: argument-naming - Positional parameters use snake_case
//
//   - S011: variable-naming - Assigned names use snake_case
//
//   - S012: mutable-default - Default values should be immutable
//
// # Registration
//
// Rules are registered with the default registry via RegisterAll.
// Diagnostics on the same line are ordered by rule ID.
package rules
