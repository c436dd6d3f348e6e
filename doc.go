// Package prettytype reflows flat, single-line dumps of nested generic type
// names, such as the template types printed in C++ compiler diagnostics, into
// an indented tree that is easier to read.
//
// The input is split on the structural characters '<', '>' and ',', and every
// name is shortened to its last scope segment. The output puts one argument
// per line and indents each nesting level by two spaces:
//
//	graph<node<int>, edge>
//
// becomes
//
//	graph<
//	  node<
//	    int
//	  >,
//	  edge
//	>
//
// Two kinds of names get special treatment:
//   - Boilerplate names: default allocators, comparators, hashers, equality
//     predicates, character traits and index sequences are collapsed together
//     with their argument lists to a single placeholder, "T" by default.
//   - Wrapper names: standard library names (those qualified with "std::",
//     except std::tuple) and names containing "tuple_like" or "map_save" keep
//     their whole argument list on one line.
//
// Formatting is a single left-to-right pass without validation. Unbalanced
// brackets are not an error and produce best-effort output.
//
// Basic usage:
//
//	// Using default configuration
//	formatted := prettytype.Format(dump)
//
//	// Using custom configuration
//	config := &prettytype.Config{
//		IndentWidth: 4,
//		Boilerplate: []string{"allocator", "my::default_policy"},
//	}
//	formatter := prettytype.New(config)
//	err := formatter.Fprint(os.Stdout, dump)
//
// The State type exposes the underlying transition function so that callers
// can drive the formatter one Token at a time.
package prettytype
