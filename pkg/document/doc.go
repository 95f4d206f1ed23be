// Package document loads declarative surface documents from files,
// filesystems, byte slices, or URLs and compiles them into validated
// surfaces. Documents are JSON or YAML with a small header block and a node
// tree; compiling runs every node through the component builder and reports
// all diagnostics with their tree paths.
package document
