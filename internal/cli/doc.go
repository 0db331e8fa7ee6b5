// Command-line surface for acrpipe.
//
// Subcommands:
//
//	build     Run the pipeline against the registry build service.
//	plan      Print the resolved invocation sequence without executing.
//	tags      List the tags a repository holds in the registry.
//	version   Show version information.
//
// Every build flag mirrors an ACRPIPE_* environment variable so CI jobs
// can configure the tool without touching the command line.
package cli
