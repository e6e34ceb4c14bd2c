// Package svn drives the external Subversion command line tools.
//
// Client wraps the svn executable (checkout, add, commit) and Admin wraps
// svnadmin (create). Both locate their executable on PATH when constructed
// and probe its version, so a missing tool fails at startup rather than on
// the first command.
//
// Output of long running commands is streamed: stdout is read line by line
// from a pipe and forwarded as it arrives. The pipe is always drained to
// EOF before waiting for the process, so the child can never block on a
// full pipe while the caller waits for it to exit.
package svn
