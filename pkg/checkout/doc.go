// Package checkout runs a manifest: every item is resolved and checked out
// in declaration order, and the ignore file is written once all of them
// succeed.
//
// A run moves through these stages:
//
//	loading -> (resolving -> checking-out)* -> finalizing -> done
//
// Any error moves the run to failed. Later items are not attempted, the
// ignore file is not written, and working copies already checked out are
// left in place. An item's ignore fragment is recorded before its checkout
// is invoked.
//
// The external tool is reached through the Checkouter interface; svn.Client
// implements it, and DryRunCheckouter records requests without running
// anything.
package checkout
