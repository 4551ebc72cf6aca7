// Package clone clones a remote repository into a local directory and checks
// out a ref. It probes the remote first: refs that name a branch or tag get a
// depth-1 clone of that branch, anything else (typically a commit SHA) gets a
// full clone followed by an explicit checkout.
package clone
