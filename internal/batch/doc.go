// Package batch handles gitclone batch files, which list many clones to run
// together, and the record files that capture the commit each one resolved.
package batch
