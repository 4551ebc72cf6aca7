// Package repo inspects a cloned working tree without shelling out, using
// go-git to read HEAD and the origin remote directly from .git.
package repo

import (
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// Info describes the checked-out state of a local repository.
type Info struct {
	Head      string // full SHA of HEAD
	Branch    string // short branch name, empty when detached
	Detached  bool
	OriginURL string
}

// Inspect opens the repository at dir and reports its HEAD.
func Inspect(dir string) (*Info, error) {
	r, err := gogit.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("opening repository %s: %w", dir, err)
	}
	ref, err := r.Head()
	if err != nil {
		return nil, fmt.Errorf("reading HEAD in %s: %w", dir, err)
	}

	info := &Info{Head: ref.Hash().String()}
	if ref.Name().IsBranch() {
		info.Branch = ref.Name().Short()
	} else {
		info.Detached = true
	}

	remote, err := r.Remote("origin")
	switch {
	case errors.Is(err, gogit.ErrRemoteNotFound):
	case err != nil:
		return nil, fmt.Errorf("reading origin in %s: %w", dir, err)
	default:
		if urls := remote.Config().URLs; len(urls) > 0 {
			info.OriginURL = urls[0]
		}
	}
	return info, nil
}

// MatchesShort reports whether short is an abbreviation of HEAD.
func (i *Info) MatchesShort(short string) bool {
	return short != "" && strings.HasPrefix(i.Head, short)
}
