package clone

import (
	"context"
	"errors"

	"github.com/fbkclanna/gitclone/internal/git"
)

// Plan is the clone strategy chosen for a ref.
type Plan struct {
	Shallow       bool
	NeedsCheckout bool
	Opts          git.CloneOpts
}

// plan probes the remote for ref. A matching branch or tag yields a shallow
// clone of that branch. Anything else falls back to a full clone plus
// checkout, since ref may be a commit SHA the probe cannot see.
func (c *Cloner) plan(ctx context.Context, url, ref string) Plan {
	err := c.git.LsRemote(ctx, url, ref)
	if err == nil {
		c.Logger.Log("Using shallow clone")
		return Plan{
			Shallow: true,
			Opts:    git.CloneOpts{Depth: 1, Branch: ref},
		}
	}
	if !errors.Is(err, git.ErrRefNotFound) {
		warn(c.Logger, "probing %s for %q failed, falling back to a full clone: %v", url, ref, err)
	}
	c.Logger.Log("Cloning full repository")
	return Plan{NeedsCheckout: true}
}
