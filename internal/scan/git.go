package scan

import (
	"context"
	"path/filepath"

	"github.com/byRen2002/tlsh-go/internal/common/logger"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.uber.org/zap"
)

// CloneOptions describes a repository to fetch before scanning it.
type CloneOptions struct {
	URL    string
	Dest   string
	Branch string
	Depth  int
}

// CloneRepo clones a repository into opts.Dest so that `scan --repo` can
// hash a tree it does not already have on disk, and returns the path it
// cloned into. An empty opts.Dest clones into a directory named after
// the URL's last path element, relative to the working directory; a
// non-empty opts.Dest is used as the clone directory itself, with no
// subdirectory created under it. The clone is shallow only when
// opts.Depth is positive.
func CloneRepo(ctx context.Context, opts CloneOptions) (string, error) {
	target := opts.Dest
	if target == "" {
		target = filepath.Base(opts.URL)
	}

	logger.Info("cloning repository",
		zap.String("url", opts.URL),
		zap.String("dest", target))

	cloneOpts := &git.CloneOptions{
		URL:      opts.URL,
		Progress: nil,
	}
	if opts.Branch != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(opts.Branch)
		cloneOpts.SingleBranch = true
	}
	if opts.Depth > 0 {
		cloneOpts.Depth = opts.Depth
	}

	if _, err := git.PlainCloneContext(ctx, target, false, cloneOpts); err != nil {
		logger.Error("clone failed", zap.String("url", opts.URL), zap.Error(err))
		return "", err
	}

	logger.Info("clone complete", zap.String("path", target))
	return target, nil
}
