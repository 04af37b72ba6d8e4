// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package snapd

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FetchSnaps calls Info for every name with at most limit calls in flight and
// returns the decoded records in the order of names. Each call opens its own
// connection; the first failure cancels the calls still pending.
func FetchSnaps(ctx context.Context, api API, names []string, limit int) ([]Snap, error) {
	if limit < 1 {
		limit = 1
	}
	snaps := make([]Snap, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			raw, err := api.Info(gctx, name)
			if err != nil {
				return err
			}
			s, err := DecodeSnap(raw)
			if err != nil {
				return err
			}
			snaps[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snaps, nil
}
