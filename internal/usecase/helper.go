package usecase

import (
	"strconv"

	"golang.org/x/sync/errgroup"
)

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// fanOut runs task(i) for every index with at most limit in flight. Tasks
// report failures into their own result slot, so one failing row never
// cancels its siblings.
func fanOut(n, limit int, task func(i int)) {
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			task(i)
			return nil
		})
	}
	_ = g.Wait()
}
