package flow

import "math"

// Bottleneck returns the minimum residual capacity over the consecutive
// arcs of path — the amount of flow one augmentation along it can push.
//
// A path with fewer than two nodes is an engine defect (ErrPathTooShort);
// a consecutive pair with no arc yields ErrArcNotFound.
//
// Complexity: O(len(path)).
func Bottleneck(r *Residual, path []string) (float64, error) {
	if len(path) < 2 {
		return 0, ErrPathTooShort
	}

	min := math.Inf(1)
	for i := 0; i < len(path)-1; i++ {
		c, err := r.Capacity(path[i], path[i+1])
		if err != nil {
			return 0, err
		}
		if c < min {
			min = c
		}
	}

	return min, nil
}

// Apply pushes flow along path by delegating to Residual.Augment. It is the
// sole place the engine pushes flow; the caller must have computed flow as
// the path's bottleneck (or less).
func Apply(r *Residual, path []string, flow float64) error {
	return r.Augment(path, flow)
}
