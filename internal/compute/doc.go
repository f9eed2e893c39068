// Package compute runs independent seeded jobs across CPU workers.
//
// Seeds are split into contiguous chunks, one per worker:
//
//	pool := compute.NewPool(0)
//	err := pool.Seeds(ctx, 100, func(ctx context.Context, seed int64) error {
//		_, err := reg.Render(ctx, "multivar", cfg, seed)
//		return err
//	})
package compute
