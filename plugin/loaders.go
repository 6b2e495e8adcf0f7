package plugin

import "github.com/samber/lo"

// ChainLoaders merges lazy loaders into one. Each loader receives the same
// settings value and the results are concatenated in loader order. Duplicate
// results are kept; uniqueness is the caller's business.
func ChainLoaders[S, R any](loaders ...func(S) []R) func(S) []R {
	return func(settings S) []R {
		return lo.FlatMap(loaders, func(load func(S) []R, _ int) []R {
			return load(settings)
		})
	}
}
