// Package search implements the Brave Search API client: query execution
// across the four verticals (web, news, videos, images) and normalization
// of their structurally different response shapes into one uniform result
// schema.
//
// # Normalization
//
// Each vertical has its own payload struct with a dedicated mapping
// function, rather than one loosely-typed record for all of them. This
// keeps the "skip malformed item" semantics clean per variant: an item
// missing its required fields is silently dropped and never aborts the
// batch, while a payload the decoder does not recognize at all is treated
// as zero results, not as an error.
//
// Upstream field renames are tolerated where they are known to occur:
// news publication dates arrive as published_time or publishTime, and
// thumbnails arrive as a nested object, a bare string, or under the
// alternate image/src keys, tried in that priority order.
//
// # Outcome discriminants
//
// The Outcome envelope distinguishes three shapes callers must tell apart:
//
//   - Success=true: at least one normalized result
//   - Success=false, Kind=KindNone: the search ran but produced nothing
//   - Success=false, Kind=KindSearchError / KindMissingCredential:
//     the search could not run
//
// The Kind field is the stable discriminant; message text is for humans.
package search
