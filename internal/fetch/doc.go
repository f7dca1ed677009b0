// Package fetch provides the outbound HTTP client used by every component
// that talks to the network.
//
// # Design
//
// The fetcher issues plain GET requests with a fixed browser-identifying
// header set. Many news sites block requests that look like bots, so the
// header set (user agent, accept, accept-language, fetch metadata headers)
// is a compatibility requirement, not decoration.
//
// Every request carries an explicit timeout and a response-size ceiling.
// Failures are classified into a small set of kinds (timeout, network,
// HTTP status, size exceeded) so callers can report them without string
// matching. The fetcher never retries: retry policy belongs to callers.
//
// # Usage
//
//	client := fetch.NewClient(fetch.WithTimeout(10 * time.Second))
//	resp, err := client.Fetch(ctx, "https://example.com/article")
package fetch
