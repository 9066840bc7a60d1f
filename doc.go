// Package strut normalizes loosely structured scrape results.
//
// The subpackages do the heavy lifting: parse converts malformed
// markup fragments and JSON text into one element tree shape (etree),
// which encode renders and eval queries. This package carries the
// small recursive value utilities that scrape pipelines apply to
// decoded JSON before or after tree conversion: Merge, Strip, ReSub,
// and Strftime.
package strut
