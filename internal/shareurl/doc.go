// Package shareurl projects the comparison selection to and from a single
// query parameter, producing shareable and bookmarkable comparison links.
//
// Encoding is a comma-joined list of vehicle identifiers under the "cmp"
// parameter, in selection order. Decoding is deliberately forgiving: tokens
// that are not UUID-shaped are dropped silently, the survivors are
// truncated to the selection capacity, and a URL that cannot be parsed at
// all yields an empty list. Degraded inputs resolve to "nothing selected"
// or "partial selection", never to an error.
//
// Design decision: Rewrites are batched behind an explicit timer window
// rather than fired per mutation, so a burst of adds produces one publish.
// The window is owned by the Synchronizer itself, decoupled from any
// rendering technology; the Publisher callback is the only surface a host
// environment has to provide.
package shareurl
