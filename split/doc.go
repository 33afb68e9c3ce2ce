// Package split turns a loaded document into an ordered sequence of
// length-bounded fragments.
//
// Splitting happens in two steps:
//
//  1. Coarse: content is divided on a separator and merged back into
//     overlapping windows of at most the configured chunk size, so text
//     spanning a window boundary appears intact in the following window.
//  2. Fine: any window longer than the fragment cap is bisected at its
//     midpoint, recursively, until every fragment fits.
//
// Both steps are pure transformations over in-memory content. Fragments of
// one window, concatenated in emitted order, reproduce that window exactly.
package split
