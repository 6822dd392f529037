// Package seg provides growable containers that avoid large contiguous
// reallocation: a segmented array, a sparse sorted-range store, and a stack
// built on the segmented array.
//
// # SegmentedArray
//
// Element storage is carved into fixed-capacity segments. Growth allocates a
// new segment; existing segments are never moved, so element pointers stay
// stable until a structural change (Delete) compacts across segments. The
// index above the segments is a plain slice — GetAt is segment-index plus
// offset, O(1), with no scanning from the start.
//
// Delete is the one operation without O(1) cost: it shifts every element
// after the deleted run leftward, moving data between segments.
//
// # SortedRanges
//
// A sparse index-to-value store: each registered [start, start+count) range
// owns an independently allocated block sized only for that range, so gaps
// cost nothing. Ranges are kept in ascending start order and must not
// overlap; an overlapping Append is a caller error and is silently ignored.
// Lookup uses a one-entry last-hit cache tuned for sequential access, with a
// binary-search fallback.
//
// # Thread Safety
//
// None of the containers are safe for concurrent use.
package seg
