// Package partition enumerates the descending integer partitions of a coin
// count ("positions" of the pile game).
//
// Generate builds the partitions of N incrementally from the partitions of
// every smaller coin count held in a Cache, so callers must request coin
// counts in strictly increasing order. Enumerate is an independent,
// cache-free brute-force enumerator used as a verification oracle.
package partition
