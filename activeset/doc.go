// Package activeset tracks the set of currently live cluster labels during
// a clustering run: a dense doubly linked list over slots [0, N) that
// supports O(1) removal and O(1) successor/predecessor queries, used by the
// NN-chain and generic cores to skip dead slots without rescanning the
// whole label space on every probe.
package activeset
