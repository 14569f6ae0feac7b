// Package ring provides the circular singly-linked list behind the public
// queue. A Ring keeps a single reference to its newest node; the successor of
// that node is the oldest one, so both ends are reachable in constant time.
//
// Splice merges two rings by relinking two successor pointers and never visits
// the elements, which keeps appends constant time regardless of length.
//
// The package is not safe for concurrent use and performs no argument
// validation. The public facade owns those contracts.
package ring
