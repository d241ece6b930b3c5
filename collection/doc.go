// Package collection provides generic sequential containers implementing seqology.Sequence:
// a forward only ForwardList, a doubly linked List and a ring buffer backed Deque.
// Zero values are ready to use.
package collection
