// Package visitor offers callback visitors over iterable views.
// It provides forward, backward and typed traversal of any registered container,
// with simple callback-based early termination.
package visitor
