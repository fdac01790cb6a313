// Package book defines the Book entity and the rules governing which lending
// transitions are legal for it.
package book
