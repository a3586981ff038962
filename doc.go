/*
Package digitlist implements a doubly linked list of digits that together
represent a non-negative number in a declared base.

Besides the usual list operations (index access, insertion and removal at any
position, forward and backward iteration) a List can be read as a number:
ToDecimal folds it into its base-10 rendering, ChangeBase re-expresses it in
another base and Divide performs truncating integer division.

The numeral sub-package holds the radix helpers and digitio loads and saves
lists as text files.

*/
package digitlist
