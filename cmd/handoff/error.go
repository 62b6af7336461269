package main

import "errors"

// ErrInvalidNumFiles occurs when the number of files passed by aria2 is not
// a non-negative integer.
var ErrInvalidNumFiles = errors.New("invalid number of files")
