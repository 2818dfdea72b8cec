package io

import "errors"

var (
	// ErrIsDirectory is returned when a directory is given as input
	ErrIsDirectory = errors.New("is a directory")

	// ErrNotRegular is returned for devices, pipes and sockets, which cannot be mapped
	ErrNotRegular = errors.New("not a regular file")
)
