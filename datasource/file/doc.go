// Package file provides a DataSource which reads data from a list of files on disk.
// Each file is one input source and is assigned to a worker in its entirety.
package file
