// Package filehandler writes formatted records to a file, rotating it
// once it grows past a size limit.
//
// Rotated files are renamed to <name>.<timestamp> next to the original;
// MaxBackups bounds how many of them are kept. Output is buffered and
// flushed on Close.
package filehandler
