// Package session implements the interactive karaoke console: it prints the menu,
// reads one command per line, and drives the song book and the play queue.
// All console I/O goes through an io.Reader and io.Writer so a session can be
// scripted in tests.
package session
