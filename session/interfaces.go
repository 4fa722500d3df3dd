package session

import (
	"context"

	"karaoke/catalogue"
)

// SongBook is the part of the catalogue the session needs.
type SongBook interface {
	AddSong(ctx context.Context, song catalogue.Song) error
	SongCount(ctx context.Context) (int, error)
	Artists(ctx context.Context) ([]string, error)
	SongsForArtist(ctx context.Context, artist string) ([]catalogue.Song, error)
	Find(ctx context.Context, query string) ([]catalogue.Song, error)
}
