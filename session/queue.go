package session

import "karaoke/catalogue"

// PlayQueue holds the songs waiting to be played, first in first out.
type PlayQueue struct {
	songs []catalogue.Song
}

func (q *PlayQueue) Enqueue(song catalogue.Song) {
	q.songs = append(q.songs, song)
}

// Dequeue removes and returns the front song. ok is false when the queue is empty.
func (q *PlayQueue) Dequeue() (song catalogue.Song, ok bool) {
	if len(q.songs) == 0 {
		return catalogue.Song{}, false
	}
	song = q.songs[0]
	q.songs[0] = catalogue.Song{}
	q.songs = q.songs[1:]
	return song, true
}

func (q *PlayQueue) Len() int {
	return len(q.songs)
}

// Songs returns a copy of the queued songs, front first.
func (q *PlayQueue) Songs() []catalogue.Song {
	songs := make([]catalogue.Song, len(q.songs))
	copy(songs, q.songs)
	return songs
}
