package catalogue

import (
	"context"
	"testing"
)

func newTestCatalogue(t *testing.T) *Catalogue {
	t.Helper()

	c, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return c
}

func addSongs(t *testing.T, c *Catalogue, songs ...Song) {
	t.Helper()

	for _, s := range songs {
		if err := c.AddSong(context.Background(), s); err != nil {
			t.Fatalf("AddSong(%v) error = %v", s, err)
		}
	}
}

var (
	bohemian = Song{Artist: "Queen", Title: "Bohemian Rhapsody", VideoURL: "http://example.com/1"}
	killer   = Song{Artist: "Queen", Title: "Killer Queen", VideoURL: "http://example.com/2"}
	africa   = Song{Artist: "Toto", Title: "Africa", VideoURL: "http://example.com/3"}
	rosanna  = Song{Artist: "Toto", Title: "Rosanna", VideoURL: "http://example.com/4"}
	lowQueen = Song{Artist: "queen", Title: "Fake Queen", VideoURL: "http://example.com/5"}
)

func TestSongString(t *testing.T) {
	tests := []struct {
		name     string
		song     Song
		expected string
	}{
		{"title and artist", bohemian, `"Bohemian Rhapsody" by Queen`},
		{"no artist", Song{Title: "Untitled"}, `"Untitled"`},
		{"empty", Song{}, `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.song.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewCatalogueIsEmpty(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalogue(t)

	count, err := c.SongCount(ctx)
	if err != nil {
		t.Fatalf("SongCount() error = %v", err)
	}
	if count != 0 {
		t.Errorf("SongCount() = %d, want 0", count)
	}

	artists, err := c.Artists(ctx)
	if err != nil {
		t.Fatalf("Artists() error = %v", err)
	}
	if len(artists) != 0 {
		t.Errorf("Artists() = %v, want none", artists)
	}
}

func TestCataloguesAreIsolated(t *testing.T) {
	ctx := context.Background()
	first := newTestCatalogue(t)
	second := newTestCatalogue(t)

	addSongs(t, first, bohemian)

	count, err := second.SongCount(ctx)
	if err != nil {
		t.Fatalf("SongCount() error = %v", err)
	}
	if count != 0 {
		t.Errorf("second catalogue SongCount() = %d, want 0", count)
	}
}

func TestAddSongCount(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalogue(t)

	songs := []Song{bohemian, killer, africa, bohemian, {}}
	for i, s := range songs {
		addSongs(t, c, s)

		count, err := c.SongCount(ctx)
		if err != nil {
			t.Fatalf("SongCount() error = %v", err)
		}
		if count != i+1 {
			t.Errorf("SongCount() after %d adds = %d", i+1, count)
		}
	}
}

func TestArtists(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalogue(t)
	addSongs(t, c, africa, bohemian, rosanna, killer, lowQueen, africa)

	artists, err := c.Artists(ctx)
	if err != nil {
		t.Fatalf("Artists() error = %v", err)
	}

	expected := []string{"Toto", "Queen", "queen"}
	if len(artists) != len(expected) {
		t.Fatalf("Artists() = %v, want %v", artists, expected)
	}
	for i := range expected {
		if artists[i] != expected[i] {
			t.Errorf("Artists()[%d] = %q, want %q", i, artists[i], expected[i])
		}
	}

	again, err := c.Artists(ctx)
	if err != nil {
		t.Fatalf("Artists() error = %v", err)
	}
	for i := range artists {
		if again[i] != artists[i] {
			t.Errorf("Artists() not stable: %v then %v", artists, again)
			break
		}
	}
}

func TestSongsForArtist(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalogue(t)
	addSongs(t, c, bohemian, africa, killer, lowQueen, rosanna)

	tests := []struct {
		name     string
		artist   string
		expected []Song
	}{
		{"insertion order", "Queen", []Song{bohemian, killer}},
		{"case sensitive", "queen", []Song{lowQueen}},
		{"other artist", "Toto", []Song{africa, rosanna}},
		{"unknown artist", "ABBA", nil},
		{"no trimming", "Queen ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			songs, err := c.SongsForArtist(ctx, tt.artist)
			if err != nil {
				t.Fatalf("SongsForArtist(%q) error = %v", tt.artist, err)
			}
			if songs == nil {
				t.Fatalf("SongsForArtist(%q) returned nil, want empty slice", tt.artist)
			}
			if len(songs) != len(tt.expected) {
				t.Fatalf("SongsForArtist(%q) = %v, want %v", tt.artist, songs, tt.expected)
			}
			for i := range tt.expected {
				if songs[i] != tt.expected[i] {
					t.Errorf("SongsForArtist(%q)[%d] = %v, want %v", tt.artist, i, songs[i], tt.expected[i])
				}
			}
		})
	}
}

func TestEmptyFieldsAreKept(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalogue(t)
	addSongs(t, c, Song{})

	artists, err := c.Artists(ctx)
	if err != nil {
		t.Fatalf("Artists() error = %v", err)
	}
	if len(artists) != 1 || artists[0] != "" {
		t.Fatalf("Artists() = %q, want one empty artist", artists)
	}

	songs, err := c.SongsForArtist(ctx, "")
	if err != nil {
		t.Fatalf("SongsForArtist() error = %v", err)
	}
	if len(songs) != 1 || songs[0] != (Song{}) {
		t.Errorf("SongsForArtist(\"\") = %v, want one empty song", songs)
	}
}

func TestSongs(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalogue(t)
	addSongs(t, c, africa, bohemian, africa)

	songs, err := c.Songs(ctx)
	if err != nil {
		t.Fatalf("Songs() error = %v", err)
	}
	expected := []Song{africa, bohemian, africa}
	if len(songs) != len(expected) {
		t.Fatalf("Songs() = %v, want %v", songs, expected)
	}
	for i := range expected {
		if songs[i] != expected[i] {
			t.Errorf("Songs()[%d] = %v, want %v", i, songs[i], expected[i])
		}
	}
}

func TestFind(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalogue(t)
	addSongs(t, c, bohemian, africa, killer, rosanna)

	tests := []struct {
		name     string
		query    string
		expected []Song
	}{
		{"blank query lists everything", "  ", []Song{bohemian, africa, killer, rosanna}},
		{"case insensitive", "AFRICA", []Song{africa}},
		{"artist and title", "queen killer", []Song{killer}},
		{"closest first", "queen", []Song{killer, bohemian}},
		{"no match", "zeppelin", []Song{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			songs, err := c.Find(ctx, tt.query)
			if err != nil {
				t.Fatalf("Find(%q) error = %v", tt.query, err)
			}
			if len(songs) != len(tt.expected) {
				t.Fatalf("Find(%q) = %v, want %v", tt.query, songs, tt.expected)
			}
			for i := range tt.expected {
				if songs[i] != tt.expected[i] {
					t.Errorf("Find(%q)[%d] = %v, want %v", tt.query, i, songs[i], tt.expected[i])
				}
			}
		})
	}
}
