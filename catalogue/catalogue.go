package catalogue

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Song struct {
	// performing artist, matched exactly (case-sensitive)
	// e.g. Queen
	Artist string

	// song title
	// e.g. Bohemian Rhapsody
	Title string

	// where the song can be watched
	// e.g. https://www.youtube.com/watch?v=fJ9rUzIMcZQ
	VideoURL string
}

func (s Song) String() string {
	str := `"` + s.Title + `"`
	if s.Artist != "" {
		str += ` by ` + s.Artist
	}
	return str
}

// row stored in sqlite, the ID keeps insertion order
type songRecord struct {
	gorm.Model

	Artist   string `gorm:"index"`
	Title    string
	VideoURL string
}

func (songRecord) TableName() string {
	return "songs"
}

func (r songRecord) song() Song {
	return Song{Artist: r.Artist, Title: r.Title, VideoURL: r.VideoURL}
}

// Catalogue is the song book: every song that was ever added, in the order it was added.
type Catalogue struct {
	db *gorm.DB
}

// New opens an empty catalogue in a private in-memory sqlite database.
// Each catalogue gets its own database name so two catalogues never see each other's songs.
func New() (*Catalogue, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	return open(dsn)
}

func open(dsn string) (*Catalogue, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, err
	}

	// an in-memory database lives as long as its last connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&songRecord{})
	if err != nil {
		return nil, err
	}
	return &Catalogue{db: db}, nil
}

func (c *Catalogue) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AddSong appends song to the end of the catalogue. Duplicates are allowed.
func (c *Catalogue) AddSong(ctx context.Context, song Song) error {
	return c.db.WithContext(ctx).Create(&songRecord{
		Artist:   song.Artist,
		Title:    song.Title,
		VideoURL: song.VideoURL,
	}).Error
}

func (c *Catalogue) SongCount(ctx context.Context) (int, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&songRecord{}).Count(&count).Error
	return int(count), err
}

// Artists returns every distinct artist once, in the order they were first added.
func (c *Catalogue) Artists(ctx context.Context) ([]string, error) {
	artists := []string{}
	err := c.db.WithContext(ctx).Model(&songRecord{}).
		Group("artist").
		Order("MIN(id)").
		Pluck("artist", &artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}

// SongsForArtist returns the songs whose artist is exactly artist, in insertion order.
// An unknown artist gives an empty slice.
func (c *Catalogue) SongsForArtist(ctx context.Context, artist string) ([]Song, error) {
	var records []songRecord
	err := c.db.WithContext(ctx).
		Where("artist = ?", artist).
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return toSongs(records), nil
}

// Songs returns the whole catalogue in insertion order
func (c *Catalogue) Songs(ctx context.Context) ([]Song, error) {
	var records []songRecord
	err := c.db.WithContext(ctx).Order("id").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return toSongs(records), nil
}

// Find fuzzy matches query against "<artist> <title>" of every song.
// Best matches come first, equally good matches keep catalogue order.
// A blank query matches everything.
func (c *Catalogue) Find(ctx context.Context, query string) ([]Song, error) {
	songs, err := c.Songs(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return songs, nil
	}

	words := make([]string, 0, len(songs))
	for _, song := range songs {
		words = append(words, song.Artist+" "+song.Title)
	}

	matches := fuzzy.RankFindNormalizedFold(query, words)
	sort.Stable(matches)

	found := make([]Song, 0, len(matches))
	for _, m := range matches {
		found = append(found, songs[m.OriginalIndex])
	}
	return found, nil
}

func toSongs(records []songRecord) []Song {
	songs := make([]Song, 0, len(records))
	for _, r := range records {
		songs = append(songs, r.song())
	}
	return songs
}
