package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"karaoke/catalogue"
	"karaoke/config"
)

// consecutive failed command reads before Run gives up
const maxReadFailures = 3

const (
	promptMenu     = "What do you wanna do?: "
	promptArtist   = "Enter the artist's name: "
	promptTitle    = "Enter the title: "
	promptVideoURL = "Enter the video URL: "
	promptChoice   = "Your choice: "
	promptSearch   = "Search for: "

	msgFarewell   = "Thanks for playing, yo"
	msgEmptyQueue = "Sorry there are no songs in the queue. Use choose from the menu to add some"
	msgEmptyBook  = "Sorry there are no songs in the song book. Use add from the menu to add some"
)

type menuItem struct {
	command     string
	description string
}

// menu is printed in this order on every prompt
var menu = []menuItem{
	{"add", "Add a new song to the song book"},
	{"choose", "Choose a song to sing!"},
	{"search", "Search the song book for a song to sing"},
	{"queue", "Show the songs waiting in the queue"},
	{"play", "Play next song in the queue"},
	{"quit", "Give up. Exit the program"},
}

// Session is one run of the karaoke console. It owns the play queue;
// the song book is shared with whoever created the session.
type Session struct {
	book   SongBook
	queue  PlayQueue
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger

	titleWidth int
}

type Option func(*Session)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithTitleWidth limits how many terminal cells a queue entry may take.
func WithTitleWidth(width int) Option {
	return func(s *Session) {
		s.titleWidth = width
	}
}

func New(book SongBook, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		book:       book,
		in:         bufio.NewReader(in),
		out:        out,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		titleWidth: config.DefaultTitleWidth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Queue gives access to the songs waiting to be played
func (s *Session) Queue() *PlayQueue {
	return &s.queue
}

// Run reads and executes commands until the user quits or the input ends.
// Errors caused by user input are reported on the output and never stop the loop.
// Run only returns an error when the input keeps failing or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	failures := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, err := s.promptAction(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("input closed, ending session")
				fmt.Fprintln(s.out)
				return nil
			}
			failures++
			s.report(err)
			if failures >= maxReadFailures {
				return fmt.Errorf("giving up after %d failed reads: %w", failures, err)
			}
			continue
		}
		failures = 0

		choice := strings.ToLower(strings.TrimSpace(raw))
		s.logger.Debug("command", "choice", choice)

		switch choice {
		case "add":
			err = s.addSong(ctx)
		case "choose":
			err = s.chooseSong(ctx)
		case "search":
			err = s.searchSong(ctx)
		case "queue":
			s.showQueue()
		case "play":
			s.playNext()
		case "quit":
			fmt.Fprintln(s.out, msgFarewell)
			return nil
		default:
			fmt.Fprintf(s.out, "Unknown choice: '%s'. Try again\n\n\n", raw)
		}

		if errors.Is(err, io.EOF) {
			s.logger.Debug("input closed, ending session", "command", choice)
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			s.report(err)
		}
	}
}

// promptAction prints the menu and reads one command.
// A failing song count is reported but still shows the menu, only read errors are returned.
func (s *Session) promptAction(ctx context.Context) (string, error) {
	available := "an unknown number of"
	count, err := s.book.SongCount(ctx)
	if err != nil {
		s.report(err)
	} else {
		available = strconv.Itoa(count)
	}

	fmt.Fprintf(s.out, "There are %s songs available and %d in the queue. Your options are:\n",
		available,
		s.queue.Len())
	for _, item := range menu {
		fmt.Fprintf(s.out, "%s - %s\n", item.command, item.description)
	}
	return s.prompt(promptMenu)
}

func (s *Session) addSong(ctx context.Context) error {
	song, err := s.promptNewSong()
	if err != nil {
		return err
	}
	if err := s.book.AddSong(ctx, song); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s added! Watch it at %s\n\n", song, song.VideoURL)
	return nil
}

func (s *Session) promptNewSong() (catalogue.Song, error) {
	artist, err := s.prompt(promptArtist)
	if err != nil {
		return catalogue.Song{}, err
	}
	title, err := s.prompt(promptTitle)
	if err != nil {
		return catalogue.Song{}, err
	}
	videoURL, err := s.prompt(promptVideoURL)
	if err != nil {
		return catalogue.Song{}, err
	}
	return catalogue.Song{Artist: artist, Title: title, VideoURL: videoURL}, nil
}

func (s *Session) chooseSong(ctx context.Context) error {
	artists, err := s.book.Artists(ctx)
	if err != nil {
		return err
	}
	if len(artists) == 0 {
		fmt.Fprintf(s.out, "%s\n\n", msgEmptyBook)
		return nil
	}

	fmt.Fprintln(s.out, "Available artists:")
	artist, err := selectOption(s, artists, artists)
	if err != nil {
		return err
	}

	songs, err := s.book.SongsForArtist(ctx, artist)
	if err != nil {
		return err
	}
	titles := make([]string, 0, len(songs))
	for _, song := range songs {
		titles = append(titles, song.Title)
	}

	fmt.Fprintf(s.out, "Available songs for %s:\n", artist)
	song, err := selectOption(s, titles, songs)
	if err != nil {
		return err
	}

	s.queue.Enqueue(song)
	fmt.Fprintf(s.out, "You chose: %s\n\n", song)
	return nil
}

func (s *Session) searchSong(ctx context.Context) error {
	query, err := s.prompt(promptSearch)
	if err != nil {
		return err
	}

	songs, err := s.book.Find(ctx, query)
	if err != nil {
		return err
	}
	if len(songs) == 0 {
		fmt.Fprintf(s.out, "No songs match '%s'\n\n", query)
		return nil
	}

	labels := make([]string, 0, len(songs))
	for _, song := range songs {
		labels = append(labels, song.Title+" by "+song.Artist)
	}

	fmt.Fprintln(s.out, "Matching songs:")
	song, err := selectOption(s, labels, songs)
	if err != nil {
		return err
	}

	s.queue.Enqueue(song)
	fmt.Fprintf(s.out, "You chose: %s\n\n", song)
	return nil
}

func (s *Session) showQueue() {
	songs := s.queue.Songs()
	if len(songs) == 0 {
		fmt.Fprintf(s.out, "%s\n\n", msgEmptyQueue)
		return
	}

	fmt.Fprintln(s.out, "Up next:")
	for i, song := range songs {
		fmt.Fprintf(s.out, "%d.) %s\n", i+1, runewidth.Truncate(song.String(), s.titleWidth, "..."))
	}
	fmt.Fprintln(s.out)
}

func (s *Session) playNext() {
	song, ok := s.queue.Dequeue()
	if !ok {
		fmt.Fprintf(s.out, "%s\n\n", msgEmptyQueue)
		return
	}
	s.logger.Debug("playing", "title", song.Title, "artist", song.Artist)
	fmt.Fprintf(s.out, "\n\nOpen %s to hear %s by %s\n\n\n",
		song.VideoURL,
		song.Title,
		song.Artist)
}

// selectOption lists labels, asks for a number and returns the matching item.
// labels and items must line up.
func selectOption[T any](s *Session, labels []string, items []T) (T, error) {
	var zero T

	index, err := s.promptForIndex(labels)
	if err != nil {
		return zero, err
	}
	if index < 0 || index >= len(items) {
		return zero, fmt.Errorf("%w: %d is not between 1 and %d", ErrIndexOutOfRange, index+1, len(items))
	}
	return items[index], nil
}

// promptForIndex returns the zero-based index of the typed 1-based number.
// The index is not range checked.
func (s *Session) promptForIndex(options []string) (int, error) {
	for i, option := range options {
		fmt.Fprintf(s.out, "%d.) %s\n", i+1, option)
	}

	text, err := s.prompt(promptChoice)
	if err != nil {
		return 0, err
	}
	choice, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, text)
	}
	return choice - 1, nil
}

func (s *Session) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	return s.readLine()
}

// readLine returns one line without its line ending.
// A last line missing its newline is still returned.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("%w: %w", ErrInputStream, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) report(err error) {
	kind := "catalogue"
	switch {
	case errors.Is(err, ErrInputStream):
		kind = "input"
	case errors.Is(err, ErrParse), errors.Is(err, ErrIndexOutOfRange):
		kind = "selection"
	}
	s.logger.Warn("command failed", "kind", kind, "error", err)
	fmt.Fprintf(s.out, "Sorry, %v. Back to the menu\n\n", err)
}
