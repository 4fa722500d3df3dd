package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"karaoke/catalogue"
	"karaoke/config"
	"karaoke/session"
)

func Run() error {
	return Command(os.Stdin, os.Stdout, os.Stderr).Run(context.Background(), os.Args)
}

// Command builds the karaoke root command reading commands from in and
// printing the menu to out. Logs go to errOut.
func Command(in io.Reader, out, errOut io.Writer) *cli.Command {
	// flags hold their parsed value, so every command gets its own
	debugFlag := &cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log what the session is doing to stderr"}
	widthFlag := &cli.IntFlag{Name: "width", Aliases: []string{"w"}, Usage: "maximum width of a queue entry, in terminal cells", Value: config.DefaultTitleWidth, Action: NotNegative}

	return &cli.Command{
		Name:        "karaoke",
		Usage:       "catalogue songs, queue them and sing along",
		Description: "Starts an interactive menu. Add songs to the song book, choose songs to sing and play them one at a time.",
		Flags:       []cli.Flag{debugFlag, widthFlag},
		Writer:      out,
		ErrWriter:   errOut,
		Action: func(ctx context.Context, c *cli.Command) (err error) {
			cfg := config.New()
			cfg.Debug = c.Bool("debug")
			cfg.SetTitleWidth(int(c.Int("width")))
			logger := cfg.Logger(errOut)

			book, err := catalogue.New()
			if err != nil {
				return fmt.Errorf("could not open the song book: %w", err)
			}
			defer closeBook(book, &err)

			logger.Debug("starting session", "width", cfg.TitleWidth)
			s := session.New(book, in, out,
				session.WithLogger(logger),
				session.WithTitleWidth(cfg.TitleWidth),
			)
			return s.Run(ctx)
		},
	}
}

// closeBook closes c and keeps its error in *err unless *err already holds one
func closeBook(c io.Closer, err *error) {
	cerr := c.Close()
	if cerr != nil && *err == nil {
		*err = fmt.Errorf("could not close the song book: %w", cerr)
	}
}

// make sure int flag is not negative
func NotNegative(_ context.Context, _ *cli.Command, v int64) error {
	if v < 0 {
		return fmt.Errorf("Flag cannot be negative")
	}
	return nil
}
