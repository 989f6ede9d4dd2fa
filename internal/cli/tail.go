package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/momentics/cowring/adapters"
	"github.com/momentics/cowring/control"
	"github.com/momentics/cowring/pool"
	"github.com/momentics/cowring/ring"
)

const (
	scanBufferSize = 64 * 1024
	maxLineSize    = 1 << 20
)

var scanBuffers = pool.NewBytePool(scanBufferSize)

func newTailCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tail [file...]",
		Short: "Print the last N lines of each input",
		Long: `Print the last N lines of each file, or of stdin when no file (or "-")
is given. With --every K a snapshot of the current tail is printed every K
lines while reading continues.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg.Tail
			flags := cmd.Flags()
			if flags.Changed("lines") {
				cfg.Lines, _ = flags.GetInt("lines")
			}
			if flags.Changed("show-evicted") {
				cfg.ShowEvicted, _ = flags.GetBool("show-evicted")
			}
			if flags.Changed("stats") {
				cfg.Stats, _ = flags.GetBool("stats")
			}
			every, _ := flags.GetInt("every")
			if cfg.Lines <= 0 {
				return fmt.Errorf("invalid --lines %d: must be positive", cfg.Lines)
			}
			if every < 0 {
				return fmt.Errorf("invalid --every %d: must not be negative", every)
			}
			if len(args) == 0 {
				args = []string{"-"}
			}

			ctrl := adapters.NewControlAdapter()
			t := &tailer{
				buf:         ring.New[string](cfg.Lines),
				metrics:     ctrl.Metrics(),
				out:         cmd.OutOrStdout(),
				errOut:      cmd.ErrOrStderr(),
				showEvicted: cfg.ShowEvicted,
				every:       every,
			}
			control.RegisterRingProbe(ctrl.Probes(), "tail", t.buf)

			for i, name := range args {
				if len(args) > 1 {
					if i > 0 {
						fmt.Fprintln(t.out)
					}
					fmt.Fprintf(t.out, "==> %s <==\n", name)
				}
				if err := t.tailInput(name, cmd.InOrStdin()); err != nil {
					return err
				}
			}

			if cfg.Stats {
				log.Info().Fields(ctrl.Stats()).Msg("ring stats")
			}
			return nil
		},
	}

	cmd.Flags().IntP("lines", "n", 10, "number of lines to keep (overrides config)")
	cmd.Flags().Bool("show-evicted", false, "write evicted lines to stderr")
	cmd.Flags().Bool("stats", false, "log ring and runtime stats when done")
	cmd.Flags().Int("every", 0, "print a snapshot of the tail every N lines (0 disables)")
	return cmd
}

// tailer keeps the last lines of each input in one ring, reused across inputs.
type tailer struct {
	buf         *ring.RingBuffer[string]
	metrics     *control.MetricsRegistry
	out         io.Writer
	errOut      io.Writer
	showEvicted bool
	every       int
}

// snapshot is a clone of the tail taken mid-stream. It shares storage with
// the live ring until the reader pushes the next line.
type snapshot struct {
	input string
	line  int64
	lines *ring.RingBuffer[string]
}

func (t *tailer) tailInput(name string, stdin io.Reader) error {
	in := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", name, err)
		}
		defer f.Close()
		in = f
	}
	return t.tail(name, in)
}

func (t *tailer) tail(name string, in io.Reader) error {
	t.buf.RemoveAll()

	var snaps chan snapshot
	done := make(chan struct{})
	if t.every > 0 {
		snaps = make(chan snapshot, 4)
		go t.printSnapshots(snaps, done)
	} else {
		close(done)
	}

	buf := scanBuffers.Get()
	defer scanBuffers.Put(buf)
	sc := bufio.NewScanner(in)
	sc.Buffer((*buf)[:0], maxLineSize)
	var read, evicted int64
	for sc.Scan() {
		read++
		if old, ok := t.buf.Push(sc.Text()); ok {
			evicted++
			if t.showEvicted {
				fmt.Fprintln(t.errOut, old)
			}
		}
		if snaps != nil && read%int64(t.every) == 0 {
			snaps <- snapshot{input: name, line: read, lines: t.buf.Clone()}
		}
	}
	if snaps != nil {
		close(snaps)
	}
	<-done
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	for line := range t.buf.Values() {
		fmt.Fprintln(t.out, line)
	}

	t.metrics.Add("tail.lines_read", read)
	t.metrics.Add("tail.lines_evicted", evicted)
	t.metrics.RecordRing("tail", t.buf.Stats())
	log.Debug().
		Str("input", name).
		Int64("read", read).
		Int64("evicted", evicted).
		Int("kept", t.buf.Len()).
		Msg("input tailed")
	return nil
}

func (t *tailer) printSnapshots(snaps <-chan snapshot, done chan<- struct{}) {
	defer close(done)
	for s := range snaps {
		fmt.Fprintf(t.out, "--- %s @ line %d ---\n", s.input, s.line)
		for line := range s.lines.Values() {
			fmt.Fprintln(t.out, line)
		}
		s.lines.Release()
	}
}
