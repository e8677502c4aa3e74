package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/elliotmr/gdl3/event"
	"github.com/elliotmr/gdl3/fixture"
	"github.com/elliotmr/gdl3/logging"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagTypes    string
	flagDisable  []string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "evplay [fixture.yaml]",
	Short: "Replay an event fixture through an event queue",
	Long: `evplay loads a YAML event fixture, pushes every record through an
event queue and prints the records polled back, one per line.

Without a file argument the fixture is read from stdin.`,
	Example: `  evplay testdata/window.yaml
  evplay --types WINDOW_SHOWN-WINDOW_HDR_STATE_CHANGED session.yaml
  evplay --disable MOUSE_MOTION < session.yaml`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.Flags().StringVarP(&flagTypes, "types", "t", "", "Only print types in MIN-MAX (names or numbers)")
	rootCmd.Flags().StringSliceVarP(&flagDisable, "disable", "d", nil, "Event types to disable before replay")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagLogLevel != "" {
		level, err := zerolog.ParseLevel(flagLogLevel)
		if err != nil {
			return errors.Wrap(err, "invalid log level")
		}
		logging.SetDefault(logging.New(os.Stderr, level))
	}

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "unable to open fixture")
		}
		defer f.Close()
		in = f
	}

	minType, maxType, err := parseRange(flagTypes)
	if err != nil {
		return err
	}
	var disabled []event.Type
	for _, name := range flagDisable {
		t, err := fixture.ParseType(name)
		if err != nil {
			return err
		}
		disabled = append(disabled, t)
	}

	p := &player{out: cmd.OutOrStdout(), minType: minType, maxType: maxType, disabled: disabled}
	return p.play(in)
}

func parseRange(s string) (event.Type, event.Type, error) {
	if s == "" {
		return event.First, event.Last, nil
	}
	lo, hi, found := strings.Cut(s, "-")
	if !found {
		hi = lo
	}
	minType, err := fixture.ParseType(lo)
	if err != nil {
		return 0, 0, err
	}
	maxType, err := fixture.ParseType(hi)
	if err != nil {
		return 0, 0, err
	}
	if minType > maxType {
		return 0, 0, errors.Errorf("empty type range %s", s)
	}
	return minType, maxType, nil
}

type player struct {
	out      io.Writer
	minType  event.Type
	maxType  event.Type
	disabled []event.Type
}

func (p *player) play(in io.Reader) error {
	log := logging.Default()
	arena := &event.Arena{}
	records, err := fixture.Load(in, arena)
	if err != nil {
		return err
	}

	q := event.NewQueue()
	if err := q.Start(); err != nil {
		return err
	}
	defer q.Stop()
	for _, t := range p.disabled {
		q.Disable(t)
	}

	owners := make(map[event.Type][]*event.UserData)
	defer func() {
		for _, list := range owners {
			for _, u := range list {
				u.Dispose()
			}
		}
	}()

	for i, rec := range records {
		ev := rec.Event
		if rec.Data != nil {
			u, err := attach(&ev, rec.Data)
			if err != nil {
				return errors.Wrapf(err, "record %d", i)
			}
			owners[ev.Type()] = append(owners[ev.Type()], u)
		}
		pushed, err := q.PushText(ev, arena)
		if err != nil {
			return errors.Wrapf(err, "record %d", i)
		}
		if !pushed {
			log.Debug().Int("record", i).Stringer("type", ev.Type()).Msg("record not queued")
		}
	}

	printed := 0
	for {
		ev, ok := q.Poll()
		if !ok {
			break
		}
		if t := ev.Type(); t < p.minType || t > p.maxType {
			continue
		}
		fmt.Fprintln(p.out, event.Describe(&ev))
		if ue, err := event.As[event.UserEvent](&ev); err == nil {
			p.printPayload(ue, owners[ev.Type()])
		}
		printed++
	}
	log.Info().Int("records", len(records)).Int("printed", printed).Msg("replay finished")
	return nil
}

// attach makes ev a user event whose slots reference data.
func attach(ev *event.Event, data []interface{}) (*event.UserData, error) {
	src, err := event.As[event.UserEvent](ev)
	if err != nil {
		return nil, err
	}
	u := event.NewUserData()
	ue, err := u.NewEvent(src.Type(), src.Timestamp(), src.WindowID(), src.Code())
	if err != nil {
		u.Dispose()
		return nil, err
	}
	for n, v := range data {
		if err := u.SetSlot(n, v); err != nil {
			u.Dispose()
			return nil, err
		}
	}
	*ev = event.Widen(ue)
	return u, nil
}

func (p *player) printPayload(ue *event.UserEvent, owners []*event.UserData) {
	for _, u := range owners {
		d1, ok1 := u.TryGet(ue, 0)
		d2, ok2 := u.TryGet(ue, 1)
		if ok1 || ok2 {
			fmt.Fprintf(p.out, "  data1=%v data2=%v\n", d1, d2)
			return
		}
	}
}
