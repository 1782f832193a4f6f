// Package monitor drives the console at a fixed rate and prints changes in
// the logical input state to the terminal.
package monitor

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jetsetilly/axial/console"
	"github.com/jetsetilly/axial/gui"
	"github.com/jetsetilly/axial/logger"
	"github.com/jetsetilly/axial/version"
)

const programName = "axial"

type monitor struct {
	end    chan bool
	sig    chan os.Signal
	con    *console.Console
	styles styles
	quiet  bool
	tps    int
	prev   gui.State
}

// AllowLogging implements the logger.Permission interface
func (m *monitor) AllowLogging() bool {
	return true
}

func (m *monitor) axis(label string, pos float64, dir float64) string {
	v := fmt.Sprintf("%s %+.2f [%+.0f]", label, pos, dir)
	if pos == 0 && dir == 0 {
		return m.styles.rest.Render(v)
	}
	return m.styles.axis.Render(v)
}

func (m *monitor) render(s gui.State) string {
	var b strings.Builder
	b.WriteString(m.axis("X", s.Stick.X(), s.Raw.X()))
	b.WriteString("  ")
	b.WriteString(m.axis("Y", s.Stick.Y(), s.Raw.Y()))
	for _, btn := range s.Buttons {
		b.WriteString("  ")
		if btn.Pressed {
			b.WriteString(m.styles.pressed.Render(btn.Label))
		} else {
			b.WriteString(m.styles.rest.Render(btn.Label))
		}
	}
	return b.String()
}

func (m *monitor) loop() {
	lmt := newLimiter(m.tps)
	defer lmt.stop()

	for {
		select {
		case <-m.end:
			return
		case <-m.sig:
			return
		case now := <-lmt.tick.C:
			m.con.Step(lmt.elapsed(now))
			s := m.con.Publish()
			if !s.Equal(m.prev) {
				if !m.quiet {
					fmt.Println(m.render(s))
				}
				m.prev = s
			}
		}
	}
}

// Launch parses the arguments, creates the console and runs it until a value
// is received on the end channel or the program is interrupted.
func Launch(end chan bool, g *gui.GUI, keymap console.Keymap, args []string) error {
	var tps int
	var acceleration float64
	var gravity float64
	var preset string
	var echo bool
	var quiet bool

	flgs := flag.NewFlagSet(programName, flag.ContinueOnError)
	flgs.IntVar(&tps, "tps", 60, "number of console updates per second")
	flgs.Float64Var(&acceleration, "acceleration", 0, "acceleration of every axis in units per second (0 for preset or default)")
	flgs.Float64Var(&gravity, "gravity", 0, "gravity of every axis in units per second (0 for preset or default)")
	flgs.StringVar(&preset, "preset", "tween.yaml", "tween preset file in the resources directory")
	flgs.BoolVar(&echo, "echo", false, "echo log entries to stderr")
	flgs.BoolVar(&quiet, "quiet", false, "do not print input state changes")
	err := flgs.Parse(args)
	if err != nil {
		return err
	}
	if len(flgs.Args()) > 0 {
		return fmt.Errorf("too many arguments to monitor")
	}
	if tps <= 0 || tps > maxTPS {
		return fmt.Errorf("tps must be between 1 and %d", maxTPS)
	}

	if echo {
		logger.SetEcho(os.Stderr, false)
	}

	m := &monitor{
		end:    end,
		sig:    make(chan os.Signal, 1),
		styles: newStyles(),
		quiet:  quiet,
		tps:    tps,
	}

	tweens, err := loadPreset(preset)
	if err != nil {
		logger.Log(m, "monitor", err)
		if !quiet {
			fmt.Println(m.styles.err.Render(err.Error()))
		}
	}
	tweens = applyOverrides(tweens, acceleration, gravity)

	m.con = console.Create(g, m, keymap, tweens)

	signal.Notify(m.sig, syscall.SIGINT)
	defer signal.Stop(m.sig)

	if !quiet {
		fmt.Println(m.styles.title.Render(version.Title()))
		fmt.Println(m.render(m.con.State()))
	}

	m.loop()

	return nil
}
