package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mrdg/loopsynth/audio"
	"github.com/mrdg/loopsynth/dub"
)

type env struct {
	config  audio.Config
	backend audio.Backend
	props   *audio.Props
	out     io.Writer
}

func (e *env) eval(input string) (string, error) {
	command, err := dub.Parse(input)
	if err != nil {
		return "", err
	}
	name := string(command.Name)
	for _, cmd := range commands {
		if name != cmd.name {
			continue
		}
		if len(command.Args) != cmd.arity {
			return "", fmt.Errorf("%s: wrong number of arguments: want %v, got %v",
				cmd.name, cmd.arity, len(command.Args))
		}
		result, err := cmd.run(e, command.Args)
		if err != nil {
			return result, fmt.Errorf("%s error: %w", cmd.name, err)
		}
		return result, nil
	}
	return "", fmt.Errorf("unknown command: %s", name)
}

func repl(env *env) error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return nil
		}
		if err != nil {
			fmt.Fprintln(env.out, err)
			continue
		}
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		if result, err := env.eval(line); err != nil {
			fmt.Fprintln(env.out, err)
		} else if result != "" {
			fmt.Fprintln(env.out, result)
		}
	}
}

// runScript evaluates one command per line. Blank lines and lines starting
// with # are skipped.
func runScript(env *env, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result, err := env.eval(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		if result != "" {
			fmt.Fprintln(env.out, result)
		}
	}
	return scanner.Err()
}

type command struct {
	name  string
	help  string
	run   func(*env, []dub.Node) (string, error)
	arity int
}

var commands []command

func init() {
	commands = []command{
		{"start", "start audio output", startCommand, 0},
		{"stop", "stop audio output", stopCommand, 0},
		{"reset", "restart the piece from the beginning", controlCommand(audio.EventReset), 0},
		{"pause", "hold the piece and output silence", controlCommand(audio.EventPause), 0},
		{"resume", "continue after pause", controlCommand(audio.EventResume), 0},
		{"set", "set <prop> <value>", setCommand, 2},
		{"get", "get <prop>", getCommand, 1},
		{"props", "list output properties", propsCommand, 0},
		{"status", "show the sequencers", statusCommand, 0},
		{"render", `render "<file>" <seconds>`, renderCommand, 2},
		{"compare", `compare "<file>" against a fresh render`, compareCommand, 1},
		{"help", "list commands", helpCommand, 0},
	}
}

func startCommand(env *env, args []dub.Node) (string, error) {
	return "", env.backend.Start()
}

func stopCommand(env *env, args []dub.Node) (string, error) {
	return "", env.backend.Stop()
}

func controlCommand(ev audio.Event) func(*env, []dub.Node) (string, error) {
	return func(env *env, args []dub.Node) (string, error) {
		return "", env.backend.Control(ev)
	}
}

func setCommand(env *env, args []dub.Node) (string, error) {
	var prop string
	if err := readArgs(args[:1], &prop); err != nil {
		return "", err
	}
	switch v := args[1].(type) {
	case dub.Int:
		return "", env.props.Set(prop, int(v))
	case dub.Float:
		return "", env.props.Set(prop, float64(v))
	case dub.String:
		return "", env.props.Set(prop, string(v))
	case dub.Identifier:
		return "", env.props.Set(prop, string(v))
	default:
		return "", fmt.Errorf("unsupported property type: %v", v)
	}
}

func getCommand(env *env, args []dub.Node) (string, error) {
	var prop string
	if err := readArgs(args, &prop); err != nil {
		return "", err
	}
	v, err := env.props.Get(prop)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}

func propsCommand(env *env, args []dub.Node) (string, error) {
	var lines []string
	for _, key := range env.props.Keys() {
		v, err := env.props.Get(key)
		if err != nil {
			return "", err
		}
		lines = append(lines, fmt.Sprintf("%s = %v", key, v))
	}
	return strings.Join(lines, "\n"), nil
}

func statusCommand(env *env, args []dub.Node) (string, error) {
	var b strings.Builder
	renderStatus(&b, env.config, env.backend.Status(), audio.LeadPattern())
	return b.String(), nil
}

func renderCommand(env *env, args []dub.Node) (string, error) {
	var file string
	var seconds float64
	if err := readArgs(args, &file, &seconds); err != nil {
		return "", err
	}
	n, err := renderLength(env.config, seconds)
	if err != nil {
		return "", err
	}
	e, err := audio.New(env.config)
	if err != nil {
		return "", err
	}
	if err := audio.RenderWAV(e, file, n); err != nil {
		return "", err
	}
	return fmt.Sprintf("wrote %d samples to %s", n, file), nil
}

// renderLength converts seconds to a sample count at the config's rate.
func renderLength(cfg audio.Config, seconds float64) (int, error) {
	n := seconds * cfg.SampleRate
	if !(n >= 1) {
		return 0, fmt.Errorf("length must be positive: %v seconds", seconds)
	}
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("length too long: %v seconds", seconds)
	}
	return int(n), nil
}

// compareTolerance allows for 16 bit quantization.
const compareTolerance = 2.0 / (1 << 15)

func compareCommand(env *env, args []dub.Node) (string, error) {
	var file string
	if err := readArgs(args, &file); err != nil {
		return "", err
	}
	want, rate, err := audio.LoadWAV(file)
	if err != nil {
		return "", err
	}
	if float64(rate) != env.config.SampleRate {
		return "", fmt.Errorf("%s has sample rate %d, engine runs at %v", file, rate, env.config.SampleRate)
	}
	e, err := audio.New(env.config)
	if err != nil {
		return "", err
	}
	got := make([]float64, len(want))
	e.Render(got)
	if i := audio.Compare(want, got, compareTolerance); i >= 0 {
		return fmt.Sprintf("%s differs from the engine at sample %d", file, i), nil
	}
	return fmt.Sprintf("%s matches (%d samples)", file, len(want)), nil
}

func helpCommand(env *env, args []dub.Node) (string, error) {
	var lines []string
	for _, cmd := range commands {
		lines = append(lines, fmt.Sprintf("%-8s %s", cmd.name, cmd.help))
	}
	return strings.Join(lines, "\n"), nil
}

func readArgs(args []dub.Node, slots ...interface{}) error {
	if len(args) != len(slots) {
		return errors.New("not enough arguments")
	}
	for n, arg := range args {
		dest := slots[n]
		switch p := dest.(type) {
		case *string:
			switch s := arg.(type) {
			case dub.String:
				*p = string(s)
			case dub.Identifier:
				*p = string(s)
			default:
				return fmt.Errorf("argument error: expected a string or identifier")
			}
		case *float64:
			switch v := arg.(type) {
			case dub.Float:
				*p = float64(v)
			case dub.Int:
				*p = float64(v)
			default:
				return fmt.Errorf("argument error: expected a number")
			}
		case *int:
			v, ok := arg.(dub.Int)
			if !ok {
				return fmt.Errorf("argument error: expected an integer")
			}
			*p = int(v)
		default:
			panic("readArgs: unhandled destination type: " + fmt.Sprint(p))
		}
	}
	return nil
}
