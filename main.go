package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/mrdg/loopsynth/audio"
	"golang.org/x/term"
)

func main() {
	var (
		rate       = flag.Float64("rate", 44100, "sample rate in Hz")
		clock      = flag.Int("clock", 9, "sequencer steps per second")
		feedback   = flag.Float64("feedback", 0.35, "delay feedback, in [0,1)")
		backend    = flag.String("backend", "portaudio", "audio output: portaudio or oto")
		bufferSize = flag.Int("buffer", 512, "audio buffer size in frames")
		run        = flag.String("run", "", "file with commands to run at startup")
		render     = flag.String("render", "", "render to a wav file and exit")
		seconds    = flag.Float64("seconds", 60, "length of the -render output in seconds")
	)
	flag.Parse()

	cfg := audio.Config{
		SampleRate: *rate,
		Clock:      *clock,
		Feedback:   *feedback,
	}
	engine, err := audio.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *render != "" {
		n, err := renderLength(cfg, *seconds)
		if err != nil {
			log.Fatal(err)
		}
		if err := audio.RenderWAV(engine, *render, n); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %d samples to %s", n, *render)
		return
	}

	props := audio.NewProps()
	out, err := openBackend(*backend, engine, props, *bufferSize)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	if err := out.Start(); err != nil {
		log.Fatal(err)
	}

	env := &env{
		config:  cfg,
		backend: out,
		props:   props,
		out:     os.Stdout,
	}

	if *run != "" {
		f, err := os.Open(*run)
		if err != nil {
			log.Fatal(err)
		}
		err = runScript(env, f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		if err := repl(env); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		return
	}

	// Commands are piped in: run them, then play until interrupted.
	if err := runScript(env, os.Stdin); err != nil {
		log.Fatal(err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-ctx.Done()
}

func openBackend(name string, e *audio.Engine, props *audio.Props, bufferSize int) (audio.Backend, error) {
	switch name {
	case "portaudio":
		return audio.NewSink(e, props, bufferSize)
	case "oto":
		return audio.NewOtoPlayer(e, props, bufferSize)
	default:
		return nil, fmt.Errorf("unknown backend: %s", name)
	}
}
