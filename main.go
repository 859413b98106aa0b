package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/reeftx/api"
	"github.com/matt-g-everett/reeftx/display"
	"github.com/matt-g-everett/reeftx/path"
	"github.com/matt-g-everett/reeftx/stream"
)

type app struct {
	Config stream.Config
	Client mqtt.Client
	Driver *stream.Driver
	Api    *api.Api
}

func newApp() *app {
	a := new(app)
	a.Config = stream.DefaultConfig()
	return a
}

func (a *app) readConfig(configPath string) error {
	if configPath == "" {
		return nil
	}
	config, err := stream.ReadConfig(configPath)
	if err != nil {
		return err
	}
	a.Config = config
	return nil
}

func (a *app) interval() time.Duration {
	return time.Duration(a.Config.Animation.IntervalMs) * time.Millisecond
}

func (a *app) build() error {
	seed := a.Config.Bubbles.Seed
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}

	animator := path.NewAnimator(a.Config.Curve(), a.Config.Animation.Speed)
	animator.SetEpsilon(a.Config.Animation.Epsilon)

	scene, err := stream.NewScene(a.Config, animator, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	controller := stream.NewController(scene, a.Config.Animation.FadeSecs)

	a.Driver = stream.NewDriver(stream.DriverConfig{
		Interval: a.interval(),
		Ticks:    a.Config.Output.Ticks,
	}, animator, controller)

	if a.Config.API.Listen != "" {
		a.Api = api.NewApi()
		a.Driver.AddSink(a.Api)
	}
	return nil
}

func (a *app) connect() error {
	if a.Config.Mqtt.URL == "" {
		return nil
	}

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("reeftx").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(func(mqtt.Client) { log.Println("Connected") })
	a.Client = mqtt.NewClient(options)

	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt connect: %w", token.Error())
	}
	a.Driver.AddSink(stream.NewStreamer(a.Client, a.Config.Mqtt.Topic, a.Config.Mqtt.Width, a.Config.Mqtt.Height))
	return nil
}

func (a *app) run(ctx context.Context) error {
	if a.Api != nil {
		go func() {
			if err := a.Api.Serve(ctx, a.Config.API.Listen); err != nil {
				log.Printf("Preview: %v", err)
			}
		}()
	}

	switch a.Config.Output.Mode {
	case "window":
		w := display.NewWindow(a.Config.Window.Title, a.Config.Window.Width, a.Config.Window.Height)
		a.Driver.AddSink(w)
		return w.Run(ctx, a.Driver, a.interval())

	case "terminal":
		term, err := display.NewTerminal()
		if err != nil {
			return err
		}
		defer term.Close()
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		term.Watch(cancel)
		a.Driver.AddSink(term)
		return ignoreCancel(a.Driver.Run(ctx))

	default:
		e, err := display.NewExporter(a.Config.Output.Dir, a.Config.Output.Format, a.interval(), a.Config.Output.Ticks, os.Stderr)
		if err != nil {
			return err
		}
		a.Driver.AddSink(e)
		runErr := ignoreCancel(a.Driver.Run(ctx))
		if err := e.Close(); err != nil && runErr == nil {
			runErr = err
		}
		log.Printf("Exported %d frames to %s", e.Count(), a.Config.Output.Dir)
		return runErr
	}
}

func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// realMain runs the program and returns its exit code, so deferred cleanup
// always happens before the process exits.
func realMain(args []string) int {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	flags := flag.NewFlagSet("reeftx", flag.ContinueOnError)
	configPath := flags.String("config", "", "YAML config file.")
	mode := flags.String("mode", "", "Output: window, terminal or headless.")
	ticks := flags.Uint64("ticks", 0, "Stop after N frames (0 = run forever).")
	out := flags.String("out", "", "Export directory in headless mode.")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	a := newApp()
	if err := a.readConfig(*configPath); err != nil {
		log.Println(err)
		return 1
	}
	if *mode != "" {
		a.Config.Output.Mode = *mode
	}
	if *ticks != 0 {
		a.Config.Output.Ticks = *ticks
	}
	if *out != "" {
		a.Config.Output.Dir = *out
	}
	if err := a.Config.Validate(); err != nil {
		log.Println(err)
		return 1
	}
	log.Printf("Config: %dx%d, %s output", a.Config.Window.Width, a.Config.Window.Height, a.Config.Output.Mode)

	if err := a.build(); err != nil {
		log.Println(err)
		return 1
	}
	if err := a.connect(); err != nil {
		log.Println(err)
		return 1
	}
	if a.Client != nil {
		defer a.Client.Disconnect(250)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := a.run(ctx); err != nil {
		log.Printf("Stopped: %v", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(realMain(os.Args[1:]))
}
