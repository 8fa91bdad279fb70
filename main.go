package main

import (
	"flag"
	"log"
	"math"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	fease "github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/partx/anim"
	"github.com/matt-g-everett/partx/bezier"
	"github.com/matt-g-everett/partx/ease"
	"github.com/matt-g-everett/partx/geom"
	"github.com/matt-g-everett/partx/render"
	"github.com/matt-g-everett/partx/sched"
	"github.com/matt-g-everett/partx/shape"
)

type app struct {
	Config    render.Config
	Client    mqtt.Client
	Executor  *sched.Executor
	Scheduler *sched.Scheduler
}

func newApp() *app {
	a := new(app)
	a.Executor = sched.NewExecutor()
	a.Scheduler = sched.NewScheduler(a.Executor)
	return a
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&a.Config)
	if err != nil {
		panic(err)
	}
}

// showcase builds a demo composition: a pulsing sphere orbiting a
// center while a tilting ring sweeps past, followed by a comet along a
// curve.
func (a *app) showcase() (anim.Animator, error) {
	ember, _ := colorful.Hex("#c05020")
	frost, _ := colorful.Hex("#3060c0")

	pulse, err := shape.NewSphere(render.Particle{ID: 1, Color: ember}, 0.5, 120)
	if err != nil {
		return nil, err
	}
	pulse.Amount = ease.Count{Start: 40, End: 160, Shape: fease.InOutQuad}

	ring, err := shape.NewCircle(render.Particle{ID: 2, Color: frost}, 2, 80)
	if err != nil {
		return nil, err
	}
	ring.Rotation = ease.Vector{Start: geom.V(0, 0, 0), End: geom.V(0, math.Pi, 0)}

	orbit, err := anim.NewOrbit(2, pulse, geom.V(0, 4, 0), 3, 3, 60)
	if err != nil {
		return nil, err
	}
	sweep, err := anim.NewLinearInterval(1, ring, 0.25, geom.V(-5, 4, 0), geom.V(5, 4, 0))
	if err != nil {
		return nil, err
	}

	overlap, err := anim.NewParallelDelays([]int{0, 20}, orbit, sweep)
	if err != nil {
		return nil, err
	}

	comet, err := shape.NewPoint(render.Particle{ID: 1, Color: ember}, 30)
	if err != nil {
		return nil, err
	}
	arc, err := anim.NewBezierInterval(1, comet, 0.2, bezierArc())
	if err != nil {
		return nil, err
	}

	return anim.NewSequential(10, overlap, arc)
}

func bezierArc() bezier.Curve {
	return bezier.NewCubic(
		geom.V(-5, 2, 0), geom.V(5, 2, 0),
		geom.V(-2, 8, 0), geom.V(2, 8, 0),
	)
}

func (a *app) run() {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}

	renderer := render.NewNetworkRenderer(a.Client, a.Config.Mqtt.Topics.Frames)
	animation, err := a.showcase()
	if err != nil {
		panic(err)
	}
	log.Printf("Animation duration: %d ticks", animation.Duration())
	if err := animation.BeginAnimation(a.Scheduler, renderer); err != nil {
		panic(err)
	}

	tickMs := a.Config.Animation.TickMs
	if tickMs <= 0 {
		tickMs = 50
	}
	ticker := time.NewTicker(time.Duration(tickMs) * time.Millisecond)
	for range ticker.C {
		a.Scheduler.OnTick()
		if !a.Scheduler.Processing() {
			break
		}
	}

	a.Executor.Drain()
	log.Println("Animation complete")
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: %+v", a.Config)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("partx").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second)
	a.Client = mqtt.NewClient(options)

	a.run()
}
