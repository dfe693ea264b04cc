// Package main is the entry point for busdemo, a small program wiring one
// producer and one consumer through the typebus dispatcher.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/typebus"
	"github.com/dshills/typebus/internal/config"
	"github.com/dshills/typebus/internal/watch"
)

// AttackEvent is the demo payload. Handlers mutate Damage in place.
type AttackEvent struct {
	Damage int
}

// Player is the demo consumer, subscribed through a bound method.
type Player struct {
	Bonus int
}

// Attack adds the player's bonus to the pending damage.
func (p *Player) Attack(ev *AttackEvent) {
	ev.Damage += p.Bonus
}

// BaseAttack guarantees a floor of one point of damage. It runs at high
// priority so the player's bonus lands on the clamped value.
func BaseAttack(ev *AttackEvent) {
	if ev.Damage <= 0 {
		ev.Damage = 1
	}
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "busdemo.toml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// The watch bridge publishes from its own goroutine.
	if cfg.Watch.Path != "" && cfg.Locking == config.LockingNone {
		fmt.Fprintln(os.Stderr, `Error: watch mode requires locking = "mutex"`)
		return 1
	}

	var opts []typebus.Option
	if cfg.Locking == config.LockingNone {
		opts = append(opts, typebus.WithoutLocking())
	}
	bus := typebus.New(opts...)

	player := &Player{Bonus: cfg.Demo.AttackBonus}
	typebus.Subscribe(bus, typebus.Func(BaseAttack), typebus.WithPriority(typebus.PriorityHigh))
	typebus.Subscribe(bus, typebus.Method(player, (*Player).Attack))

	event := AttackEvent{Damage: cfg.Demo.BaseDamage}
	attack(bus, &event)
	fmt.Printf("result damage: %d\n", event.Damage)

	if cfg.Watch.Path == "" {
		return 0
	}
	return runWatch(bus, cfg.Watch.Path)
}

// attack publishes the event; the producer knows nothing about who listens.
func attack(bus *typebus.Bus, ev *AttackEvent) {
	typebus.Publish(bus, ev)
}

// runWatch subscribes printers for file events and blocks until a signal.
func runWatch(bus *typebus.Bus, path string) int {
	typebus.Subscribe(bus, typebus.Func(printFileEvent))
	typebus.Subscribe(bus, typebus.Func(printWatchError))

	bridge, err := watch.New(bus, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to watch %s: %v\n", path, err)
		return 1
	}
	defer bridge.Close()

	fmt.Printf("watching %s, ctrl-c to stop\n", path)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals
	return 0
}

func printFileEvent(ev *watch.FileEvent) {
	fmt.Printf("%s %-24s %s\n", ev.ChangeID, ev.Op, ev.Path)
}

func printWatchError(ev *watch.WatchError) {
	fmt.Fprintf(os.Stderr, "watch error: %v\n", ev.Err)
}
