package typebus_test

import (
	"fmt"

	"github.com/dshills/typebus"
)

// AttackEvent carries a mutable damage amount across its subscribers.
type AttackEvent struct {
	Damage int
}

// Player subscribes with a bound method.
type Player struct {
	Bonus int
}

// Attack adds the player's bonus to the pending damage.
func (p *Player) Attack(ev *AttackEvent) {
	ev.Damage += p.Bonus
}

// BaseAttack guarantees a floor of one point of damage.
func BaseAttack(ev *AttackEvent) {
	if ev.Damage <= 0 {
		ev.Damage = 1
	}
}

func Example() {
	bus := typebus.New(typebus.WithoutLocking())
	player := &Player{Bonus: 150}

	typebus.Subscribe(bus, typebus.Func(BaseAttack), typebus.WithPriority(typebus.PriorityHigh))
	typebus.Subscribe(bus, typebus.Method(player, (*Player).Attack))

	event := AttackEvent{Damage: 0}
	typebus.Publish(bus, &event)

	fmt.Printf("result damage: %d\n", event.Damage)
	// Output: result damage: 151
}

func Example_valueSink() {
	bus := typebus.New()

	typebus.SubscribeValue(bus, typebus.FuncValue(func(ev *AttackEvent) string {
		return "clamped"
	}), typebus.WithPriority(typebus.PriorityHigh))
	typebus.SubscribeValue(bus, typebus.FuncValue(func(ev *AttackEvent) string {
		return "boosted"
	}))

	// The bus retains the last handler's return value.
	verdict, _ := typebus.PublishValue[AttackEvent, string](bus, &AttackEvent{})
	fmt.Println(verdict)
	// Output: boosted
}
