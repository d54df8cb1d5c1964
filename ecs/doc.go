// Package ecs provides ECS adapters for dragarea's interaction events.
//
// The primary adapter is [NewDonburiStore], which bridges drag, pan and
// click events into a [Donburi] world as typed events. Subscribe to
// [InteractionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	area.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
