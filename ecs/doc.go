// Package ecs provides ECS adapters for dimension's event system.
//
// The primary adapter is [NewDonburiStore], which bridges dimension
// interaction events (pointer, click, scroll) and reveal events into a
// [Donburi] world as typed events. Subscribe to [InteractionEventType] and
// [RevealEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
