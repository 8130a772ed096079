// Package resource provides the handle tables behind the custom I/O bridge.
//
// Native code never sees a Go pointer. Every bridge and every open file is
// registered in a table and addressed by a small integer Handle, which is
// what gets stored in C-allocated user-data slots.
//
// # Handle Table
//
// The Table maps handles to Go values:
//
//	table := resource.NewTable[*file]()
//
//	// Insert a value, get a handle
//	h := table.Insert(KindReadWrite, f)
//
//	// Retrieve value by handle
//	f, ok := table.Get(h)
//
//	// Remove and take the value back
//	f, ok := table.Remove(h)
//
// # Stale Handles
//
// Slots are recycled through a free list. Each handle carries the slot
// generation in its top byte, so a handle whose slot was freed and reused
// no longer resolves.
//
// # Borrows
//
// A borrowed handle cannot be removed until every borrow is returned. The
// bridge borrows a file for the duration of each stream operation.
//
// # Cleanup
//
// Values implementing Dropper have Drop called when Remove takes them out
// of the table. Close hands back live values without dropping them.
//
// # Observers
//
// Register observers to track lifecycle events:
//
//	table.Subscribe(observer)
//
// Observers run synchronously under no table lock and must not block.
package resource
