package resource

import (
	"errors"
	"testing"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnResourceEvent(e Event) {
	o.events = append(o.events, e)
}

type dropCounter struct {
	drops *int
}

func (d dropCounter) Drop() { *d.drops++ }

func TestTable_Basic(t *testing.T) {
	table := NewTable[string]()

	h := table.Insert(1, "test")
	if h == 0 {
		t.Fatal("Expected non-zero handle")
	}

	val, ok := table.Get(h)
	if !ok || val != "test" {
		t.Fatalf("Get = %q, %v", val, ok)
	}

	val, err := table.Remove(h)
	if err != nil || val != "test" {
		t.Fatalf("Remove = %q, %v", val, err)
	}

	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Remove")
	}
}

func TestTable_Observer(t *testing.T) {
	table := NewTable[string]()
	obs := &testObserver{}
	table.Subscribe(obs)

	h := table.Insert(3, "test")
	if len(obs.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(obs.events))
	}
	if obs.events[0].Type != EventCreated || obs.events[0].Handle != h || obs.events[0].Kind != 3 {
		t.Fatalf("unexpected create event %+v", obs.events[0])
	}

	table.Remove(h)
	if len(obs.events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(obs.events))
	}
	if obs.events[1].Type != EventDropped || obs.events[1].Kind != 3 {
		t.Fatalf("unexpected drop event %+v", obs.events[1])
	}
}

func TestTable_Dropper(t *testing.T) {
	drops := 0
	table := NewTable[dropCounter]()

	h := table.Insert(1, dropCounter{drops: &drops})
	table.Remove(h)
	if drops != 1 {
		t.Fatalf("drops = %d, want 1", drops)
	}
}

func TestTable_BorrowBlocksRemove(t *testing.T) {
	table := NewTable[int]()
	h := table.Insert(1, 42)

	if _, ok := table.Borrow(h); !ok {
		t.Fatal("Borrow failed")
	}
	if _, err := table.Remove(h); !errors.Is(err, ErrOutstandingBorrow) {
		t.Fatalf("Remove while borrowed: err = %v", err)
	}
	table.Return(h)
	if _, err := table.Remove(h); err != nil {
		t.Fatalf("Remove after Return: %v", err)
	}
}

func TestTable_InsertAfterClose(t *testing.T) {
	table := NewTable[int]()
	table.Insert(1, 1)

	live := table.Close()
	if len(live) != 1 {
		t.Fatalf("Close returned %v", live)
	}
	if h := table.Insert(1, 2); h != 0 {
		t.Fatalf("Insert after Close returned handle %d", h)
	}
}
