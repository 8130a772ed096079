package fileio

/*
#include "bridge.h"
*/
import "C"

import (
	"sync/atomic"
	"unsafe"

	"github.com/wippyai/assimp/fileio/internal/resource"
)

// Allocations counts the C memory made by bridges. A table or a record is
// one struct plus its user-data slot; both are freed together.
type Allocations struct {
	Tables         int64 // live aiFileIO tables
	Records        int64 // live aiFile records
	TablesCreated  int64
	RecordsCreated int64
}

var counters struct {
	tables, tablesFreed   atomic.Int64
	records, recordsFreed atomic.Int64
}

// Stats returns a snapshot of the allocation counters.
func Stats() Allocations {
	tc, tf := counters.tables.Load(), counters.tablesFreed.Load()
	rc, rf := counters.records.Load(), counters.recordsFreed.Load()
	return Allocations{
		Tables:         tc - tf,
		Records:        rc - rf,
		TablesCreated:  tc,
		RecordsCreated: rc,
	}
}

var (
	tableSize  = unsafe.Sizeof(C.struct_aiFileIO{}) + unsafe.Sizeof(C.struct_fio_slot{})
	recordSize = unsafe.Sizeof(C.struct_aiFile{}) + unsafe.Sizeof(C.struct_fio_slot{})
)

func allocTable(owner resource.Handle) *C.struct_aiFileIO {
	t := C.fio_table_new(C.uint32_t(owner))
	if t != nil {
		counters.tables.Add(1)
	}
	return t
}

func freeTable(t *C.struct_aiFileIO) {
	if t == nil {
		return
	}
	C.fio_table_free(t)
	counters.tablesFreed.Add(1)
}

func allocRecord(owner, file resource.Handle, writable bool) *C.struct_aiFile {
	w := C.int(0)
	if writable {
		w = 1
	}
	r := C.fio_record_new(C.uint32_t(owner), C.uint32_t(file), w)
	if r != nil {
		counters.records.Add(1)
	}
	return r
}

func freeRecord(r *C.struct_aiFile) {
	if r == nil {
		return
	}
	C.fio_record_free(r)
	counters.recordsFreed.Add(1)
}

// tableOwner reads the bridge handle stored in a table's user-data.
func tableOwner(t *C.struct_aiFileIO) (resource.Handle, bool) {
	if t == nil {
		return 0, false
	}
	slot := C.fio_table_slot(t)
	if slot == nil {
		return 0, false
	}
	return resource.Handle(slot.owner), true
}

// recordSlot reads the owner bridge and file handles stored in a record's user-data.
func recordSlot(r *C.struct_aiFile) (owner, file resource.Handle, ok bool) {
	if r == nil {
		return 0, 0, false
	}
	slot := C.fio_record_slot(r)
	if slot == nil {
		return 0, 0, false
	}
	return resource.Handle(slot.owner), resource.Handle(slot.file), true
}
