// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import "fmt"

// ObjectTable is the fixed-capacity, indexed slot array Create/Select/
// Delete records address by u16 index ([MS-WMF] 2.1.1, the per-metafile
// "handle table"): objects are referenced only by index, so there is no
// reference-graph to manage, just slot reuse.
type ObjectTable struct {
	slots []GraphicsObject
}

// NewObjectTable allocates an Object Table with the given capacity, every
// slot starting Null, sized from the metafile header's NumberOfObjects
// field.
func NewObjectTable(capacity uint16) *ObjectTable {
	return &ObjectTable{slots: make([]GraphicsObject, capacity)}
}

// Len returns the table's fixed capacity.
func (t *ObjectTable) Len() int { return len(t.slots) }

// Create inserts obj into the lowest-indexed Null slot and returns that
// index. It fails with ErrTableFull if every slot is occupied.
func (t *ObjectTable) Create(obj GraphicsObject) (uint16, error) {
	for i, slot := range t.slots {
		if slot.Kind == ObjectNull {
			t.slots[i] = obj
			return uint16(i), nil
		}
	}
	return 0, fmt.Errorf("creating %s with %d slots all occupied: %w", obj.Kind, len(t.slots), ErrTableFull)
}

// Get returns the object at index. It fails with ErrBadObjectRef if index
// is out of range or the slot is Null.
func (t *ObjectTable) Get(index uint16) (GraphicsObject, error) {
	if int(index) >= len(t.slots) {
		return GraphicsObject{}, fmt.Errorf("index %d exceeds table size %d: %w", index, len(t.slots), ErrBadObjectRef)
	}
	obj := t.slots[index]
	if obj.Kind == ObjectNull {
		return GraphicsObject{}, fmt.Errorf("index %d is Null: %w", index, ErrBadObjectRef)
	}
	return obj, nil
}

// Delete resets the slot at index to Null so later Create calls may reuse
// it. Deleting an out-of-range or already-Null index is a no-op error.
func (t *ObjectTable) Delete(index uint16) error {
	if int(index) >= len(t.slots) {
		return fmt.Errorf("index %d exceeds table size %d: %w", index, len(t.slots), ErrBadObjectRef)
	}
	if t.slots[index].Kind == ObjectNull {
		return fmt.Errorf("index %d is already Null: %w", index, ErrBadObjectRef)
	}
	t.slots[index] = GraphicsObject{}
	return nil
}
