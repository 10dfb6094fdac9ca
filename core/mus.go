// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the types that cross the storage boundary. The
// types are small and flat, so the serializers are composed by hand from
// the mus-go primitives instead of generated.

// IDMUS serializes an ID.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (id ID, n int, err error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

// EntryMUS serializes a dictionary Entry.
var EntryMUS = entryMUS{}

type entryMUS struct{}

func (entryMUS) Marshal(e Entry, bs []byte) (n int) {
	n = ord.String.Marshal(e.Term, bs)
	n += ord.String.Marshal(e.Label, bs[n:])
	return n
}

func (entryMUS) Unmarshal(bs []byte) (e Entry, n int, err error) {
	e.Term, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	e.Label, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (entryMUS) Size(e Entry) int {
	return ord.String.Size(e.Term) + ord.String.Size(e.Label)
}

func (entryMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

// EntriesMUS serializes a slice of entries, length-prefixed.
var EntriesMUS = entriesMUS{}

type entriesMUS struct{}

func (entriesMUS) Marshal(entries []Entry, bs []byte) (n int) {
	n = varint.Int.Marshal(len(entries), bs)
	for _, e := range entries {
		n += EntryMUS.Marshal(e, bs[n:])
	}
	return n
}

func (entriesMUS) Unmarshal(bs []byte) (entries []Entry, n int, err error) {
	count, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if count < 0 {
		return nil, n, ErrNegativeLength
	}
	entries = make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		var (
			e  Entry
			n1 int
		)
		e, n1, err = EntryMUS.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return nil, n, err
		}
		entries = append(entries, e)
	}
	return entries, n, nil
}

func (entriesMUS) Size(entries []Entry) (size int) {
	size = varint.Int.Size(len(entries))
	for _, e := range entries {
		size += EntryMUS.Size(e)
	}
	return size
}

func (entriesMUS) Skip(bs []byte) (n int, err error) {
	count, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return n, err
	}
	if count < 0 {
		return n, ErrNegativeLength
	}
	for i := 0; i < count; i++ {
		var n1 int
		n1, err = EntryMUS.Skip(bs[n:])
		n += n1
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
