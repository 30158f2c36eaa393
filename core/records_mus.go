// Copyright 2026 Inklab
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
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the domain records stored in badger. Timestamps are
// encoded as Unix microseconds.
var (
	IDMUS             = idMUS{}
	StatusMUS         = statusMUS{}
	EntityMUS         = entityMUS{}
	DocumentRecordMUS = documentRecordMUS{}
)

type idMUS struct{}

func (s idMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s idMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	num, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	return ID(num), n, nil
}

func (s idMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

type statusMUS struct{}

func (s statusMUS) Marshal(v Status, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s statusMUS) Unmarshal(bs []byte) (v Status, n int, err error) {
	num, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	return Status(num), n, nil
}

func (s statusMUS) Size(v Status) (size int) {
	return varint.Int.Size(int(v))
}

type entityMUS struct{}

func (s entityMUS) Marshal(v Entity, bs []byte) (n int) {
	n = ord.String.Marshal(v.Text, bs)
	n += ord.String.Marshal(v.Label, bs[n:])
	return
}

func (s entityMUS) Unmarshal(bs []byte) (v Entity, n int, err error) {
	var n1 int
	v.Text, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Label, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s entityMUS) Size(v Entity) (size int) {
	return ord.String.Size(v.Text) + ord.String.Size(v.Label)
}

type documentRecordMUS struct{}

func (s documentRecordMUS) Marshal(v DocumentRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Author, bs[n:])
	n += ord.String.Marshal(v.SourcePath, bs[n:])
	n += StatusMUS.Marshal(v.Status, bs[n:])
	n += varint.Int.Marshal(v.Stage, bs[n:])
	n += ord.String.Marshal(v.ExtractedText, bs[n:])
	n += varint.Int.Marshal(len(v.Keywords), bs[n:])
	for _, kw := range v.Keywords {
		n += ord.String.Marshal(kw, bs[n:])
	}
	n += varint.Int.Marshal(len(v.Entities), bs[n:])
	for _, ent := range v.Entities {
		n += EntityMUS.Marshal(ent, bs[n:])
	}
	n += varint.Int.Marshal(len(v.Embedding), bs[n:])
	for _, f := range v.Embedding {
		n += raw.Float32.Marshal(f, bs[n:])
	}
	n += varint.Int64.Marshal(v.UploadedAt.UnixMicro(), bs[n:])
	n += varint.Int64.Marshal(v.UpdatedAt.UnixMicro(), bs[n:])
	return
}

func (s documentRecordMUS) Unmarshal(bs []byte) (v DocumentRecord, n int, err error) {
	var n1 int
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	if v.Title, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.Author, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.SourcePath, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.Status, n1, err = StatusMUS.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.Stage, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.ExtractedText, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1

	var count int
	if count, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	// Every serialized element takes at least one byte, so a count beyond
	// the remaining data is corruption, not a short read
	if count < 0 || count > len(bs)-n {
		err = ErrCorruptRecord
		return
	}
	if count > 0 {
		v.Keywords = make([]string, count)
		for i := 0; i < count; i++ {
			if v.Keywords[i], n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
				return
			}
			n += n1
		}
	}

	if count, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if count < 0 || count > len(bs)-n {
		err = ErrCorruptRecord
		return
	}
	if count > 0 {
		v.Entities = make([]Entity, count)
		for i := 0; i < count; i++ {
			if v.Entities[i], n1, err = EntityMUS.Unmarshal(bs[n:]); err != nil {
				return
			}
			n += n1
		}
	}

	if count, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if count < 0 || count > (len(bs)-n)/raw.Float32.Size(0) {
		err = ErrCorruptRecord
		return
	}
	if count > 0 {
		v.Embedding = make([]float32, count)
		for i := 0; i < count; i++ {
			if v.Embedding[i], n1, err = raw.Float32.Unmarshal(bs[n:]); err != nil {
				return
			}
			n += n1
		}
	}

	var micros int64
	if micros, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	v.UploadedAt = time.UnixMicro(micros).UTC()
	if micros, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	v.UpdatedAt = time.UnixMicro(micros).UTC()
	return
}

func (s documentRecordMUS) Size(v DocumentRecord) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Author)
	size += ord.String.Size(v.SourcePath)
	size += StatusMUS.Size(v.Status)
	size += varint.Int.Size(v.Stage)
	size += ord.String.Size(v.ExtractedText)
	size += varint.Int.Size(len(v.Keywords))
	for _, kw := range v.Keywords {
		size += ord.String.Size(kw)
	}
	size += varint.Int.Size(len(v.Entities))
	for _, ent := range v.Entities {
		size += EntityMUS.Size(ent)
	}
	size += varint.Int.Size(len(v.Embedding))
	size += len(v.Embedding) * raw.Float32.Size(0)
	size += varint.Int64.Size(v.UploadedAt.UnixMicro())
	size += varint.Int64.Size(v.UpdatedAt.UnixMicro())
	return
}
