package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/golang/snappy"
	"github.com/google/uuid"

	"github.com/arrayhash/aht"
)

// snapshotMagic identifies an ahtctl dump file.
const snapshotMagic = "AHT1"

// dumpTable writes every record in t to path as a snappy-compressed
// snapshot. Records are written in iteration order (bucket order, then
// insertion order within a bucket); re-loading preserves neither N nor any
// particular bucket layout, only the key/value pairs.
func dumpTable(t *aht.Table, path string) (sessionID string, n int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("creating dump %s: %w", path, err)
	}
	defer f.Close()

	id := uuid.New().String()

	w := snappy.NewBufferedWriter(f)
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing snappy writer: %w", cerr)
		}
	}()

	if _, err = io.WriteString(w, snapshotMagic); err != nil {
		return "", 0, err
	}
	if err = writeString(w, id); err != nil {
		return "", 0, err
	}

	it := t.Iterator()
	for it.Valid() {
		if err = writeRecord(w, it.Key(), it.Value().Load()); err != nil {
			return "", 0, err
		}
		n++
		it.Advance()
	}

	return id, n, nil
}

// loadTable reads a snapshot produced by dumpTable, inserting every record
// into t.
func loadTable(path string, t *aht.Table) (sessionID string, n int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("opening dump %s: %w", path, err)
	}
	defer f.Close()

	r := snappy.NewReader(f)
	br := bufio.NewReader(r)

	magic := make([]byte, len(snapshotMagic))
	if _, err = io.ReadFull(br, magic); err != nil {
		return "", 0, fmt.Errorf("reading magic: %w", err)
	}
	if string(magic) != snapshotMagic {
		return "", 0, fmt.Errorf("%s: not an ahtctl dump file", path)
	}

	sessionID, err = readString(br)
	if err != nil {
		return "", 0, fmt.Errorf("reading session id: %w", err)
	}

	for {
		key, value, rerr := readRecord(br)
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return sessionID, n, fmt.Errorf("reading record %d: %w", n, rerr)
		}
		ref, gerr := t.Get(key)
		if gerr != nil {
			return sessionID, n, fmt.Errorf("restoring record %d: %w", n, gerr)
		}
		ref.Store(value)
		n++
	}

	return sessionID, n, nil
}

func writeString(w io.Writer, s string) error {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(s)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return "", err
	}
	n := binary.LittleEndian.Uint32(lenBuf[:])
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func writeRecord(w io.Writer, key []byte, value uint64) error {
	var hdr [4 + 8]byte
	binary.LittleEndian.PutUint32(hdr[:4], uint32(len(key)))
	binary.LittleEndian.PutUint64(hdr[4:], value)
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.Write(key)
	return err
}

func readRecord(r io.Reader) ([]byte, uint64, error) {
	var hdr [4 + 8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, 0, err
	}
	klen := binary.LittleEndian.Uint32(hdr[:4])
	value := binary.LittleEndian.Uint64(hdr[4:])
	key := make([]byte, klen)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, 0, err
	}
	return key, value, nil
}
