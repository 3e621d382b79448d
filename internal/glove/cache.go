// internal/glove/cache.go
package glove

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/mmap"

	"github.com/mwiater/wordvec/internal/embed"
)

// Sidecar layout, little-endian throughout: magic, version, word count,
// dimensionality, then each word as a uint32 length prefix plus UTF-8
// bytes, then the packed float32 vector block in word order.
var sidecarMagic = [4]byte{'W', 'V', 'E', 'C'}

const sidecarVersion uint32 = 1

// SidecarPath returns the binary cache path paired with a vector text file.
func SidecarPath(vectorPath string) string {
	return strings.TrimSuffix(vectorPath, ".txt") + ".wv"
}

// WriteSidecar serializes the table next to the vector text file so later
// loads skip the text parse. The file is written to a temp path and renamed
// so a crash never leaves a truncated sidecar behind.
func WriteSidecar(path string, table *embed.Table) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".partial-*")
	if err != nil {
		return fmt.Errorf("create temp sidecar: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	w := bufio.NewWriterSize(tmp, 1<<20)
	var scratch [4]byte

	putUint32 := func(v uint32) error {
		binary.LittleEndian.PutUint32(scratch[:], v)
		_, err := w.Write(scratch[:])
		return err
	}

	if _, err := w.Write(sidecarMagic[:]); err != nil {
		return fmt.Errorf("write sidecar: %w", err)
	}
	if err := putUint32(sidecarVersion); err != nil {
		return fmt.Errorf("write sidecar: %w", err)
	}
	if err := putUint32(uint32(table.Len())); err != nil {
		return fmt.Errorf("write sidecar: %w", err)
	}
	if err := putUint32(uint32(table.Dim())); err != nil {
		return fmt.Errorf("write sidecar: %w", err)
	}

	for _, word := range table.Words() {
		if err := putUint32(uint32(len(word))); err != nil {
			return fmt.Errorf("write sidecar words: %w", err)
		}
		if _, err := w.WriteString(word); err != nil {
			return fmt.Errorf("write sidecar words: %w", err)
		}
	}

	var rangeErr error
	table.Range(func(word string, vector []float32) bool {
		for _, v := range vector {
			binary.LittleEndian.PutUint32(scratch[:], math.Float32bits(v))
			if _, err := w.Write(scratch[:]); err != nil {
				rangeErr = err
				return false
			}
		}
		return true
	})
	if rangeErr != nil {
		return fmt.Errorf("write sidecar vectors: %w", rangeErr)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush sidecar: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close sidecar: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

// ReadSidecar memory-maps a sidecar file and rebuilds the table from it.
// Any structural problem is an error; the caller falls back to the text
// parse in that case.
func ReadSidecar(path string) (*embed.Table, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmap sidecar: %w", err)
	}
	defer r.Close()

	data := make([]byte, r.Len())
	if _, err := r.ReadAt(data, 0); err != nil {
		return nil, fmt.Errorf("read sidecar: %w", err)
	}
	return decodeSidecar(data)
}

func decodeSidecar(data []byte) (*embed.Table, error) {
	const headerSize = 16
	if len(data) < headerSize {
		return nil, fmt.Errorf("sidecar truncated: %d bytes", len(data))
	}
	if [4]byte(data[:4]) != sidecarMagic {
		return nil, fmt.Errorf("sidecar has bad magic")
	}
	if v := binary.LittleEndian.Uint32(data[4:8]); v != sidecarVersion {
		return nil, fmt.Errorf("sidecar version %d not supported", v)
	}
	count := int(binary.LittleEndian.Uint32(data[8:12]))
	dim := int(binary.LittleEndian.Uint32(data[12:16]))
	if count <= 0 || dim <= 0 {
		return nil, fmt.Errorf("sidecar header invalid: count=%d dim=%d", count, dim)
	}

	offset := headerSize
	words := make([]string, count)
	for i := range words {
		if offset+4 > len(data) {
			return nil, fmt.Errorf("sidecar truncated in word table")
		}
		n := int(binary.LittleEndian.Uint32(data[offset : offset+4]))
		offset += 4
		if offset+n > len(data) {
			return nil, fmt.Errorf("sidecar truncated in word table")
		}
		words[i] = string(data[offset : offset+n])
		offset += n
	}

	need := count * dim * 4
	if len(data)-offset != need {
		return nil, fmt.Errorf("sidecar vector block is %d bytes, want %d", len(data)-offset, need)
	}

	block := make([]float32, count*dim)
	for i := range block {
		block[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[offset+i*4 : offset+i*4+4]))
	}

	entries := make([]embed.Entry, count)
	for i, word := range words {
		entries[i] = embed.Entry{Word: word, Vector: block[i*dim : (i+1)*dim]}
	}
	return embed.NewTable(entries)
}
