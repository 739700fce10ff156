package arena

import "testing"

func TestAllocAlignment(t *testing.T) {
	a := New()
	for _, n := range []int{1, 2, 7, 15, 16, 17, 100} {
		b := a.Alloc(n)
		if len(b) != n {
			t.Fatalf("Alloc(%d) returned slice of length %d", n, len(b))
		}
		if a.current.used%align != 0 {
			t.Fatalf("after Alloc(%d), bump offset %d is not %d-aligned", n, a.current.used, align)
		}
	}
	if a.Stats().AllocCount != 7 {
		t.Fatalf("AllocCount = %d, want 7", a.Stats().AllocCount)
	}
}

func TestAllocZeroed(t *testing.T) {
	a := New()
	b := a.Alloc(32)
	for i, c := range b {
		if c != 0 {
			t.Fatalf("byte %d not zeroed: %d", i, c)
		}
	}
}

func TestOversizedChunkSplicedToFront(t *testing.T) {
	a := New()
	a.Alloc(16) // lands in the first default chunk

	big := a.Alloc(defaultChunkSize * 2)
	if len(big) != defaultChunkSize*2 {
		t.Fatalf("len(big) = %d", len(big))
	}

	// The oversized chunk must be spliced to the front of the list so it
	// can never be mistaken for the bump pointer's current chunk.
	if a.first.buf[0] != big[0] && len(a.first.buf) < defaultChunkSize*2 {
		t.Fatalf("oversized chunk not spliced to front")
	}
	if len(a.first.buf) != alignUp(defaultChunkSize * 2) {
		t.Fatalf("first chunk size = %d, want %d", len(a.first.buf), alignUp(defaultChunkSize*2))
	}

	stats := a.Stats()
	if stats.ChunkCount != 2 {
		t.Fatalf("ChunkCount = %d, want 2", stats.ChunkCount)
	}
}

func TestAllocSpillsToNewChunk(t *testing.T) {
	a := New()
	a.Alloc(defaultChunkSize - 16)
	// Next allocation does not fit in the remaining 16 bytes plus overhead.
	a.Alloc(32)

	stats := a.Stats()
	if stats.ChunkCount != 2 {
		t.Fatalf("ChunkCount = %d, want 2", stats.ChunkCount)
	}
}

func TestStatsAccounting(t *testing.T) {
	a := New()
	a.Alloc(10)
	a.Alloc(20)

	stats := a.Stats()
	if stats.AllocCount != 2 {
		t.Fatalf("AllocCount = %d, want 2", stats.AllocCount)
	}
	if stats.RequestedBytes != alignUp(10)+alignUp(20) {
		t.Fatalf("RequestedBytes = %d, want %d", stats.RequestedBytes, alignUp(10)+alignUp(20))
	}
	if stats.ChunkCount != 1 {
		t.Fatalf("ChunkCount = %d, want 1", stats.ChunkCount)
	}
}

type node struct {
	a, b int64
	s    string
}

func TestAllocNode(t *testing.T) {
	a := New()
	n := AllocNode[node](a)
	if n.a != 0 || n.b != 0 || n.s != "" {
		t.Fatalf("AllocNode did not return a zeroed value: %+v", *n)
	}
	n.a = 42
	if n.a != 42 {
		t.Fatalf("write through AllocNode pointer did not stick")
	}
}
