package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"drone-viewer-go/internal/model"
)

func TestSnapshotStorePutGet(t *testing.T) {
	store := NewSnapshotStore()

	snapshot := &model.Snapshot{ID: "abc", CreatedAt: time.Now(), VideoFile: "flight.mp4"}
	store.Put(snapshot)

	got, ok := store.Get("abc")
	if !ok {
		t.Fatal("Get() miss for stored snapshot")
	}
	if got.VideoFile != "flight.mp4" {
		t.Errorf("Get() VideoFile = %q, want flight.mp4", got.VideoFile)
	}

	if _, ok := store.Get("missing"); ok {
		t.Error("Get() hit for unknown id")
	}
}

func TestSnapshotStoreInvalidateAll(t *testing.T) {
	store := NewSnapshotStore()

	store.Put(&model.Snapshot{ID: "one"})
	store.Put(&model.Snapshot{ID: "two"})
	store.InvalidateAll()

	if _, ok := store.Get("one"); ok {
		t.Error("Get() hit after InvalidateAll()")
	}
	if _, ok := store.Get("two"); ok {
		t.Error("Get() hit after InvalidateAll()")
	}
}

func TestSnapshotStoreEviction(t *testing.T) {
	store := NewSnapshotStore()

	for i := 0; i < maxSnapshots+3; i++ {
		store.Put(&model.Snapshot{ID: fmt.Sprintf("snap-%02d", i)})
	}

	// Самые старые снимки вытеснены
	for i := 0; i < 3; i++ {
		if _, ok := store.Get(fmt.Sprintf("snap-%02d", i)); ok {
			t.Errorf("Get(snap-%02d) hit, want evicted", i)
		}
	}
	// Свежие на месте
	if _, ok := store.Get(fmt.Sprintf("snap-%02d", maxSnapshots+2)); !ok {
		t.Error("Get() miss for newest snapshot")
	}
}

func TestSnapshotStorePutSameID(t *testing.T) {
	store := NewSnapshotStore()

	store.Put(&model.Snapshot{ID: "same", VideoFile: "old.mp4"})
	store.Put(&model.Snapshot{ID: "same", VideoFile: "new.mp4"})

	got, ok := store.Get("same")
	if !ok {
		t.Fatal("Get() miss")
	}
	if got.VideoFile != "new.mp4" {
		t.Errorf("Get() VideoFile = %q, want new.mp4", got.VideoFile)
	}
}

func TestSnapshotStoreConcurrent(t *testing.T) {
	store := NewSnapshotStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := fmt.Sprintf("snap-%d-%d", n, j)
				store.Put(&model.Snapshot{ID: id})
				store.Get(id)
				if j%10 == 0 {
					store.InvalidateAll()
				}
			}
		}(i)
	}
	wg.Wait()
}
