package config

import (
	"sync"
	"testing"
)

func TestStoreCurrentReflectsReplace(t *testing.T) {
	first := &Config{Server: ServerConfig{Port: "8080"}}
	second := &Config{Server: ServerConfig{Port: "9090"}}

	store := NewStore(first)
	if store.Current() != first {
		t.Fatal("Current() should return the initial config")
	}

	store.Replace(second)
	if store.Current() != second {
		t.Fatal("Current() should return the replaced config")
	}
}

// Readers iterate band slices from a snapshot while reloads publish new
// snapshots. Run with -race: a reload mechanism that mutates the shared
// struct instead of swapping the pointer fails here.
func TestStoreConcurrentReloadAndRead(t *testing.T) {
	store := NewStore(&Config{Placement: PlacementConfig{Bands: DefaultBands}})

	stop := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(stop)
		for i := 0; i < 500; i++ {
			bands := make([]BandBound, len(DefaultBands))
			copy(bands, DefaultBands)
			store.Replace(&Config{Placement: PlacementConfig{Bands: bands}})
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			bands := store.Current().Placement.Bands
			for _, band := range bands {
				if band.Level == "" {
					t.Error("read a band with an empty level")
					return
				}
			}
		}
	}()

	wg.Wait()
}
